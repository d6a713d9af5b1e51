package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yungbote/salesflow-backend/internal/platform/envutil"
	"github.com/yungbote/salesflow-backend/internal/platform/logger"
	"github.com/yungbote/salesflow-backend/internal/services"
)

var (
	tokenUserFlag  string
	tokenEmailFlag string
	tokenRoleFlag  string
	tokenTTLFlag   time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a JWT signed with JWT_SECRET_KEY",
	Long: `Issue a bearer token for calling the admin sales routes locally.

Examples:
  salescript token --user alice
  curl -H "Authorization: Bearer $(salescript token)" localhost:8080/api/admin/sales/vocabulary`,
	RunE: runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUserFlag, "user", "local-admin", "Subject (user id)")
	tokenCmd.Flags().StringVar(&tokenEmailFlag, "email", "", "Email claim")
	tokenCmd.Flags().StringVar(&tokenRoleFlag, "role", "admin", "Role claim")
	tokenCmd.Flags().DurationVar(&tokenTTLFlag, "ttl", time.Hour, "Token lifetime")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, args []string) error {
	secret := envutil.String("JWT_SECRET_KEY", services.DevJWTSecret)
	auth := services.NewAuthService(logger.Nop(), secret, envutil.String("ADMIN_ROLE", "admin"))
	tok, err := auth.IssueToken(tokenUserFlag, tokenEmailFlag, tokenRoleFlag, tokenTTLFlag)
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), tok)
	return nil
}
