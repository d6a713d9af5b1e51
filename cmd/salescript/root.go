package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "salescript",
	Short: "salescript - offline tools for the sales script generator",
	Long: `salescript renders guided sales-call steps without running the HTTP server.

Commands:
  render      Generate one step from a YAML or JSON request file
  strategies  List recommended strategies for a prospect response
  objections  Match free-text objections against the canned handlers
  token       Issue an admin JWT for local testing
  watch       Print step events published on the Redis channel`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
	},
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
