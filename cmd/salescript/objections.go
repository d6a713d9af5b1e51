package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yungbote/salesflow-backend/internal/modules/sales/script"
)

var objectionsCustomFlag string

var objectionsCmd = &cobra.Command{
	Use:   "objections <text>",
	Short: "Match an objection against the canned handlers",
	Long: `Match free text against the built-in objection handlers and, optionally, a YAML
file of custom handlers (a list of {trigger, category, response}).

Examples:
  salescript objections "it's too expensive"
  salescript objections "locked into a contract" --custom handlers.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runObjections,
}

func init() {
	objectionsCmd.Flags().StringVar(&objectionsCustomFlag, "custom", "", "YAML file with extra handlers")
	rootCmd.AddCommand(objectionsCmd)
}

func runObjections(cmd *cobra.Command, args []string) error {
	custom, err := loadCustomHandlers(objectionsCustomFlag)
	if err != nil {
		return err
	}
	found := script.FindObjectionHandlers(strings.Join(args, " "), custom)
	out := cmd.OutOrStdout()
	if len(found) == 0 {
		fmt.Fprintln(out, "No matching handlers.")
		return nil
	}
	for _, h := range found {
		fmt.Fprintf(out, "[%s] %s\n  %s\n", h.Category, h.Trigger, h.Response)
	}
	return nil
}

func loadCustomHandlers(path string) ([]script.ObjectionHandler, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read handlers: %w", err)
	}
	var handlers []script.ObjectionHandler
	if err := yaml.Unmarshal(b, &handlers); err != nil {
		return nil, fmt.Errorf("parse handlers: %w", err)
	}
	return handlers, nil
}
