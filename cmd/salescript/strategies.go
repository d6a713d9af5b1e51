package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	types "github.com/yungbote/salesflow-backend/internal/domain/sales"
	"github.com/yungbote/salesflow-backend/internal/modules/sales/script"
	"github.com/yungbote/salesflow-backend/internal/normalization"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies [response-type]",
	Short: "List recommended strategies for a prospect response",
	Long: `List the ranked strategies for a prospect response and the step each one leads to.
Without an argument every response type is listed.

Examples:
  salescript strategies price_objection
  salescript strategies`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStrategies,
}

func init() {
	rootCmd.AddCommand(strategiesCmd)
}

func runStrategies(cmd *cobra.Command, args []string) error {
	responses := types.ResponseTypes
	if len(args) == 1 {
		rt := types.ResponseType(normalization.ParseInputString(args[0]))
		if len(script.RecommendedStrategies(rt)) == 0 {
			return fmt.Errorf("unknown response type: %s", args[0])
		}
		responses = []types.ResponseType{rt}
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RESPONSE\tRANK\tSTRATEGY\tSTEP")
	for _, rt := range responses {
		for _, opt := range script.StrategyOptions(rt) {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", script.ResponseTypeLabels[rt], opt.Rank, opt.Label, script.StepTypeLabels[opt.StepType])
		}
	}
	return tw.Flush()
}
