package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	types "github.com/yungbote/salesflow-backend/internal/domain/sales"
	"github.com/yungbote/salesflow-backend/internal/modules/sales/script"
	"github.com/yungbote/salesflow-backend/internal/pkg/pointers"
	"github.com/yungbote/salesflow-backend/internal/platform/logger"
	"github.com/yungbote/salesflow-backend/internal/services"
)

var (
	renderFormatFlag   string
	renderEvidenceFlag string
)

var renderCmd = &cobra.Command{
	Use:   "render <request-file>",
	Short: "Generate one step from a request file",
	Long: `Generate one step from a generate-step request written as YAML or JSON.
Use "-" to read the request from stdin.

Examples:
  salescript render call.yaml
  salescript render call.json -o yaml
  cat call.yaml | salescript render -`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderFormatFlag, "output", "o", "json", "Output format (json, yaml, text)")
	renderCmd.Flags().StringVar(&renderEvidenceFlag, "evidence", "", "Value evidence summary to quote in the step")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	raw, err := readInput(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}
	req, err := decodeRequest(raw)
	if err != nil {
		return fmt.Errorf("decode request: %w", err)
	}

	var summarizer services.EvidenceSummarizer
	if strings.TrimSpace(renderEvidenceFlag) != "" {
		summarizer = staticEvidence(renderEvidenceFlag)
		if req.ContactSubmissionID == nil {
			req.ContactSubmissionID = pointers.Float64(1)
		}
	}
	svc := services.NewSalesScriptService(logger.Nop(), script.Generator{}, summarizer, nil, nil)
	step, err := svc.GenerateStep(cmd.Context(), req)
	if err != nil {
		return err
	}
	return writeStep(cmd.OutOrStdout(), step, renderFormatFlag)
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read request: %w", err)
	}
	return b, nil
}

// decodeRequest accepts YAML or JSON. YAML is a superset of JSON, so both go through the
// YAML decoder and are re-encoded as JSON to reuse the request's json tags.
func decodeRequest(raw []byte) (*types.GenerateStepRequest, error) {
	var generic any
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	b, err := json.Marshal(normalizeYAML(generic))
	if err != nil {
		return nil, err
	}
	var req types.GenerateStepRequest
	if err := json.Unmarshal(b, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// normalizeYAML converts map[any]any nodes, which encoding/json rejects.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalizeYAML(val)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = normalizeYAML(val)
		}
		return t
	default:
		return v
	}
}

func writeStep(w io.Writer, step types.DynamicStep, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(step); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		fmt.Fprintf(w, "Step %d: %s [%s]\n", step.StepNumber, step.Title, step.Type)
		fmt.Fprintf(w, "Objective: %s\n\nTalking points:\n", step.Objective)
		for _, tp := range step.TalkingPoints {
			fmt.Fprintf(w, "  - %s\n", tp)
		}
		fmt.Fprintln(w, "\nSuggested actions:")
		for _, a := range step.SuggestedActions {
			fmt.Fprintf(w, "  - %s\n", a)
		}
		if len(step.ProductsToPresent) > 0 {
			fmt.Fprintf(w, "\nProducts: %v\n", step.ProductsToPresent)
		}
		return nil
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(step)
	}
}
