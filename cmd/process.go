package main

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/claims-triage/internal/model"
	"github.com/sells-group/claims-triage/internal/pipeline"
	"github.com/sells-group/claims-triage/internal/source"
)

var (
	processFile    string
	processFormat  string
	processOutput  string
	processCharset string
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Process a single FNOL document",
	RunE: func(cmd *cobra.Command, args []string) error {
		if processCharset != "" {
			cfg.Input.Charset = processCharset
		}
		if err := cfg.Validate("process"); err != nil {
			return err
		}

		loader := source.NewLoader(cfg.Input, cfg.PDF)
		text, err := loader.Load(cmd.Context(), processFile)
		if err != nil {
			return err
		}

		result := pipeline.Process(text)

		zap.L().Info("document processed",
			zap.String("file", processFile),
			zap.Int("missing_fields", len(result.MissingFields)),
			zap.String("route", string(result.Routing.Route)),
		)

		out, err := renderResult(result, processFormat)
		if err != nil {
			return err
		}

		if processOutput != "" {
			if err := os.WriteFile(processOutput, out, 0o644); err != nil {
				return eris.Wrapf(err, "process: write %s", processOutput)
			}
			return nil
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	f := processCmd.Flags()
	f.StringVarP(&processFile, "file", "f", "-", "document path, or - for stdin")
	f.StringVar(&processFormat, "format", "json", "output format: json, yaml, or report")
	f.StringVarP(&processOutput, "output", "o", "", "write output to a file instead of stdout")
	f.StringVar(&processCharset, "charset", "", "input charset (overrides config)")
	rootCmd.AddCommand(processCmd)
}

// renderResult serializes a processing result in the requested format.
func renderResult(result model.ProcessingResult, format string) ([]byte, error) {
	switch format {
	case "json":
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return nil, eris.Wrap(err, "process: encode json")
		}
		return buf.Bytes(), nil
	case "yaml":
		out, err := yaml.Marshal(result)
		if err != nil {
			return nil, eris.Wrap(err, "process: encode yaml")
		}
		return out, nil
	case "report":
		return []byte(pipeline.FormatReport(result)), nil
	default:
		return nil, eris.Errorf("process: unknown format %q", format)
	}
}
