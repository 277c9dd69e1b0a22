package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tsfix/tsfix/internal/adapters/outbound/config"
	"github.com/tsfix/tsfix/internal/adapters/outbound/gitinfo"
	"github.com/tsfix/tsfix/internal/adapters/outbound/sarifout"
	"github.com/tsfix/tsfix/internal/adapters/outbound/tsclog"
	"github.com/tsfix/tsfix/internal/adapters/outbound/tui"
	"github.com/tsfix/tsfix/internal/application"
)

func newSummaryCmd() *cobra.Command {
	var (
		logFile    string
		topCodes   int
		jsonOutput bool
		sarifPath  string
	)

	cmd := &cobra.Command{
		Use:   "summary [path]",
		Short: "Summarize diagnostics in a tsc build log",
		Long:  "Parse the build log and show the total diagnostic count and the most frequent error codes, without touching any source file.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg, err := config.New().Load(absPath)
			if err != nil {
				return err
			}
			if topCodes > 0 {
				cfg.TopCodes = topCodes
			}

			svc := application.NewSummaryService(tsclog.New(), gitinfo.New())
			report, diags, err := svc.Summarize(absPath, cfg, logFile)
			if err != nil {
				return err
			}

			if sarifPath != "" {
				if err := sarifout.Write(diags, sarifPath); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "SARIF report written to %s\n", sarifPath)
			}

			if jsonOutput {
				return renderJSON(cmd, report)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderSummary(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&logFile, "log", "", "Build log path (overrides .tsfix.yaml)")
	cmd.Flags().IntVar(&topCodes, "top", 0, "How many codes to show in the breakdown")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output summary as JSON")
	cmd.Flags().StringVar(&sarifPath, "sarif", "", "Also write diagnostics as a SARIF report to this path")

	return cmd
}

func renderJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
