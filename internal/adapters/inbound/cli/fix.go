package cli

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/tsfix/tsfix/internal/adapters/outbound/config"
	"github.com/tsfix/tsfix/internal/adapters/outbound/gitinfo"
	"github.com/tsfix/tsfix/internal/adapters/outbound/history"
	"github.com/tsfix/tsfix/internal/adapters/outbound/tsclog"
	"github.com/tsfix/tsfix/internal/adapters/outbound/tui"
	"github.com/tsfix/tsfix/internal/application"
	"github.com/tsfix/tsfix/internal/domain"
)

func newFixCmd() *cobra.Command {
	var (
		logFile      string
		dryRun       bool
		requireClean bool
		jsonOutput   bool
		showHistory  bool
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "fix [path]",
		Short: "Remove identifiers tsc reports as declared but never read",
		Long:  "Parse the build log, group TS6133 diagnostics by file, and rewrite each affected file: unused names are dropped from import lists, whole unused imports are blanked, and simple unused declarations are commented out.",
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

			hist := history.New()
			if showHistory {
				entries, err := hist.Load(absPath)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			cfg, err := config.New().Load(absPath)
			if err != nil {
				return err
			}

			level := hclog.Warn
			if verbose {
				level = hclog.Debug
			}
			logger := hclog.New(&hclog.LoggerOptions{
				Name:   "tsfix",
				Output: cmd.ErrOrStderr(),
				Level:  level,
			})

			svc := application.NewFixService(tsclog.New(), gitinfo.New(), hist, logger)

			opts := domain.FixOptions{
				LogFile:      logFile,
				DryRun:       dryRun,
				RequireClean: requireClean,
			}

			report, err := svc.Run(absPath, cfg, opts)
			if err != nil {
				return fmt.Errorf("fix failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, report)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderFixReport(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&logFile, "log", "", "Build log path (overrides .tsfix.yaml)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compute edits without writing any file")
	cmd.Flags().BoolVar(&requireClean, "require-clean", false, "Refuse to rewrite files when the git worktree is dirty")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show fix-run history")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Log every applied edit")

	return cmd
}
