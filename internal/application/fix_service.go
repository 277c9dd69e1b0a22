package application

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/tsfix/tsfix/internal/domain"
)

// FixService orchestrates the fix pipeline:
// parse log → summarize codes → group unused identifiers → patch files.
type FixService struct {
	source  domain.DiagnosticSource
	git     domain.GitInfo
	history domain.RunHistory
	logger  hclog.Logger
}

func NewFixService(source domain.DiagnosticSource, git domain.GitInfo, history domain.RunHistory, logger hclog.Logger) *FixService {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &FixService{source: source, git: git, history: history, logger: logger}
}

// Run parses the configured build log and applies unused-identifier fixes to
// the source tree under projectPath. Failures on individual source files are
// recovered and recorded on the report; a missing or unreadable log aborts
// the run before any file is touched.
func (s *FixService) Run(projectPath string, cfg domain.ProjectConfig, opts domain.FixOptions) (*domain.RunReport, error) {
	logFile := opts.LogFile
	if logFile == "" {
		logFile = cfg.LogFile
	}

	if opts.RequireClean && !opts.DryRun {
		dirty, err := s.git.IsDirty(projectPath)
		if err != nil {
			return nil, fmt.Errorf("checking worktree: %w", err)
		}
		if dirty {
			return nil, errors.New("worktree has uncommitted changes; commit or stash first, or use --dry-run")
		}
	}

	diags, err := s.source.Parse(resolvePath(projectPath, logFile))
	if err != nil {
		return nil, err
	}

	report := &domain.RunReport{
		Timestamp:   time.Now().Format(time.RFC3339),
		LogFile:     logFile,
		Diagnostics: len(diags),
		TopCodes:    domain.TopCodes(diags, cfg.TopCodes),
		DryRun:      opts.DryRun,
	}
	if hash, err := s.git.CommitHash(projectPath); err == nil {
		report.CommitHash = hash
	}

	groups := domain.GroupUnused(diags)
	for _, decls := range groups {
		report.UnusedFound += len(decls)
	}

	// Deterministic file order keeps logs and reports stable across runs.
	files := make([]string, 0, len(groups))
	for file := range groups {
		files = append(files, file)
	}
	sort.Strings(files)

	root := resolvePath(projectPath, cfg.SourceRoot)
	for _, file := range files {
		s.fixFile(root, file, groups[file], opts, report)
	}

	s.logger.Info("fix pass complete",
		"diagnostics", report.Diagnostics,
		"unused", report.UnusedFound,
		"edits", report.EditsApplied,
		"files", report.FilesPatched,
		"dry_run", opts.DryRun,
	)

	if s.history != nil && !opts.DryRun {
		entry := domain.RunEntry{
			Timestamp:    report.Timestamp,
			CommitHash:   report.CommitHash,
			Diagnostics:  report.Diagnostics,
			EditsApplied: report.EditsApplied,
		}
		_ = s.history.Save(projectPath, entry) // best-effort
	}

	return report, nil
}

// fixFile patches a single source file. Entries apply in descending line
// order so an edit never shifts lines still to be visited. Any failure is
// recorded on the report and logged; it never aborts the run.
func (s *FixService) fixFile(root, file string, decls []domain.UnusedDecl, opts domain.FixOptions, report *domain.RunReport) {
	path := filepath.Join(root, file)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("source file missing, skipping", "file", file)
			report.FilesSkipped++
			return
		}
		s.recordError(report, file, err)
		return
	}

	buf := domain.NewFileBuffer(string(data))
	domain.SortDescending(decls)

	edits := 0
	for _, decl := range decls {
		kind := buf.ApplyUnused(decl)
		if kind == domain.EditNone {
			continue
		}
		edits++
		s.logger.Debug("applied edit",
			"file", file, "line", decl.Line, "identifier", decl.Identifier, "kind", string(kind))
	}

	if edits == 0 {
		return
	}

	report.EditsApplied += edits
	if opts.DryRun {
		report.FilesPatched++
		return
	}

	if err := os.WriteFile(path, []byte(buf.String()), 0644); err != nil {
		s.recordError(report, file, err)
		return
	}
	report.FilesPatched++
}

func (s *FixService) recordError(report *domain.RunReport, file string, err error) {
	s.logger.Error("fixing file failed", "file", file, "error", err)
	report.Errors = append(report.Errors, domain.FileError{File: file, Error: err.Error()})
}

// resolvePath joins a possibly relative configured path onto the project
// root.
func resolvePath(projectPath, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(projectPath, p)
}
