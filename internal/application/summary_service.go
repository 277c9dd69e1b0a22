package application

import (
	"time"

	"github.com/tsfix/tsfix/internal/domain"
)

// SummaryService runs parse-only passes over a build log. It never touches
// source files.
type SummaryService struct {
	source domain.DiagnosticSource
	git    domain.GitInfo
}

func NewSummaryService(source domain.DiagnosticSource, git domain.GitInfo) *SummaryService {
	return &SummaryService{source: source, git: git}
}

// Summarize parses the build log and aggregates code frequencies. The raw
// diagnostics are returned alongside the report for export formats.
func (s *SummaryService) Summarize(projectPath string, cfg domain.ProjectConfig, logFile string) (*domain.RunReport, []domain.Diagnostic, error) {
	if logFile == "" {
		logFile = cfg.LogFile
	}

	diags, err := s.source.Parse(resolvePath(projectPath, logFile))
	if err != nil {
		return nil, nil, err
	}

	report := &domain.RunReport{
		Timestamp:   time.Now().Format(time.RFC3339),
		LogFile:     logFile,
		Diagnostics: len(diags),
		TopCodes:    domain.TopCodes(diags, cfg.TopCodes),
	}
	for _, d := range diags {
		if _, ok := domain.UnusedDeclFrom(d); ok {
			report.UnusedFound++
		}
	}

	if s.git != nil {
		if hash, err := s.git.CommitHash(projectPath); err == nil {
			report.CommitHash = hash
		}
	}

	return report, diags, nil
}
