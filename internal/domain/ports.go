package domain

// DiagnosticSource produces the diagnostics recorded in a build log.
type DiagnosticSource interface {
	Parse(logPath string) ([]Diagnostic, error)
}

// ConfigLoader loads project configuration from a project directory.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// GitInfo exposes repository metadata for a project directory.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
	IsDirty(projectPath string) (bool, error)
}

// RunHistory persists fix-run entries per project.
type RunHistory interface {
	Save(projectPath string, entry RunEntry) error
	Load(projectPath string) ([]RunEntry, error)
}
