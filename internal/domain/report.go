package domain

// RunReport is the result of one parse-and-fix pass over a build log.
type RunReport struct {
	Timestamp    string      `json:"timestamp"`
	CommitHash   string      `json:"commit_hash,omitempty"`
	LogFile      string      `json:"log_file"`
	Diagnostics  int         `json:"diagnostics"`
	TopCodes     []CodeCount `json:"top_codes,omitempty"`
	UnusedFound  int         `json:"unused_found"`
	EditsApplied int         `json:"edits_applied"`
	FilesPatched int         `json:"files_patched"`
	FilesSkipped int         `json:"files_skipped"`
	DryRun       bool        `json:"dry_run,omitempty"`
	Errors       []FileError `json:"errors,omitempty"`
}

// FileError records a per-file failure that was recovered during a run.
type FileError struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

// FixOptions controls a fix run.
type FixOptions struct {
	// LogFile overrides the configured build log when non-empty.
	LogFile string `json:"log_file,omitempty"`
	// DryRun computes edits without writing any file.
	DryRun bool `json:"dry_run"`
	// RequireClean refuses to rewrite files when the git worktree has
	// uncommitted changes.
	RequireClean bool `json:"require_clean"`
}

// RunEntry is one persisted line of fix-run history.
type RunEntry struct {
	Timestamp    string `json:"timestamp"`
	CommitHash   string `json:"commit_hash,omitempty"`
	Diagnostics  int    `json:"diagnostics"`
	EditsApplied int    `json:"edits_applied"`
}
