package domain

import (
	"regexp"
	"strings"
)

// EditKind identifies which rewrite pattern fired for a line.
type EditKind string

const (
	EditNone          EditKind = ""
	EditImportList    EditKind = "import_list"
	EditImportRemoved EditKind = "import_removed"
	EditCommentedOut  EditKind = "commented_out"
)

var braceGroupRe = regexp.MustCompile(`\{([^}]+)\}`)

// FileBuffer holds the lines of one source file during a patch pass.
// Lines are stored without terminators and addressed 1-based, matching
// compiler diagnostics. A blanked line keeps its slot as an empty line so
// later entries stay aligned.
type FileBuffer struct {
	lines []string
	dirty bool
}

func NewFileBuffer(content string) *FileBuffer {
	return &FileBuffer{lines: strings.Split(content, "\n")}
}

func (b *FileBuffer) Len() int { return len(b.lines) }

// Line returns the 1-based line, or false when out of range.
func (b *FileBuffer) Line(n int) (string, bool) {
	if n < 1 || n > len(b.lines) {
		return "", false
	}
	return b.lines[n-1], true
}

// Dirty reports whether any edit was applied.
func (b *FileBuffer) Dirty() bool { return b.dirty }

// String reassembles the buffer for write-back.
func (b *FileBuffer) String() string { return strings.Join(b.lines, "\n") }

func (b *FileBuffer) setLine(n int, text string) {
	b.lines[n-1] = text
	b.dirty = true
}

// ApplyUnused applies the unused-identifier removal patterns to the line the
// declaration points at. At most that one line is mutated. Out-of-range
// lines and lines matching no pattern are left untouched and report
// EditNone.
func (b *FileBuffer) ApplyUnused(decl UnusedDecl) EditKind {
	line, ok := b.Line(decl.Line)
	if !ok {
		return EditNone
	}

	if strings.Contains(line, "import") {
		return b.applyImport(decl, line)
	}

	declRe := regexp.MustCompile(`\b(const|let|var)\s+` + regexp.QuoteMeta(decl.Identifier) + `\b`)
	if declRe.MatchString(line) {
		// Destructuring may still bind names that are in use; leave the
		// whole line alone rather than guess.
		if strings.ContainsAny(line, "{[") {
			return EditNone
		}
		b.setLine(decl.Line, "// "+line)
		return EditCommentedOut
	}

	return EditNone
}

// applyImport handles the two import shapes: a named import list, where the
// identifier is removed from the braces, and a default import, where the
// whole line is blanked.
func (b *FileBuffer) applyImport(decl UnusedDecl, line string) EditKind {
	if strings.Contains(line, "{") && strings.Contains(line, "}") {
		loc := braceGroupRe.FindStringSubmatchIndex(line)
		if loc == nil {
			return EditNone
		}

		names := splitNames(line[loc[2]:loc[3]])
		kept := make([]string, 0, len(names))
		found := false
		for _, n := range names {
			if !found && n == decl.Identifier {
				found = true
				continue
			}
			kept = append(kept, n)
		}
		if !found {
			return EditNone
		}

		if len(kept) == 0 {
			b.setLine(decl.Line, "")
			return EditImportRemoved
		}

		// Only the first brace group is rewritten.
		rebuilt := line[:loc[0]] + "{ " + strings.Join(kept, ", ") + " }" + line[loc[1]:]
		b.setLine(decl.Line, rebuilt)
		return EditImportList
	}

	defaultRe := regexp.MustCompile(`import\s+` + regexp.QuoteMeta(decl.Identifier) + `\s+from`)
	if defaultRe.MatchString(line) {
		b.setLine(decl.Line, "")
		return EditImportRemoved
	}

	return EditNone
}

func splitNames(inner string) []string {
	parts := strings.Split(inner, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		names = append(names, strings.TrimSpace(p))
	}
	return names
}
