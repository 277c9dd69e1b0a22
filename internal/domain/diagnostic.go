package domain

import (
	"regexp"
	"sort"
)

// Diagnostic is a single compiler diagnostic parsed from a tsc build log.
type Diagnostic struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CodeUnusedIdentifier is tsc's "declared but its value is never read" code.
const CodeUnusedIdentifier = "TS6133"

// unusedMessageRe extracts the identifier from messages like
// "'React' is declared but its value is never read."
var unusedMessageRe = regexp.MustCompile(`'([^']+)' is declared but`)

// UnusedDecl is one declared-but-unused identifier at a specific line.
type UnusedDecl struct {
	Line       int    `json:"line"`
	Identifier string `json:"identifier"`
}

// UnusedDeclFrom derives an UnusedDecl from an unused-identifier diagnostic.
// Reports false when the diagnostic carries another code or its message does
// not name a quoted identifier.
func UnusedDeclFrom(d Diagnostic) (UnusedDecl, bool) {
	if d.Code != CodeUnusedIdentifier {
		return UnusedDecl{}, false
	}
	m := unusedMessageRe.FindStringSubmatch(d.Message)
	if m == nil {
		return UnusedDecl{}, false
	}
	return UnusedDecl{Line: d.Line, Identifier: m[1]}, true
}

// GroupUnused collects unused-identifier declarations keyed by source file,
// preserving log order within each file.
func GroupUnused(diags []Diagnostic) map[string][]UnusedDecl {
	groups := make(map[string][]UnusedDecl)
	for _, d := range diags {
		if decl, ok := UnusedDeclFrom(d); ok {
			groups[d.File] = append(groups[d.File], decl)
		}
	}
	return groups
}

// SortDescending orders declarations by line number, highest first, so an
// edit never shifts the line numbers of entries still to be applied.
// Order among equal line numbers is preserved.
func SortDescending(decls []UnusedDecl) {
	sort.SliceStable(decls, func(i, j int) bool { return decls[i].Line > decls[j].Line })
}

// CodeCount pairs a diagnostic code with its occurrence count.
type CodeCount struct {
	Code  string `json:"code"`
	Count int    `json:"count"`
}

// TopCodes returns the n most frequent diagnostic codes, most frequent
// first. Equal counts order by code so output is stable across runs.
// n <= 0 returns all codes.
func TopCodes(diags []Diagnostic, n int) []CodeCount {
	counts := make(map[string]int)
	for _, d := range diags {
		counts[d.Code]++
	}

	all := make([]CodeCount, 0, len(counts))
	for code, count := range counts {
		all = append(all, CodeCount{Code: code, Count: count})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count > all[j].Count
		}
		return all[i].Code < all[j].Code
	})

	if n > 0 && len(all) > n {
		all = all[:n]
	}
	return all
}
