package tsclog

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/tsfix/tsfix/internal/domain"
)

// lineRe matches tsc's plain diagnostic format:
//
//	src/App.tsx(12,8): error TS6133: 'React' is declared but its value is never read.
var lineRe = regexp.MustCompile(`^(.*?)\((\d+),(\d+)\): error (TS\d+): (.*)$`)

// LogParser implements domain.DiagnosticSource by scanning a tsc build log.
type LogParser struct{}

func New() *LogParser { return &LogParser{} }

// Parse reads the log once and materializes every matching line in log
// order. Non-matching lines (summary output, continuation lines) are
// skipped. A missing or unreadable log is an error.
func (p *LogParser) Parse(logPath string) ([]domain.Diagnostic, error) {
	f, err := os.Open(logPath)
	if err != nil {
		return nil, fmt.Errorf("opening build log: %w", err)
	}
	defer f.Close()

	var diags []domain.Diagnostic
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		m := lineRe.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		line, _ := strconv.Atoi(m[2])
		col, _ := strconv.Atoi(m[3])
		diags = append(diags, domain.Diagnostic{
			File:    m[1],
			Line:    line,
			Col:     col,
			Code:    m[4],
			Message: m[5],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading build log: %w", err)
	}
	return diags, nil
}
