package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tsfix/tsfix/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	codeStyle     = lipgloss.NewStyle().Bold(true).Foreground(fg)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderSummary formats a parse-only report: diagnostics total and the code
// breakdown.
func RenderSummary(report *domain.RunReport) string {
	var b strings.Builder

	title := headerStyle.Render("tsfix")
	subtitle := dimStyle.Render("Build Log Summary")
	total := lipgloss.NewStyle().
		Bold(true).
		Foreground(countColor(report.Diagnostics)).
		Render(fmt.Sprintf("%d diagnostics", report.Diagnostics))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + total))
	b.WriteString("\n\n")

	renderMeta(&b, report)
	b.WriteString("\n")

	renderBreakdown(&b, report.TopCodes)

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n",
		titleStyle.Render("Unused identifiers"),
		warnStyle.Render(fmt.Sprintf("%d fixable (%s)", report.UnusedFound, domain.CodeUnusedIdentifier)),
	)

	return b.String()
}

// RenderFixReport formats the result of a fix run.
func RenderFixReport(report *domain.RunReport) string {
	var b strings.Builder

	title := headerStyle.Render("tsfix")
	subtitle := dimStyle.Render("Unused-Identifier Fixes")
	if report.DryRun {
		subtitle = dimStyle.Render("Unused-Identifier Fixes") + "  " + warnStyle.Render("(dry run)")
	}
	edits := lipgloss.NewStyle().
		Bold(true).
		Foreground(editsColor(report)).
		Render(fmt.Sprintf("%d edits", report.EditsApplied))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + edits))
	b.WriteString("\n\n")

	renderMeta(&b, report)
	b.WriteString("\n")

	renderBreakdown(&b, report.TopCodes)
	b.WriteString("\n")

	fmt.Fprintf(&b, "  %s\n", titleStyle.Render("Fix pass"))
	fmt.Fprintf(&b, "    %s %s\n", statLabel("unused found"), fmt.Sprintf("%d", report.UnusedFound))
	fmt.Fprintf(&b, "    %s %s\n", statLabel("edits applied"), passStyle.Render(fmt.Sprintf("%d", report.EditsApplied)))
	fmt.Fprintf(&b, "    %s %s\n", statLabel("files patched"), fmt.Sprintf("%d", report.FilesPatched))
	if report.FilesSkipped > 0 {
		fmt.Fprintf(&b, "    %s %s\n", statLabel("files skipped"), dimStyle.Render(fmt.Sprintf("%d (not found)", report.FilesSkipped)))
	}

	if len(report.Errors) > 0 {
		b.WriteString("\n")
		b.WriteString("  " + separatorLine + "\n\n")
		fmt.Fprintf(&b, "  %s  %s\n\n",
			titleStyle.Render("Recovered errors"),
			errorTagStyle.Render(fmt.Sprintf("%d", len(report.Errors))),
		)
		for _, fe := range report.Errors {
			fmt.Fprintf(&b, "    %s %s\n", errorTagStyle.Render("error"), fileStyle.Render(fe.File))
			fmt.Fprintf(&b, "          %s\n", dimStyle.Render(fe.Error))
		}
	}

	return b.String()
}

// RenderHistory formats fix-run history for terminal output.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No run history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Run History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		fmt.Fprintf(&b, "  %s  %s  %s  %s\n",
			dimStyle.Render(date),
			faintStyle.Render(hash),
			failStyle.Render(fmt.Sprintf("%d diagnostics", e.Diagnostics)),
			passStyle.Render(fmt.Sprintf("%d fixed", e.EditsApplied)),
		)
	}

	return b.String()
}

func renderMeta(b *strings.Builder, report *domain.RunReport) {
	fmt.Fprintf(b, "  %s %s\n", statLabel("log"), fileStyle.Render(report.LogFile))
	if report.CommitHash != "" {
		hash := report.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		fmt.Fprintf(b, "  %s %s\n", statLabel("commit"), faintStyle.Render(hash))
	}
}

func renderBreakdown(b *strings.Builder, codes []domain.CodeCount) {
	if len(codes) == 0 {
		fmt.Fprintf(b, "  %s\n", passStyle.Render("No diagnostics in the log."))
		return
	}

	fmt.Fprintf(b, "  %s\n", titleStyle.Render("Top codes"))

	maxCount := codes[0].Count
	for _, cc := range codes {
		bar := countBar(cc.Count, maxCount, 20)
		fmt.Fprintf(b, "    %s %s  %s\n",
			codeStyle.Render(padRight(cc.Code, 8)),
			bar,
			dimStyle.Render(fmt.Sprintf("%d", cc.Count)),
		)
	}
}

func statLabel(s string) string {
	return dimStyle.Render(padRight(s, 14))
}

func countBar(count, maxCount, width int) string {
	if maxCount <= 0 {
		maxCount = 1
	}
	filled := count * width / maxCount
	filled = max(1, min(filled, width))
	empty := width - filled

	filledStr := lipgloss.NewStyle().Foreground(warning).Render(strings.Repeat("█", filled))
	emptyStr := faintStyle.Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func countColor(n int) lipgloss.Color {
	switch {
	case n == 0:
		return success
	case n < 50:
		return warning
	default:
		return danger
	}
}

func editsColor(report *domain.RunReport) lipgloss.Color {
	if len(report.Errors) > 0 {
		return warning
	}
	if report.EditsApplied > 0 {
		return success
	}
	return fg
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
