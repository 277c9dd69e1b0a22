package sarifout

import (
	"fmt"
	"io"
	"os"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/tsfix/tsfix/internal/domain"
)

const (
	toolName = "tsc"
	infoURI  = "https://www.typescriptlang.org/docs/handbook/compiler-options.html"
)

// Write exports parsed diagnostics as a SARIF 2.1.0 report at outPath.
// Each TS code becomes a rule and every diagnostic a result with a physical
// location.
func Write(diags []domain.Diagnostic, outPath string) error {
	f, err := os.OpenFile(outPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer f.Close()

	return WriteTo(diags, f)
}

// WriteTo renders the SARIF report to w.
func WriteTo(diags []domain.Diagnostic, w io.Writer) error {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return fmt.Errorf("creating SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(toolName, infoURI)
	seen := map[string]bool{}
	for _, d := range diags {
		if !seen[d.Code] {
			run.AddRule(d.Code).
				WithDefaultConfiguration(&sarif.ReportingConfiguration{Level: "error"})
			seen[d.Code] = true
		}

		location := sarif.NewLocation().WithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithUri(d.File)).
				WithRegion(sarif.NewRegion().WithStartLine(d.Line).WithStartColumn(d.Col)),
		)

		run.AddResult(sarif.NewRuleResult(d.Code).
			WithMessage(sarif.NewTextMessage(d.Message)).
			WithLevel("error").
			WithLocations([]*sarif.Location{location}))
	}
	report.AddRun(run)

	if err := report.PrettyWrite(w); err != nil {
		return fmt.Errorf("writing SARIF report: %w", err)
	}
	return nil
}
