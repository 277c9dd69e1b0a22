package sarifout_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsfix/tsfix/internal/adapters/outbound/sarifout"
	"github.com/tsfix/tsfix/internal/domain"
)

var sampleDiags = []domain.Diagnostic{
	{File: "src/App.tsx", Line: 1, Col: 8, Code: "TS6133", Message: "'React' is declared but its value is never read."},
	{File: "src/App.tsx", Line: 9, Col: 3, Code: "TS2339", Message: "Property 'foo' does not exist on type 'Bar'."},
	{File: "src/Other.tsx", Line: 4, Col: 7, Code: "TS6133", Message: "'x' is declared but its value is never read."},
}

func TestWriteTo_ProducesValidSARIF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sarifout.WriteTo(sampleDiags, &buf))

	var doc struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name  string `json:"name"`
					Rules []struct {
						ID string `json:"id"`
					} `json:"rules"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID  string `json:"ruleId"`
				Message struct {
					Text string `json:"text"`
				} `json:"message"`
				Locations []struct {
					PhysicalLocation struct {
						ArtifactLocation struct {
							URI string `json:"uri"`
						} `json:"artifactLocation"`
						Region struct {
							StartLine   int `json:"startLine"`
							StartColumn int `json:"startColumn"`
						} `json:"region"`
					} `json:"physicalLocation"`
				} `json:"locations"`
			} `json:"results"`
		} `json:"runs"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "2.1.0", doc.Version)
	require.Len(t, doc.Runs, 1)
	run := doc.Runs[0]

	assert.Equal(t, "tsc", run.Tool.Driver.Name)
	// One rule per distinct code, no duplicates.
	require.Len(t, run.Tool.Driver.Rules, 2)
	assert.Equal(t, "TS6133", run.Tool.Driver.Rules[0].ID)
	assert.Equal(t, "TS2339", run.Tool.Driver.Rules[1].ID)

	require.Len(t, run.Results, 3)
	first := run.Results[0]
	assert.Equal(t, "TS6133", first.RuleID)
	assert.Equal(t, "'React' is declared but its value is never read.", first.Message.Text)
	require.Len(t, first.Locations, 1)
	assert.Equal(t, "src/App.tsx", first.Locations[0].PhysicalLocation.ArtifactLocation.URI)
	assert.Equal(t, 1, first.Locations[0].PhysicalLocation.Region.StartLine)
	assert.Equal(t, 8, first.Locations[0].PhysicalLocation.Region.StartColumn)
}

func TestWrite_CreatesFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "report.sarif")
	require.NoError(t, sarifout.Write(sampleDiags, outPath))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}

func TestWriteTo_EmptyDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sarifout.WriteTo(nil, &buf))
	assert.True(t, json.Valid(buf.Bytes()))
}
