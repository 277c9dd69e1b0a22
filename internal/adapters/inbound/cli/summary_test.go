package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryCommand_JSON(t *testing.T) {
	dir := setupProject(t)

	output, err := runCommand(t, "summary", dir, "--json")
	require.NoError(t, err)

	var report struct {
		Diagnostics int `json:"diagnostics"`
		UnusedFound int `json:"unused_found"`
		TopCodes    []struct {
			Code  string `json:"code"`
			Count int    `json:"count"`
		} `json:"top_codes"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &report))

	assert.Equal(t, 4, report.Diagnostics)
	assert.Equal(t, 3, report.UnusedFound)
	require.NotEmpty(t, report.TopCodes)
	assert.Equal(t, "TS6133", report.TopCodes[0].Code)
	assert.Equal(t, 3, report.TopCodes[0].Count)
}

func TestSummaryCommand_DefaultTUI(t *testing.T) {
	dir := setupProject(t)

	output, err := runCommand(t, "summary", dir)
	require.NoError(t, err)
	assert.Contains(t, output, "tsfix")
	assert.Contains(t, output, "4 diagnostics")
	assert.Contains(t, output, "TS6133")
}

func TestSummaryCommand_LogOverride(t *testing.T) {
	dir := setupProject(t)
	require.NoError(t, os.Rename(
		filepath.Join(dir, "build-errors.txt"),
		filepath.Join(dir, "tsc.log"),
	))

	_, err := runCommand(t, "summary", dir)
	require.Error(t, err)

	output, err := runCommand(t, "summary", dir, "--log", "tsc.log")
	require.NoError(t, err)
	assert.Contains(t, output, "4 diagnostics")
}

func TestSummaryCommand_SARIFExport(t *testing.T) {
	dir := setupProject(t)
	sarifPath := filepath.Join(dir, "report.sarif")

	output, err := runCommand(t, "summary", dir, "--sarif", sarifPath)
	require.NoError(t, err)
	assert.Contains(t, output, "SARIF report written to")

	data, err := os.ReadFile(sarifPath)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
	assert.Contains(t, string(data), "TS6133")
}

func TestSummaryCommand_TopLimit(t *testing.T) {
	dir := setupProject(t)

	output, err := runCommand(t, "summary", dir, "--top", "1", "--json")
	require.NoError(t, err)

	var report struct {
		TopCodes []struct {
			Code string `json:"code"`
		} `json:"top_codes"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &report))
	require.Len(t, report.TopCodes, 1)
	assert.Equal(t, "TS6133", report.TopCodes[0].Code)
}
