package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsfix/tsfix/internal/domain"
)

func TestUnusedDeclFrom_Match(t *testing.T) {
	d := domain.Diagnostic{
		File:    "src/App.tsx",
		Line:    3,
		Col:     8,
		Code:    domain.CodeUnusedIdentifier,
		Message: "'React' is declared but its value is never read.",
	}

	decl, ok := domain.UnusedDeclFrom(d)
	require.True(t, ok)
	assert.Equal(t, "React", decl.Identifier)
	assert.Equal(t, 3, decl.Line)
}

func TestUnusedDeclFrom_OtherCode(t *testing.T) {
	d := domain.Diagnostic{
		Code:    "TS2304",
		Message: "'Foo' is declared but its value is never read.",
	}

	_, ok := domain.UnusedDeclFrom(d)
	assert.False(t, ok)
}

func TestUnusedDeclFrom_MessageShapeMismatch(t *testing.T) {
	d := domain.Diagnostic{
		Code:    domain.CodeUnusedIdentifier,
		Message: "All destructured elements are unused.",
	}

	_, ok := domain.UnusedDeclFrom(d)
	assert.False(t, ok)
}

func TestGroupUnused_PreservesLogOrderPerFile(t *testing.T) {
	diags := []domain.Diagnostic{
		{File: "a.ts", Line: 5, Code: domain.CodeUnusedIdentifier, Message: "'x' is declared but its value is never read."},
		{File: "b.ts", Line: 1, Code: domain.CodeUnusedIdentifier, Message: "'y' is declared but its value is never read."},
		{File: "a.ts", Line: 2, Code: domain.CodeUnusedIdentifier, Message: "'z' is declared but its value is never read."},
		{File: "a.ts", Line: 9, Code: "TS2304", Message: "Cannot find name 'foo'."},
	}

	groups := domain.GroupUnused(diags)
	require.Len(t, groups, 2)
	require.Len(t, groups["a.ts"], 2)
	assert.Equal(t, "x", groups["a.ts"][0].Identifier)
	assert.Equal(t, "z", groups["a.ts"][1].Identifier)
	require.Len(t, groups["b.ts"], 1)
}

func TestSortDescending_StableOnEqualLines(t *testing.T) {
	decls := []domain.UnusedDecl{
		{Line: 2, Identifier: "first"},
		{Line: 10, Identifier: "high"},
		{Line: 2, Identifier: "second"},
	}

	domain.SortDescending(decls)

	assert.Equal(t, "high", decls[0].Identifier)
	assert.Equal(t, "first", decls[1].Identifier)
	assert.Equal(t, "second", decls[2].Identifier)
}

func TestTopCodes_OrdersByCountThenCode(t *testing.T) {
	diags := []domain.Diagnostic{
		{Code: "TS6133"}, {Code: "TS6133"}, {Code: "TS6133"},
		{Code: "TS2304"}, {Code: "TS2304"},
		{Code: "TS2339"}, {Code: "TS2339"},
		{Code: "TS7006"},
	}

	top := domain.TopCodes(diags, 10)
	require.Len(t, top, 4)
	assert.Equal(t, domain.CodeCount{Code: "TS6133", Count: 3}, top[0])
	// Equal counts fall back to code order.
	assert.Equal(t, domain.CodeCount{Code: "TS2304", Count: 2}, top[1])
	assert.Equal(t, domain.CodeCount{Code: "TS2339", Count: 2}, top[2])
	assert.Equal(t, domain.CodeCount{Code: "TS7006", Count: 1}, top[3])
}

func TestTopCodes_Truncates(t *testing.T) {
	diags := []domain.Diagnostic{
		{Code: "TS1"}, {Code: "TS2"}, {Code: "TS3"},
	}

	top := domain.TopCodes(diags, 2)
	assert.Len(t, top, 2)
}

func TestTopCodes_NonPositiveNReturnsAll(t *testing.T) {
	diags := []domain.Diagnostic{
		{Code: "TS1"}, {Code: "TS2"}, {Code: "TS3"},
	}

	top := domain.TopCodes(diags, 0)
	assert.Len(t, top, 3)
}
