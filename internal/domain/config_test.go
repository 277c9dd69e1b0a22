package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tsfix/tsfix/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()

	assert.Equal(t, domain.DefaultLogFile, cfg.LogFile)
	assert.Equal(t, ".", cfg.SourceRoot)
	assert.Equal(t, domain.DefaultTopCodes, cfg.TopCodes)
}

func TestNormalize_FillsZeroFields(t *testing.T) {
	cfg := domain.ProjectConfig{LogFile: "tsc.log"}.Normalize()

	assert.Equal(t, "tsc.log", cfg.LogFile)
	assert.Equal(t, ".", cfg.SourceRoot)
	assert.Equal(t, domain.DefaultTopCodes, cfg.TopCodes)
}

func TestValidate_RejectsNegativeTopCodes(t *testing.T) {
	cfg := domain.ProjectConfig{TopCodes: -1}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "top_codes")
}

func TestValidate_AcceptsDefaults(t *testing.T) {
	assert.NoError(t, domain.DefaultConfig().Validate())
}
