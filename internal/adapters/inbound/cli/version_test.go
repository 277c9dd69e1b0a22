package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	output, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, output, "tsfix")
	assert.Contains(t, output, "dev")
}
