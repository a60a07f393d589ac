package llm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPromptFallback(t *testing.T) {
	assert.Equal(t, "fallback", LoadPrompt("", "fallback"))
	assert.Equal(t, "fallback", LoadPrompt("/nonexistent/prompt.txt", "fallback"))
}

func TestLoadPromptFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.txt")
	require.NoError(t, os.WriteFile(path, []byte("  custom prompt\n"), 0644))

	assert.Equal(t, "custom prompt", LoadPrompt(path, "fallback"))
}

func TestLoadPromptEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n\n"), 0644))

	assert.Equal(t, "fallback", LoadPrompt(path, "fallback"))
}
