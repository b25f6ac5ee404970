package src

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterWritesAllFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "direct_sample_20260314_150926")
	w, err := NewWriter(dir, zerolog.Nop())
	require.NoError(t, err)

	content := FallbackContent("sample project")
	report := w.WriteAll(content)

	require.True(t, report.Complete())
	for name, size := range report {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Equal(t, size, len(data), name)
	}
}

func TestWriterResanitizesBeforeWriting(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir, zerolog.Nop())
	require.NoError(t, err)

	content := ProjectContent{
		Architecture:  "```markdown\n# Design\n```",
		Code:          "```go\npackage app\n\nfunc main() {}\n```",
		Tests:         "package main\n\nimport \"testing\"\n\nfunc TestX(t *testing.T) {}",
		Documentation: "# Readme",
	}
	w.WriteAll(content)

	code, err := os.ReadFile(filepath.Join(dir, "main.go"))
	require.NoError(t, err)
	assert.Equal(t, "package main\n\nfunc main() {}", string(code))

	arch, err := os.ReadFile(filepath.Join(dir, "architecture.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Design", string(arch))
}

func TestWriterContinuesPastSingleFileFailure(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir, zerolog.Nop())
	require.NoError(t, err)

	// A directory squatting on the code filename forces that write to fail.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "main.go"), 0o755))

	report := w.WriteAll(FallbackContent("sample"))
	assert.False(t, report.Complete())
	assert.Equal(t, 3, report.Successful())
	assert.Zero(t, report["main.go"])

	_, err = os.Stat(filepath.Join(dir, "README.md"))
	assert.NoError(t, err)
}
