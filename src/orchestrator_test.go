package src

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Create a simple calculator app", "create_a_simple"},
		{"Build TODO-List Manager!!", "build_todolist_manager"},
		{"x", "x"},
		{"", "project"},
		{"!!! ??? ...", "project"},
		{"supercalifragilistic expialidocious antidisestablishment", "supercalifragilistic_expialido"},
	}
	for _, c := range cases {
		got := slugify(c.in)
		assert.Equal(t, c.want, got, "input %q", c.in)
		assert.LessOrEqual(t, len(got), 30)
	}
}

func TestRunRejectsEmptyRequest(t *testing.T) {
	run := NewRun(Config{OutputDir: t.TempDir()}, &scriptedClient{}, "   \n ", nil, zerolog.Nop())
	err := run.Execute(context.Background())
	require.ErrorIs(t, err, ErrEmptyRequest)
	assert.Empty(t, run.Dir)
}

func TestRunOfflineProducesCompleteProject(t *testing.T) {
	out := t.TempDir()
	cfg := Config{OutputDir: out}
	client := &scriptedClient{err: errors.New("server unreachable")}

	var lines []string
	run := NewRun(cfg, client, "Create a simple calculator", func(l string) { lines = append(lines, l) }, zerolog.Nop())
	run.now = func() time.Time { return time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC) }

	require.NoError(t, run.Execute(context.Background()))
	assert.True(t, run.Success)
	assert.Equal(t, filepath.Join(out, "direct_create_a_simple_20260314_150926"), run.Dir)

	for _, name := range []string{"architecture.md", "main.go", "main_test.go", "README.md"} {
		data, err := os.ReadFile(filepath.Join(run.Dir, name))
		require.NoError(t, err, name)
		assert.NotEmpty(t, data, name)
	}

	code, err := os.ReadFile(filepath.Join(run.Dir, "main.go"))
	require.NoError(t, err)
	ok, diag := ValidateGoSyntax(string(code))
	assert.True(t, ok, diag)

	report := strings.Join(lines, "\n")
	assert.Contains(t, report, "Success rate: 100%")
}

func TestRunDiscardsPartialContentWholesale(t *testing.T) {
	out := t.TempDir()
	goodCode := fallbackCode("placeholder goal")
	goodTests := fallbackTests("")
	longArch := strings.Repeat("## Section\nDetailed design notes here.\n", 40)

	// The final reply is far below the documentation floor, which must push
	// the whole record onto the fallback templates despite three good replies.
	client := &scriptedClient{replies: []string{longArch, goodCode, goodTests, "too short"}}

	run := NewRun(Config{OutputDir: out}, client, "Create an expense tracker", nil, zerolog.Nop())
	require.NoError(t, run.Execute(context.Background()))
	require.True(t, run.Success)

	code, err := os.ReadFile(filepath.Join(run.Dir, "main.go"))
	require.NoError(t, err)
	assert.Contains(t, string(code), "func NewApp")

	arch, err := os.ReadFile(filepath.Join(run.Dir, "architecture.md"))
	require.NoError(t, err)
	assert.Contains(t, string(arch), "Create an expense tracker")
	assert.NotContains(t, string(arch), "Detailed design notes")
}

// panickyClient stands in for a transport that blows up mid-call.
type panickyClient struct{}

func (panickyClient) Complete(context.Context, string, string) (string, error) {
	panic("transport state corrupted")
}

func TestRunContainsClientPanic(t *testing.T) {
	var lines []string
	run := NewRun(Config{OutputDir: t.TempDir()}, panickyClient{}, "build a calculator",
		func(l string) { lines = append(lines, l) }, zerolog.Nop())

	err := run.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")
	assert.False(t, run.Success)
	assert.Contains(t, strings.Join(lines, "\n"), "Generation failed")
}

func TestRunReportCountsBytes(t *testing.T) {
	out := t.TempDir()
	client := &scriptedClient{err: errors.New("down")}
	run := NewRun(Config{OutputDir: out}, client, "quiz game", nil, zerolog.Nop())
	require.NoError(t, run.Execute(context.Background()))

	total := 0
	for _, name := range []string{"architecture.md", "main.go", "main_test.go", "README.md"} {
		info, err := os.Stat(filepath.Join(run.Dir, name))
		require.NoError(t, err)
		total += int(info.Size())
	}
	assert.Equal(t, total, run.Report.TotalBytes())
	assert.Equal(t, 4, run.Report.Successful())
	assert.True(t, run.Report.Complete())
}
