package src

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateShortInputUnchanged(t *testing.T) {
	assert.Equal(t, "hello", truncate("hello", 10))
	assert.Equal(t, "hello", truncate("hello", 5))
}

func TestTruncateNeverSplitsRunes(t *testing.T) {
	s := strings.Repeat("héllo wörld ", 20)
	for n := 0; n < 40; n++ {
		out := truncate(s, n)
		assert.LessOrEqual(t, len(out), n)
		assert.True(t, utf8.ValidString(out), "cut at %d produced invalid UTF-8: %q", n, out)
	}
}

func TestCodePromptEmbedsArchitecturePrefix(t *testing.T) {
	arch := strings.Repeat("design ", 200)
	p := codePrompt("calculator", arch)
	assert.Contains(t, p, arch[:architectureContextLimit])
	assert.NotContains(t, p, arch)
}
