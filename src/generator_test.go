package src

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedClient returns canned replies in call order, or a fixed error.
type scriptedClient struct {
	replies []string
	err     error
	calls   int
}

func (s *scriptedClient) Complete(_ context.Context, _, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	if len(s.replies) == 0 {
		return "", errors.New("no scripted reply left")
	}
	reply := s.replies[0]
	s.replies = s.replies[1:]
	return reply, nil
}

func TestGeneratorFallsBackWhenAllCallsFail(t *testing.T) {
	client := &scriptedClient{err: errors.New("connection refused")}
	gen := NewGenerator(client, "build a calculator", nil)
	ctx := context.Background()

	arch := gen.GenerateArchitecture(ctx)
	code := gen.GenerateCode(ctx, arch)
	tests := gen.GenerateTests(ctx, code)
	docs := gen.GenerateDocumentation(ctx)

	assert.Equal(t, fallbackArchitecture("build a calculator"), arch)
	assert.Equal(t, fallbackCode("build a calculator"), code)
	assert.Equal(t, fallbackTests("build a calculator"), tests)
	assert.Equal(t, fallbackDocumentation("build a calculator"), docs)
	assert.Equal(t, 4, client.calls)
}

func TestGeneratorRejectsUnparseableCode(t *testing.T) {
	client := &scriptedClient{replies: []string{"func main() { this is not go"}}
	gen := NewGenerator(client, "build a thing", nil)

	code := gen.GenerateCode(context.Background(), "")
	assert.Equal(t, fallbackCode("build a thing"), code)
}

func TestGeneratorSanitizesCodeReply(t *testing.T) {
	client := &scriptedClient{replies: []string{"```go\npackage app\n\nfunc main() {}\n```"}}
	gen := NewGenerator(client, "build a thing", nil)

	code := gen.GenerateCode(context.Background(), "")
	assert.Equal(t, "package main\n\nfunc main() {}", code)
}

func TestGeneratorAddsTestingImport(t *testing.T) {
	client := &scriptedClient{replies: []string{"package main\n\nfunc TestNothing(t *testing.T) {}"}}
	gen := NewGenerator(client, "build a thing", nil)

	tests := gen.GenerateTests(context.Background(), "")
	require.Contains(t, tests, `import "testing"`)
	ok, diag := ValidateGoSyntax(tests)
	assert.True(t, ok, diag)
}

func TestGeneratorEmitsProgressLines(t *testing.T) {
	client := &scriptedClient{err: errors.New("down")}
	var lines []string
	gen := NewGenerator(client, "build a thing", func(line string) { lines = append(lines, line) })

	gen.GenerateArchitecture(context.Background())
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "fallback")
}
