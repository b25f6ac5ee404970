package src

import (
	"context"
	"fmt"
	"strings"
)

// Generator produces the four project artifacts in fixed order, sanitizing
// every model response and swapping in the fallback template whenever a call
// fails or generated code does not parse. Calls are never retried.
type Generator struct {
	client  ChatClient
	request string
	emit    func(string)
}

func NewGenerator(client ChatClient, request string, emit func(string)) *Generator {
	return &Generator{client: client, request: request, emit: emit}
}

func (g *Generator) say(format string, args ...any) {
	if g.emit != nil {
		g.emit(fmt.Sprintf(format, args...))
	}
}

// GenerateArchitecture produces the architecture document.
func (g *Generator) GenerateArchitecture(ctx context.Context) string {
	g.say("📐 Generating architecture...")
	resp, err := g.client.Complete(ctx, SystemPrompt, architecturePrompt(g.request))
	if err != nil {
		g.say("⚠️ architecture generation failed: %v, using fallback", err)
		return fallbackArchitecture(g.request)
	}
	return SanitizeMarkdown(resp)
}

// GenerateCode produces the main program, grounded on a prefix of the
// architecture document. Invalid syntax discards the response entirely.
func (g *Generator) GenerateCode(ctx context.Context, architecture string) string {
	g.say("💻 Generating application code...")
	resp, err := g.client.Complete(ctx, SystemPrompt, codePrompt(g.request, architecture))
	if err != nil {
		g.say("⚠️ code generation failed: %v, using fallback", err)
		return fallbackCode(g.request)
	}

	code := SanitizeGoSource(resp)
	if ok, diag := ValidateGoSyntax(code); !ok {
		g.say("⚠️ generated code rejected (%s), using fallback", diag)
		return fallbackCode(g.request)
	}
	return code
}

// GenerateTests produces the test file, grounded on a prefix of the code.
func (g *Generator) GenerateTests(ctx context.Context, code string) string {
	g.say("🧪 Generating tests...")
	resp, err := g.client.Complete(ctx, SystemPrompt, testsPrompt(g.request, code))
	if err != nil {
		g.say("⚠️ test generation failed: %v, using fallback", err)
		return fallbackTests(g.request)
	}

	tests := SanitizeGoSource(resp)
	tests = ensureTestingImport(tests)
	if ok, diag := ValidateGoSyntax(tests); !ok {
		g.say("⚠️ generated tests rejected (%s), using fallback", diag)
		return fallbackTests(g.request)
	}
	return tests
}

// GenerateDocumentation produces the README.
func (g *Generator) GenerateDocumentation(ctx context.Context) string {
	g.say("📖 Generating documentation...")
	resp, err := g.client.Complete(ctx, SystemPrompt, documentationPrompt(g.request))
	if err != nil {
		g.say("⚠️ documentation generation failed: %v, using fallback", err)
		return fallbackDocumentation(g.request)
	}
	return SanitizeMarkdown(resp)
}

// ensureTestingImport inserts a testing import when the model forgot one.
// Files may carry several import declarations, so a dedicated clause after
// the package line is always safe.
func ensureTestingImport(tests string) string {
	if strings.Contains(tests, `"testing"`) {
		return tests
	}
	return strings.Replace(tests, "package main", "package main\n\nimport \"testing\"", 1)
}
