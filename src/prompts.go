package src

import (
	"fmt"
	"unicode/utf8"
)

// SystemPrompt frames every request sent to the model endpoint.
const SystemPrompt = "You are Devyan, an expert software engineer who produces complete, " +
	"production-quality project artifacts. You write specific, detailed content with no " +
	"placeholders and no TODOs. You respond with the raw artifact only: never wrap your " +
	"response in markdown code fences, never add commentary before or after it."

// The later prompts embed a truncated prefix of earlier artifacts so each
// generation stays grounded in what was already produced.
const (
	architectureContextLimit = 500
	codeContextLimit         = 1000
)

func architecturePrompt(request string) string {
	return fmt.Sprintf("Create a comprehensive software architecture document for this request:\n%s\n\n"+
		"Your response must be a complete Markdown document with these sections:\n"+
		"1. Project Overview\n"+
		"2. System Architecture\n"+
		"3. Component Design\n"+
		"4. Data Flow\n"+
		"5. Implementation Strategy\n"+
		"6. Technology Stack\n"+
		"7. Development Phases\n\n"+
		"Write at least 800 characters, be specific, and include actual design decisions.\n"+
		"Respond with pure markdown content only. Do not wrap the response in code blocks.\n\n"+
		"Start your response with:\n# Architecture Document", request)
}

func codePrompt(request, architecture string) string {
	return fmt.Sprintf("Create a complete Go program implementing this request:\n%s\n\n"+
		"Based on this architecture:\n%s...\n\n"+
		"Requirements:\n"+
		"- A complete, working Go application in a single main.go file\n"+
		"- package main on the first line, all necessary imports\n"+
		"- Proper type and function structure with a main entry point\n"+
		"- Error handling on every fallible path\n"+
		"- At least 1000 characters, no placeholders, no TODOs\n\n"+
		"Respond with pure Go source only. Do not wrap the response in markdown code blocks,\n"+
		"do not start with a fence line, and do not end with one. Start directly with package main.",
		request, truncate(architecture, architectureContextLimit))
}

func testsPrompt(request, code string) string {
	return fmt.Sprintf("Create unit tests for this Go program:\n%s...\n\n"+
		"The program implements: %s\n\n"+
		"Requirements:\n"+
		"- Use the standard testing package\n"+
		"- package main on the first line so the tests live beside the code\n"+
		"- At least 5 test functions covering the main functionality\n"+
		"- At least 400 characters, executable test code, no placeholders\n\n"+
		"Respond with pure Go source only. Do not wrap the response in markdown code blocks.\n"+
		"Start directly with package main.",
		truncate(code, codeContextLimit), request)
}

func documentationPrompt(request string) string {
	return fmt.Sprintf("Create a comprehensive README.md for this project:\n%s\n\n"+
		"The project has these files: main.go, main_test.go, architecture.md.\n\n"+
		"Include these sections:\n"+
		"1. Project Title and Description\n"+
		"2. Features\n"+
		"3. Installation\n"+
		"4. Usage Examples\n"+
		"5. Testing\n"+
		"6. Project Structure\n"+
		"7. Contributing\n"+
		"8. License\n\n"+
		"Write at least 600 characters of practical, markdown-formatted content.\n"+
		"Respond with pure markdown only and do not wrap the response in code blocks.\n"+
		"Start with a # heading naming the project.", request)
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
