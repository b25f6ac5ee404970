package src

import (
	"regexp"
	"strings"
)

// Model responses routinely arrive wrapped in markdown fences even when the
// prompt forbids it. Everything here is a pure string transform: any input,
// including the empty string, comes back as a string.
var (
	openGoFenceRe = regexp.MustCompile("(?mi)^```[ \t]*(?:go|golang)[ \t]*\r?\n")
	openMdFenceRe = regexp.MustCompile("(?mi)^```[ \t]*(?:markdown|md)[ \t]*\r?\n")
	bareFenceRe   = regexp.MustCompile("(?m)^```[ \t]*\r?\n")
	closeFenceRe  = regexp.MustCompile("(?m)\n```[ \t]*\r?$")
	strayFenceRe  = regexp.MustCompile("(?m)^```.*$")
	blankRunRe    = regexp.MustCompile(`\n{3,}`)

	packageClauseRe = regexp.MustCompile(`(?m)^package[ \t]+[A-Za-z_][A-Za-z0-9_]*`)
)

// SanitizeGoSource strips markdown artifacts from generated Go code and
// forces a canonical package clause. Idempotent; clean input passes through
// unchanged.
func SanitizeGoSource(content string) string {
	if content == "" {
		return content
	}

	content = openGoFenceRe.ReplaceAllString(content, "")
	content = bareFenceRe.ReplaceAllString(content, "")
	content = closeFenceRe.ReplaceAllString(content, "")
	content = strayFenceRe.ReplaceAllString(content, "")
	content = strings.TrimSpace(content)

	// Canonical entrypoint marker: replace a foreign package clause, insert
	// one when the model forgot it entirely.
	if loc := packageClauseRe.FindStringIndex(content); loc != nil {
		if content[loc[0]:loc[1]] != "package main" {
			content = content[:loc[0]] + "package main" + content[loc[1]:]
		}
	} else {
		content = "package main\n\n" + content
	}

	content = blankRunRe.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}

// SanitizeMarkdown removes fence wrappers that never belong in a markdown
// document body and collapses excessive blank runs.
func SanitizeMarkdown(content string) string {
	if content == "" {
		return content
	}

	content = openMdFenceRe.ReplaceAllString(content, "")
	content = closeFenceRe.ReplaceAllString(content, "")
	content = blankRunRe.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}
