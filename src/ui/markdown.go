package ui

import "github.com/charmbracelet/glamour"

// RenderMarkdown pretty-prints markdown for terminal display. On renderer
// failure the raw text comes back unchanged so the view never goes blank.
func RenderMarkdown(text string, width int) string {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return out
}
