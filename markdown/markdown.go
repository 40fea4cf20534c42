// Package markdown renders answer text to ANSI-styled terminal output using
// goldmark for parsing and lipgloss for styling. Answers arrive from the
// answering service as complete markdown documents, so the renderer works on
// whole inputs with no streaming concerns.
package markdown

import "github.com/hnasir/askbook"

// Render parses markdown source and returns ANSI-styled terminal output.
// Paragraphs and list items are word-wrapped to width; code blocks keep
// their original line breaks.
func Render(source string, width int, theme askbook.Theme) string {
	if source == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r := newRenderer(theme)
	return r.render([]byte(source), width)
}
