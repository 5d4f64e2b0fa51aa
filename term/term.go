// Package term renders markdown to ANSI-styled terminal output using
// goldmark for parsing and lipgloss for styling. The CLI uses it to display
// fetched pages; it is presentation-only and plays no part in the
// markdown/block conversion pipelines.
package term

import "github.com/fwojciec/notedown"

// Render parses markdown source and returns ANSI-styled terminal output.
// Paragraphs and list items are word-wrapped to width. Code blocks are
// rendered at full width without reflow.
func Render(source string, width int, theme notedown.Theme) string {
	if source == "" {
		return ""
	}
	r := newRenderer(theme)
	return r.render([]byte(source), width)
}
