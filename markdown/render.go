package markdown

import (
	"strings"

	"github.com/fwojciec/notedown"
)

// FromBlocks renders blocks back to markdown, separated by blank lines.
// Blocks with nothing to contribute are skipped.
func FromBlocks(blocks []notedown.Block) string {
	rendered := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if s, ok := renderBlock(b); ok {
			rendered = append(rendered, s)
		}
	}
	return strings.Join(rendered, "\n\n")
}

func renderBlock(b notedown.Block) (string, bool) {
	switch b := b.(type) {
	case notedown.Heading1:
		return "# " + renderRuns(b.Text), true
	case notedown.Heading2:
		return "## " + renderRuns(b.Text), true
	case notedown.Heading3:
		return "### " + renderRuns(b.Text), true
	case notedown.Paragraph:
		return renderRuns(b.Text), true
	case notedown.BulletedListItem:
		return "- " + renderRuns(b.Text), true
	case notedown.NumberedListItem:
		// Source numbering is not preserved; every item renders as "1. ".
		return "1. " + renderRuns(b.Text), true
	case notedown.ToDo:
		if b.Checked {
			return "- [x] " + renderRuns(b.Text), true
		}
		return "- [ ] " + renderRuns(b.Text), true
	case notedown.Quote:
		return "> " + renderRuns(b.Text), true
	case notedown.Code:
		return "```" + b.Language + "\n" + concatRuns(b.Text) + "\n```", true
	case notedown.Divider:
		return "---", true
	default:
		// Unknown variants fall back to their inline payload, if any.
		if rt := b.RichText(); len(rt) > 0 {
			return renderRuns(rt), true
		}
		return "", false
	}
}

func renderRuns(runs []notedown.RichText) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(renderRun(r))
	}
	return sb.String()
}

// renderRun applies annotation markup innermost-first: code backticks, bold,
// italic, strikethrough, and finally a link wrapping the outermost syntax.
// This order exactly inverts the scanner's priority, so single-annotation
// runs round-trip.
func renderRun(r notedown.RichText) string {
	s := r.Content
	if r.Annotations.Code {
		s = "`" + s + "`"
	}
	if r.Annotations.Bold {
		s = "**" + s + "**"
	}
	if r.Annotations.Italic {
		s = "*" + s + "*"
	}
	if r.Annotations.Strikethrough {
		s = "~~" + s + "~~"
	}
	if r.Link != "" {
		s = "[" + s + "](" + r.Link + ")"
	}
	return s
}

// concatRuns joins run contents with no markup, used for code bodies and
// plain-text extraction.
func concatRuns(runs []notedown.RichText) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.Content)
	}
	return sb.String()
}
