package markdown

import (
	"regexp"
	"strings"

	"github.com/fwojciec/notedown"
)

// numberedItem matches an ordered-list line: digits, a dot, one or more
// spaces, then content. The numeric value is irrelevant to classification.
var numberedItem = regexp.MustCompile(`^(\d+)\.\s+(.*)$`)

// classifyLine maps one prose line to a block, or nil for blank lines.
// Longest-prefix markers are tested first: "### " before "## " before "# ",
// and checkbox markers before the generic bullet they also match. Anything
// unrecognized becomes a paragraph.
func classifyLine(line string) notedown.Block {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return nil
	case strings.HasPrefix(line, "### "):
		return notedown.Heading3{Text: ParseInline(line[4:])}
	case strings.HasPrefix(line, "## "):
		return notedown.Heading2{Text: ParseInline(line[3:])}
	case strings.HasPrefix(line, "# "):
		return notedown.Heading1{Text: ParseInline(line[2:])}
	case strings.HasPrefix(line, "- [ ] "):
		return notedown.ToDo{Text: ParseInline(line[6:])}
	case strings.HasPrefix(line, "- [x] "):
		return notedown.ToDo{Text: ParseInline(line[6:]), Checked: true}
	case strings.HasPrefix(line, "- "):
		return notedown.BulletedListItem{Text: ParseInline(line[2:])}
	case strings.HasPrefix(line, "> "):
		return notedown.Quote{Text: ParseInline(line[2:])}
	case line == "---" || line == "***" || line == "___":
		return notedown.Divider{}
	case numberedItem.MatchString(line):
		m := numberedItem.FindStringSubmatch(line)
		return notedown.NumberedListItem{Text: ParseInline(m[2])}
	default:
		return notedown.Paragraph{Text: ParseInline(line)}
	}
}
