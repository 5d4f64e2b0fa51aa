package markdown

import (
	"strings"

	"github.com/fwojciec/notedown"
)

// ToPlainText flattens blocks to bare text: annotations, links, and block
// semantics are dropped, each block's run contents are concatenated into one
// line, and non-empty lines are joined with single newlines. Blocks without
// an inline payload contribute nothing.
func ToPlainText(blocks []notedown.Block) string {
	var lines []string
	for _, b := range blocks {
		if line := concatRuns(b.RichText()); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
