// Package markdown converts between a lightweight markdown dialect and the
// typed block model in the root package.
//
// The forward pipeline compiles markdown to blocks: a fence splitter
// separates fenced code regions from prose, a line classifier maps each
// prose line to a block, and an inline scanner turns plain strings into
// annotated runs. The reverse pipeline renders blocks back to markdown or
// flattens them to plain text.
//
// Every operation is a pure function of its input and is total: malformed
// or unsupported syntax degrades to paragraphs or passes through verbatim,
// and nothing here returns an error or panics.
package markdown

import (
	"strings"

	"github.com/fwojciec/notedown"
)

// ToBlocks compiles markdown source into an ordered sequence of blocks.
// Empty input yields nil. An unterminated code fence is treated as code
// rather than an error.
func ToBlocks(source string) []notedown.Block {
	var blocks []notedown.Block
	for _, seg := range splitFences(source) {
		if seg.code {
			blocks = append(blocks, notedown.Code{
				Text:     []notedown.RichText{notedown.Text(strings.Join(seg.lines, "\n"))},
				Language: seg.language,
			})
			continue
		}
		for _, line := range seg.lines {
			if b := classifyLine(line); b != nil {
				blocks = append(blocks, b)
			}
		}
	}
	return blocks
}
