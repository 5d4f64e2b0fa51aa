package markdown

import (
	"regexp"

	"github.com/fwojciec/notedown"
)

// construct identifies one of the five recognized inline syntaxes.
type construct int

const (
	constructBold construct = iota
	constructItalic
	constructStrikethrough
	constructCode
	constructLink
)

// inlinePatterns pairs each construct with its non-greedy matcher, in
// priority order. Bold precedes italic so that "**x**" matches as one bold
// construct instead of two adjacent italics; ties on start position are
// broken by this order.
var inlinePatterns = []struct {
	kind construct
	re   *regexp.Regexp
}{
	{constructBold, regexp.MustCompile(`\*\*(.+?)\*\*`)},
	{constructItalic, regexp.MustCompile(`\*(.+?)\*`)},
	{constructStrikethrough, regexp.MustCompile(`~~(.+?)~~`)},
	{constructCode, regexp.MustCompile("`(.+?)`")},
	{constructLink, regexp.MustCompile(`\[(.+?)\]\((.+?)\)`)},
}

// candidate is one construct's match within the unconsumed suffix. Candidates
// are ordered by start position, then by pattern priority.
type candidate struct {
	kind construct
	loc  []int // submatch indices relative to the suffix
}

// ParseInline scans a plain string into an ordered sequence of runs. The
// scanner is single-pass and non-recursive: it repeatedly picks the earliest
// construct match in the remaining suffix, emits any preceding text as a
// plain run, emits the matched run, and continues after the match. Captured
// inner text is not re-scanned, so markup inside a matched construct stays
// literal. Input with no matches yields a single plain run.
func ParseInline(text string) []notedown.RichText {
	var runs []notedown.RichText
	rest := text
	for rest != "" {
		c, ok := nextCandidate(rest)
		if !ok {
			runs = append(runs, notedown.Text(rest))
			break
		}
		if c.loc[0] > 0 {
			runs = append(runs, notedown.Text(rest[:c.loc[0]]))
		}
		runs = append(runs, makeRun(c, rest))
		rest = rest[c.loc[1]:]
	}
	return runs
}

// nextCandidate returns the winning candidate in the suffix: smallest start
// position, with pattern order breaking ties.
func nextCandidate(s string) (candidate, bool) {
	var (
		best  candidate
		found bool
	)
	for _, p := range inlinePatterns {
		loc := p.re.FindStringSubmatchIndex(s)
		if loc == nil {
			continue
		}
		if !found || loc[0] < best.loc[0] {
			best = candidate{kind: p.kind, loc: loc}
			found = true
		}
	}
	return best, found
}

func makeRun(c candidate, s string) notedown.RichText {
	inner := s[c.loc[2]:c.loc[3]]
	switch c.kind {
	case constructBold:
		return notedown.RichText{Content: inner, Annotations: notedown.Annotations{Bold: true}}
	case constructItalic:
		return notedown.RichText{Content: inner, Annotations: notedown.Annotations{Italic: true}}
	case constructStrikethrough:
		return notedown.RichText{Content: inner, Annotations: notedown.Annotations{Strikethrough: true}}
	case constructCode:
		return notedown.RichText{Content: inner, Annotations: notedown.Annotations{Code: true}}
	default: // constructLink
		return notedown.RichText{Content: inner, Link: s[c.loc[4]:c.loc[5]]}
	}
}
