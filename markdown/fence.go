package markdown

import "strings"

// defaultLanguage tags code segments whose opening fence carried no language.
const defaultLanguage = "plain text"

// fenceState is the splitter's position relative to a code fence.
type fenceState int

const (
	inProse fenceState = iota
	inFence
)

// segment is a contiguous run of prose or fenced-code lines, in original
// line order. Prose segments keep their blank lines; the classifier drops
// them later.
type segment struct {
	code     bool
	language string
	lines    []string
}

// splitFences separates fenced code regions from ordinary text. A line whose
// trimmed content starts with three backticks toggles the state; any text
// after the marker on an opening line is the language tag. Nested fences are
// not supported: a marker inside a fence closes it. An unterminated fence is
// flushed as a code segment at end of input.
func splitFences(source string) []segment {
	if source == "" {
		return nil
	}

	var (
		segs     []segment
		state    fenceState
		language string
		acc      []string
	)
	flushProse := func() {
		if len(acc) > 0 {
			segs = append(segs, segment{lines: acc})
			acc = nil
		}
	}
	flushCode := func() {
		segs = append(segs, segment{code: true, language: language, lines: acc})
		acc = nil
	}

	for _, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			if state == inProse {
				flushProse()
				language = strings.TrimSpace(trimmed[3:])
				if language == "" {
					language = defaultLanguage
				}
				state = inFence
			} else {
				flushCode()
				state = inProse
			}
			continue
		}
		acc = append(acc, line)
	}

	if state == inFence {
		if len(acc) > 0 {
			flushCode()
		}
	} else {
		flushProse()
	}
	return segs
}
