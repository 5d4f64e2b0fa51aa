package markdown_test

import (
	"testing"

	"github.com/fwojciec/notedown"
	"github.com/fwojciec/notedown/markdown"
	"github.com/stretchr/testify/assert"
)

func TestFromBlocks(t *testing.T) {
	t.Parallel()

	text := []notedown.RichText{notedown.Text("x")}

	t.Run("per-block prefixes", func(t *testing.T) {
		t.Parallel()
		cases := map[string]notedown.Block{
			"# x":     notedown.Heading1{Text: text},
			"## x":    notedown.Heading2{Text: text},
			"### x":   notedown.Heading3{Text: text},
			"x":       notedown.Paragraph{Text: text},
			"- x":     notedown.BulletedListItem{Text: text},
			"1. x":    notedown.NumberedListItem{Text: text},
			"- [ ] x": notedown.ToDo{Text: text},
			"- [x] x": notedown.ToDo{Text: text, Checked: true},
			"> x":     notedown.Quote{Text: text},
			"---":     notedown.Divider{},
		}
		for want, block := range cases {
			assert.Equal(t, want, markdown.FromBlocks([]notedown.Block{block}))
		}
	})

	t.Run("numbered items always renumber from one", func(t *testing.T) {
		t.Parallel()
		got := markdown.FromBlocks([]notedown.Block{
			notedown.NumberedListItem{Text: []notedown.RichText{notedown.Text("a")}},
			notedown.NumberedListItem{Text: []notedown.RichText{notedown.Text("b")}},
		})
		assert.Equal(t, "1. a\n\n1. b", got)
	})

	t.Run("code block renders a three-line fence", func(t *testing.T) {
		t.Parallel()
		got := markdown.FromBlocks([]notedown.Block{notedown.Code{
			Text:     []notedown.RichText{notedown.Text("const x=1;")},
			Language: "javascript",
		}})
		assert.Equal(t, "```javascript\nconst x=1;\n```", got)
	})

	t.Run("blocks separate with one blank line", func(t *testing.T) {
		t.Parallel()
		got := markdown.FromBlocks([]notedown.Block{
			notedown.Heading1{Text: []notedown.RichText{notedown.Text("T")}},
			notedown.Paragraph{Text: []notedown.RichText{notedown.Text("p")}},
		})
		assert.Equal(t, "# T\n\np", got)
	})

	t.Run("unknown variant falls back to its payload", func(t *testing.T) {
		t.Parallel()
		got := markdown.FromBlocks([]notedown.Block{
			notedown.Unsupported{Type: "callout", Text: []notedown.RichText{notedown.Text("note")}},
		})
		assert.Equal(t, "note", got)
	})

	t.Run("unknown variant without payload contributes nothing", func(t *testing.T) {
		t.Parallel()
		got := markdown.FromBlocks([]notedown.Block{
			notedown.Paragraph{Text: text},
			notedown.Unsupported{Type: "synced_block"},
			notedown.Paragraph{Text: text},
		})
		assert.Equal(t, "x\n\nx", got)
	})

	t.Run("empty input renders empty string", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", markdown.FromBlocks(nil))
	})
}

func TestRunRenderingOrder(t *testing.T) {
	t.Parallel()

	t.Run("code nests inside bold", func(t *testing.T) {
		t.Parallel()
		got := markdown.FromBlocks([]notedown.Block{notedown.Paragraph{Text: []notedown.RichText{{
			Content:     "x",
			Annotations: notedown.Annotations{Bold: true, Code: true},
		}}}})
		assert.Equal(t, "**`x`**", got)
	})

	t.Run("link wraps outermost", func(t *testing.T) {
		t.Parallel()
		got := markdown.FromBlocks([]notedown.Block{notedown.Paragraph{Text: []notedown.RichText{{
			Content:     "x",
			Annotations: notedown.Annotations{Bold: true},
			Link:        "https://example.com",
		}}}})
		assert.Equal(t, "[**x**](https://example.com)", got)
	})

	t.Run("all five in fixed nesting order", func(t *testing.T) {
		t.Parallel()
		got := markdown.FromBlocks([]notedown.Block{notedown.Paragraph{Text: []notedown.RichText{{
			Content: "x",
			Annotations: notedown.Annotations{
				Bold: true, Italic: true, Strikethrough: true, Code: true,
			},
			Link: "u",
		}}}})
		assert.Equal(t, "[~~***`x`***~~](u)", got)
	})
}

func TestToPlainTextHandBuilt(t *testing.T) {
	t.Parallel()

	got := markdown.ToPlainText([]notedown.Block{
		notedown.Heading2{Text: []notedown.RichText{notedown.Text("H")}},
		notedown.Paragraph{Text: []notedown.RichText{
			{Content: "a", Annotations: notedown.Annotations{Bold: true}},
			notedown.Text(" b"),
			{Content: "c", Link: "url"},
		}},
		notedown.Divider{},
		notedown.Paragraph{},
	})
	assert.Equal(t, "H\na bc", got)
}
