package markdown_test

import (
	"testing"

	"github.com/fwojciec/notedown"
	"github.com/fwojciec/notedown/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBlocks(t *testing.T) {
	t.Parallel()

	t.Run("empty input yields no blocks", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, markdown.ToBlocks(""))
	})

	t.Run("heading levels", func(t *testing.T) {
		t.Parallel()
		blocks := markdown.ToBlocks("# One\n\n## Two\n\n### Three")
		require.Len(t, blocks, 3)
		h1, ok := blocks[0].(notedown.Heading1)
		require.True(t, ok)
		assert.Equal(t, "One", h1.Text[0].Content)
		_, ok = blocks[1].(notedown.Heading2)
		assert.True(t, ok)
		_, ok = blocks[2].(notedown.Heading3)
		assert.True(t, ok)
	})

	t.Run("deeper heading matched before shallower", func(t *testing.T) {
		t.Parallel()
		blocks := markdown.ToBlocks("### not an h1")
		require.Len(t, blocks, 1)
		h3, ok := blocks[0].(notedown.Heading3)
		require.True(t, ok)
		assert.Equal(t, "not an h1", h3.Text[0].Content)
	})

	t.Run("hash without space is a paragraph", func(t *testing.T) {
		t.Parallel()
		blocks := markdown.ToBlocks("#nope")
		require.Len(t, blocks, 1)
		p, ok := blocks[0].(notedown.Paragraph)
		require.True(t, ok)
		assert.Equal(t, "#nope", p.Text[0].Content)
	})

	t.Run("bulleted list items in order", func(t *testing.T) {
		t.Parallel()
		blocks := markdown.ToBlocks("- a\n- b")
		require.Len(t, blocks, 2)
		first, ok := blocks[0].(notedown.BulletedListItem)
		require.True(t, ok)
		assert.Equal(t, "a", first.Text[0].Content)
		second, ok := blocks[1].(notedown.BulletedListItem)
		require.True(t, ok)
		assert.Equal(t, "b", second.Text[0].Content)
	})

	t.Run("numbered list ignores the literal numbers", func(t *testing.T) {
		t.Parallel()
		blocks := markdown.ToBlocks("7. a\n99. b")
		require.Len(t, blocks, 2)
		for i, want := range []string{"a", "b"} {
			item, ok := blocks[i].(notedown.NumberedListItem)
			require.True(t, ok)
			assert.Equal(t, want, item.Text[0].Content)
		}
	})

	t.Run("todo checked state", func(t *testing.T) {
		t.Parallel()
		blocks := markdown.ToBlocks("- [ ] open\n- [x] done")
		require.Len(t, blocks, 2)
		open, ok := blocks[0].(notedown.ToDo)
		require.True(t, ok)
		assert.False(t, open.Checked)
		assert.Equal(t, "open", open.Text[0].Content)
		done, ok := blocks[1].(notedown.ToDo)
		require.True(t, ok)
		assert.True(t, done.Checked)
	})

	t.Run("todo matched before generic bullet", func(t *testing.T) {
		t.Parallel()
		blocks := markdown.ToBlocks("- [ ] still a todo")
		require.Len(t, blocks, 1)
		_, ok := blocks[0].(notedown.ToDo)
		assert.True(t, ok)
	})

	t.Run("uppercase checkbox falls through to bullet", func(t *testing.T) {
		t.Parallel()
		blocks := markdown.ToBlocks("- [X] loud")
		require.Len(t, blocks, 1)
		item, ok := blocks[0].(notedown.BulletedListItem)
		require.True(t, ok)
		assert.Equal(t, "[X] loud", item.Text[0].Content)
	})

	t.Run("quote", func(t *testing.T) {
		t.Parallel()
		blocks := markdown.ToBlocks("> wisdom")
		require.Len(t, blocks, 1)
		q, ok := blocks[0].(notedown.Quote)
		require.True(t, ok)
		assert.Equal(t, "wisdom", q.Text[0].Content)
	})

	t.Run("divider forms", func(t *testing.T) {
		t.Parallel()
		for _, src := range []string{"---", "***", "___"} {
			blocks := markdown.ToBlocks(src)
			require.Len(t, blocks, 1, "source %q", src)
			_, ok := blocks[0].(notedown.Divider)
			assert.True(t, ok, "source %q", src)
		}
	})

	t.Run("lines are trimmed before classification", func(t *testing.T) {
		t.Parallel()
		blocks := markdown.ToBlocks("   # Indented   ")
		require.Len(t, blocks, 1)
		h1, ok := blocks[0].(notedown.Heading1)
		require.True(t, ok)
		assert.Equal(t, "Indented", h1.Text[0].Content)
	})

	t.Run("blank lines produce no blocks", func(t *testing.T) {
		t.Parallel()
		blocks := markdown.ToBlocks("a\n\n\n\nb")
		require.Len(t, blocks, 2)
	})

	t.Run("code fence with language tag", func(t *testing.T) {
		t.Parallel()
		blocks := markdown.ToBlocks("```javascript\nconst x=1;\n```")
		require.Len(t, blocks, 1)
		code, ok := blocks[0].(notedown.Code)
		require.True(t, ok)
		assert.Equal(t, "javascript", code.Language)
		require.Len(t, code.Text, 1)
		assert.Equal(t, "const x=1;", code.Text[0].Content)
		assert.Equal(t, notedown.Annotations{}, code.Text[0].Annotations)
	})

	t.Run("code fence without tag defaults to plain text", func(t *testing.T) {
		t.Parallel()
		blocks := markdown.ToBlocks("```\nbody\n```")
		require.Len(t, blocks, 1)
		code, ok := blocks[0].(notedown.Code)
		require.True(t, ok)
		assert.Equal(t, "plain text", code.Language)
	})

	t.Run("unterminated fence degrades to code", func(t *testing.T) {
		t.Parallel()
		blocks := markdown.ToBlocks("before\n```go\nfmt.Println()")
		require.Len(t, blocks, 2)
		_, ok := blocks[0].(notedown.Paragraph)
		assert.True(t, ok)
		code, ok := blocks[1].(notedown.Code)
		require.True(t, ok)
		assert.Equal(t, "go", code.Language)
		assert.Equal(t, "fmt.Println()", code.Text[0].Content)
	})

	t.Run("fence markers inside code are not parsed as blocks", func(t *testing.T) {
		t.Parallel()
		blocks := markdown.ToBlocks("```\n# not a heading\n- not a list\n```")
		require.Len(t, blocks, 1)
		code, ok := blocks[0].(notedown.Code)
		require.True(t, ok)
		assert.Equal(t, "# not a heading\n- not a list", code.Text[0].Content)
	})

	t.Run("prose resumes after a closing fence", func(t *testing.T) {
		t.Parallel()
		blocks := markdown.ToBlocks("intro\n\n```py\nprint(1)\n```\n\noutro")
		require.Len(t, blocks, 3)
		_, ok := blocks[0].(notedown.Paragraph)
		assert.True(t, ok)
		_, ok = blocks[1].(notedown.Code)
		assert.True(t, ok)
		outro, ok := blocks[2].(notedown.Paragraph)
		require.True(t, ok)
		assert.Equal(t, "outro", outro.Text[0].Content)
	})

	t.Run("inline formatting reaches block payloads", func(t *testing.T) {
		t.Parallel()
		blocks := markdown.ToBlocks("- has **bold** inside")
		require.Len(t, blocks, 1)
		item, ok := blocks[0].(notedown.BulletedListItem)
		require.True(t, ok)
		require.Len(t, item.Text, 3)
		assert.True(t, item.Text[1].Annotations.Bold)
	})
}

// Round trip on supported single-annotation syntax: markdown that uses one
// block and at most one non-overlapping annotation survives a full
// blocks-and-back conversion byte-for-byte.
func TestRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []string{
		"**bold**",
		"*italic*",
		"`code`",
		"~~deleted~~",
		"[text](url)",
		"plain paragraph",
		"# Heading",
		"## Heading",
		"### Heading",
		"- item",
		"1. item",
		"- [ ] open",
		"- [x] done",
		"> quoted",
		"---",
		"```javascript\nconst x=1;\n```",
		"# One\n\ntwo\n\n- three",
	}
	for _, src := range cases {
		assert.Equal(t, src, markdown.FromBlocks(markdown.ToBlocks(src)), "source %q", src)
	}
}

func TestPlainTextExtraction(t *testing.T) {
	t.Parallel()

	t.Run("markup is stripped and separators collapse", func(t *testing.T) {
		t.Parallel()
		src := "# Title\n\nSome **bold** and a [link](url).\n\n---\n\n- item"
		got := markdown.ToPlainText(markdown.ToBlocks(src))
		assert.Equal(t, "Title\nSome bold and a link.\nitem", got)
	})

	t.Run("empty input yields empty string", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", markdown.ToPlainText(nil))
	})
}
