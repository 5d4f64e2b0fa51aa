package notion_test

import (
	"testing"

	"github.com/fwojciec/notedown"
	"github.com/fwojciec/notedown/notion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeID(t *testing.T) {
	t.Parallel()

	const want = "1429989f-e8ac-4eff-bc8f-57f56486db54"

	t.Run("raw 32-hex identifier gains dashes", func(t *testing.T) {
		t.Parallel()
		got, err := notion.NormalizeID("1429989fe8ac4effbc8f57f56486db54")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("dashed identifier is lowercased", func(t *testing.T) {
		t.Parallel()
		got, err := notion.NormalizeID("1429989F-E8AC-4EFF-BC8F-57F56486DB54")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("share URL slug", func(t *testing.T) {
		t.Parallel()
		got, err := notion.NormalizeID("https://www.notion.so/My-Page-1429989fe8ac4effbc8f57f56486db54")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("workspace URL p parameter", func(t *testing.T) {
		t.Parallel()
		got, err := notion.NormalizeID("https://www.notion.so/ws?p=1429989fe8ac4effbc8f57f56486db54&pm=s")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("surrounding whitespace is tolerated", func(t *testing.T) {
		t.Parallel()
		got, err := notion.NormalizeID("  1429989fe8ac4effbc8f57f56486db54\n")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("invalid inputs report ErrInvalidID", func(t *testing.T) {
		t.Parallel()
		for _, input := range []string{
			"",
			"not-an-id",
			"1429989fe8ac4effbc8f57f56486db5",   // 31 hex chars
			"1429989fe8ac4effbc8f57f56486db541", // 33 hex chars
			"https://www.notion.so/just-a-slug",
		} {
			_, err := notion.NormalizeID(input)
			assert.ErrorIs(t, err, notedown.ErrInvalidID, "input %q", input)
		}
	})
}
