// Package notedown defines the domain model for a Notion workspace bridge:
// a typed block document model, the rich-text run model, and the client
// interface implemented by the API layer. Conversion between markdown and
// blocks lives in the markdown subpackage.
package notedown

// Annotations are the rendering attributes a text run can carry. The data
// model allows any combination; the markdown scanner only ever produces runs
// with at most one annotation set.
type Annotations struct {
	Bold          bool
	Italic        bool
	Strikethrough bool
	Code          bool
}

// RichText is a contiguous span of rendered text with optional annotations
// and an optional hyperlink target. Runs are immutable values: the converter
// builds them in one pass and nothing mutates them afterwards.
type RichText struct {
	Content     string
	Annotations Annotations
	Link        string
}

// Text returns a plain run with no annotations or link.
func Text(content string) RichText {
	return RichText{Content: content}
}

// Block is a sealed interface representing one structural unit of a document.
// A document is an ordered slice of blocks with no owning container.
// The unexported marker method prevents external implementations.
// RichText returns the block's inline payload without requiring a type
// switch; it is nil for blocks that carry none.
type Block interface {
	isBlock()
	RichText() []RichText
}

// Heading1 is a top-level heading.
type Heading1 struct {
	Text []RichText
}

func (Heading1) isBlock() {}

// RichText returns the heading's inline payload.
func (b Heading1) RichText() []RichText { return b.Text }

// Heading2 is a second-level heading.
type Heading2 struct {
	Text []RichText
}

func (Heading2) isBlock() {}

// RichText returns the heading's inline payload.
func (b Heading2) RichText() []RichText { return b.Text }

// Heading3 is a third-level heading.
type Heading3 struct {
	Text []RichText
}

func (Heading3) isBlock() {}

// RichText returns the heading's inline payload.
func (b Heading3) RichText() []RichText { return b.Text }

// Paragraph is a plain text block, also the fallback for any line that
// matches no structural pattern.
type Paragraph struct {
	Text []RichText
}

func (Paragraph) isBlock() {}

// RichText returns the paragraph's inline payload.
func (b Paragraph) RichText() []RichText { return b.Text }

// BulletedListItem is a single unordered list item.
type BulletedListItem struct {
	Text []RichText
}

func (BulletedListItem) isBlock() {}

// RichText returns the item's inline payload.
func (b BulletedListItem) RichText() []RichText { return b.Text }

// NumberedListItem is a single ordered list item. Source numbering is not
// preserved; rendering always emits "1. ".
type NumberedListItem struct {
	Text []RichText
}

func (NumberedListItem) isBlock() {}

// RichText returns the item's inline payload.
func (b NumberedListItem) RichText() []RichText { return b.Text }

// ToDo is a checkbox list item.
type ToDo struct {
	Text    []RichText
	Checked bool
}

func (ToDo) isBlock() {}

// RichText returns the item's inline payload.
func (b ToDo) RichText() []RichText { return b.Text }

// Quote is a block quotation.
type Quote struct {
	Text []RichText
}

func (Quote) isBlock() {}

// RichText returns the quote's inline payload.
func (b Quote) RichText() []RichText { return b.Text }

// Code is a fenced code block. The body is carried as a single unformatted
// run. Language defaults to "plain text" when the fence had no tag.
type Code struct {
	Text     []RichText
	Language string
}

func (Code) isBlock() {}

// RichText returns the code body as a single-run payload.
func (b Code) RichText() []RichText { return b.Text }

// Divider is a horizontal rule. It carries no payload.
type Divider struct{}

func (Divider) isBlock() {}

// RichText returns nil; dividers have no inline payload.
func (Divider) RichText() []RichText { return nil }

// Unsupported is the explicit unknown-variant arm. The API layer produces it
// for block types outside the supported set so that rendering can fall back
// to whatever inline payload was found instead of failing.
type Unsupported struct {
	Type string
	Text []RichText
}

func (Unsupported) isBlock() {}

// RichText returns any inline payload recovered from the unknown block.
func (b Unsupported) RichText() []RichText { return b.Text }

// Interface compliance checks.
var (
	_ Block = Heading1{}
	_ Block = Heading2{}
	_ Block = Heading3{}
	_ Block = Paragraph{}
	_ Block = BulletedListItem{}
	_ Block = NumberedListItem{}
	_ Block = ToDo{}
	_ Block = Quote{}
	_ Block = Code{}
	_ Block = Divider{}
	_ Block = Unsupported{}
)
