package notedown

import (
	"context"
	"time"
)

// Page is the metadata surface of a workspace page.
type Page struct {
	ID             string
	Title          string
	URL            string
	CreatedTime    time.Time
	LastEditedTime time.Time
}

// Client is the workspace API surface consumed by the tool layer and the CLI.
// Implementations accept raw identifiers or share URLs wherever an id is
// expected and canonicalize them before issuing requests.
type Client interface {
	// Search returns pages matching the query, in API relevance order.
	Search(ctx context.Context, query string) ([]Page, error)

	// Page retrieves a page's metadata.
	Page(ctx context.Context, id string) (Page, error)

	// PageBlocks retrieves the full block content of a page, following
	// pagination until exhausted.
	PageBlocks(ctx context.Context, id string) ([]Block, error)

	// CreatePage creates a child page under the given parent with the given
	// title and initial content.
	CreatePage(ctx context.Context, parentID, title string, children []Block) (Page, error)

	// AppendBlocks appends blocks to the end of a page.
	AppendBlocks(ctx context.Context, id string, children []Block) error
}
