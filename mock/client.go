// Package mock provides test doubles for notedown interfaces using
// function fields.
package mock

import (
	"context"

	"github.com/fwojciec/notedown"
)

// Interface compliance check.
var _ notedown.Client = (*Client)(nil)

// Client is a test double for notedown.Client.
// Set the function fields for the methods you need.
type Client struct {
	SearchFn       func(ctx context.Context, query string) ([]notedown.Page, error)
	PageFn         func(ctx context.Context, id string) (notedown.Page, error)
	PageBlocksFn   func(ctx context.Context, id string) ([]notedown.Block, error)
	CreatePageFn   func(ctx context.Context, parentID, title string, children []notedown.Block) (notedown.Page, error)
	AppendBlocksFn func(ctx context.Context, id string, children []notedown.Block) error
}

// Search delegates to SearchFn.
func (c *Client) Search(ctx context.Context, query string) ([]notedown.Page, error) {
	return c.SearchFn(ctx, query)
}

// Page delegates to PageFn.
func (c *Client) Page(ctx context.Context, id string) (notedown.Page, error) {
	return c.PageFn(ctx, id)
}

// PageBlocks delegates to PageBlocksFn.
func (c *Client) PageBlocks(ctx context.Context, id string) ([]notedown.Block, error) {
	return c.PageBlocksFn(ctx, id)
}

// CreatePage delegates to CreatePageFn.
func (c *Client) CreatePage(ctx context.Context, parentID, title string, children []notedown.Block) (notedown.Page, error) {
	return c.CreatePageFn(ctx, parentID, title, children)
}

// AppendBlocks delegates to AppendBlocksFn.
func (c *Client) AppendBlocks(ctx context.Context, id string, children []notedown.Block) error {
	return c.AppendBlocksFn(ctx, id, children)
}
