package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/fwojciec/notedown"
)

// Interface compliance check.
var _ notedown.Client = (*Client)(nil)

// Client implements [notedown.Client] for the Notion REST API.
type Client struct {
	token      string
	baseURL    string
	version    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL sets the API base URL. Useful for testing with httptest.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithVersion sets the Notion-Version header value.
func WithVersion(v string) Option {
	return func(c *Client) { c.version = v }
}

// WithMinInterval sets the minimum delay between outbound requests. Zero
// disables pacing.
func WithMinInterval(d time.Duration) Option {
	return func(c *Client) {
		if d <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		c.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

// New creates a new [Client] with the given integration token and options.
func New(token string, opts ...Option) *Client {
	c := &Client{
		token:      token,
		baseURL:    defaultBaseURL,
		version:    defaultVersion,
		httpClient: http.DefaultClient,
		limiter:    rate.NewLimiter(rate.Every(defaultMinInterval), 1),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Search returns pages matching the query, in API relevance order.
func (c *Client) Search(ctx context.Context, query string) ([]notedown.Page, error) {
	req := searchRequest{
		Query:  query,
		Filter: &searchFilter{Value: "page", Property: "object"},
	}
	var resp searchResponse
	if err := c.do(ctx, http.MethodPost, searchPath, req, &resp); err != nil {
		return nil, err
	}
	pages := make([]notedown.Page, 0, len(resp.Results))
	for _, p := range resp.Results {
		pages = append(pages, pageFromAPI(p))
	}
	return pages, nil
}

// Page retrieves a page's metadata.
func (c *Client) Page(ctx context.Context, id string) (notedown.Page, error) {
	pageID, err := NormalizeID(id)
	if err != nil {
		return notedown.Page{}, err
	}
	var resp apiPage
	if err := c.do(ctx, http.MethodGet, pagesPath+"/"+pageID, nil, &resp); err != nil {
		return notedown.Page{}, err
	}
	return pageFromAPI(resp), nil
}

// PageBlocks retrieves the full block content of a page, following cursor
// pagination until exhausted.
func (c *Client) PageBlocks(ctx context.Context, id string) ([]notedown.Block, error) {
	pageID, err := NormalizeID(id)
	if err != nil {
		return nil, err
	}
	var blocks []notedown.Block
	cursor := ""
	for {
		path := fmt.Sprintf("%s/%s/children?page_size=%d", blocksPath, pageID, maxPageSize)
		if cursor != "" {
			path += "&start_cursor=" + url.QueryEscape(cursor)
		}
		var resp childrenResponse
		if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
			return nil, err
		}
		for _, b := range resp.Results {
			blocks = append(blocks, blockFromAPI(b))
		}
		if !resp.HasMore || resp.NextCursor == "" {
			return blocks, nil
		}
		cursor = resp.NextCursor
	}
}

// CreatePage creates a child page under the given parent.
func (c *Client) CreatePage(ctx context.Context, parentID, title string, children []notedown.Block) (notedown.Page, error) {
	parent, err := NormalizeID(parentID)
	if err != nil {
		return notedown.Page{}, err
	}
	req := createPageRequest{
		Parent: apiParent{PageID: parent},
		Properties: map[string]apiProperty{
			"title": {Title: []apiRichText{textToAPI(notedown.Text(title))}},
		},
		Children: blocksToAPI(children),
	}
	var resp apiPage
	if err := c.do(ctx, http.MethodPost, pagesPath, req, &resp); err != nil {
		return notedown.Page{}, err
	}
	page := pageFromAPI(resp)
	if page.Title == "" {
		page.Title = title
	}
	return page, nil
}

// AppendBlocks appends blocks to the end of a page.
func (c *Client) AppendBlocks(ctx context.Context, id string, children []notedown.Block) error {
	pageID, err := NormalizeID(id)
	if err != nil {
		return err
	}
	req := appendRequest{Children: blocksToAPI(children)}
	return c.do(ctx, http.MethodPatch, blocksPath+"/"+pageID+"/children", req, nil)
}

// do issues one paced, authenticated request and decodes the response into
// out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("notion: %w", err)
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("notion: encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("notion: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", c.version)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notion: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return parseHTTPError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("notion: decode response: %w", err)
	}
	return nil
}

func parseHTTPError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("notion: HTTP %d (failed to read body: %w)", resp.StatusCode, err)
	}
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Code == "" {
		return fmt.Errorf("notion: HTTP %d: %s", resp.StatusCode, string(body))
	}
	if sentinel := sentinelForCode(apiErr.Code); sentinel != nil {
		return fmt.Errorf("notion: %s: %w", apiErr.Message, sentinel)
	}
	return fmt.Errorf("notion: %s: %s", apiErr.Code, apiErr.Message)
}

// sentinelForCode maps API error codes to the root package's sentinel
// errors so callers can match with errors.Is. Unmapped codes return nil.
func sentinelForCode(code string) error {
	switch code {
	case "object_not_found":
		return notedown.ErrNotFound
	case "unauthorized", "restricted_resource":
		return notedown.ErrUnauthorized
	case "rate_limited":
		return notedown.ErrRateLimited
	case "validation_error", "invalid_json", "invalid_request":
		return notedown.ErrValidation
	default:
		return nil
	}
}
