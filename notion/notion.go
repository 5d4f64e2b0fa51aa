// Package notion implements [notedown.Client] against the Notion REST API.
//
// The client authenticates with a bearer token, pins an API version header,
// and paces outbound requests through a rate limiter so bursts of tool calls
// stay inside the API's request budget. Wire payloads are mapped to the root
// block model in convert.go; unknown block types degrade to
// [notedown.Unsupported] instead of failing.
package notion

import "time"

const (
	defaultBaseURL = "https://api.notion.com"
	defaultVersion = "2022-06-28"

	// The API allows an average of three requests per second per
	// integration; the default limiter spaces requests accordingly.
	defaultMinInterval = time.Second / 3

	searchPath = "/v1/search"
	pagesPath  = "/v1/pages"
	blocksPath = "/v1/blocks"

	// Maximum page_size the children endpoint accepts.
	maxPageSize = 100
)

// apiError is the error envelope returned with non-2xx responses.
type apiError struct {
	Object  string `json:"object"`
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// apiRichText is the wire form of a rich text object.
type apiRichText struct {
	Type        string          `json:"type,omitempty"`
	Text        *apiText        `json:"text,omitempty"`
	Annotations *apiAnnotations `json:"annotations,omitempty"`
	PlainText   string          `json:"plain_text,omitempty"`
}

type apiText struct {
	Content string   `json:"content"`
	Link    *apiLink `json:"link,omitempty"`
}

type apiLink struct {
	URL string `json:"url"`
}

type apiAnnotations struct {
	Bold          bool `json:"bold,omitempty"`
	Italic        bool `json:"italic,omitempty"`
	Strikethrough bool `json:"strikethrough,omitempty"`
	Code          bool `json:"code,omitempty"`
}

// apiBlock is the wire form of a block. Exactly one payload pointer is set,
// matching Type; blocks of any other type decode with all pointers nil.
type apiBlock struct {
	Object           string       `json:"object,omitempty"`
	ID               string       `json:"id,omitempty"`
	Type             string       `json:"type"`
	Paragraph        *apiRichBody `json:"paragraph,omitempty"`
	Heading1         *apiRichBody `json:"heading_1,omitempty"`
	Heading2         *apiRichBody `json:"heading_2,omitempty"`
	Heading3         *apiRichBody `json:"heading_3,omitempty"`
	BulletedListItem *apiRichBody `json:"bulleted_list_item,omitempty"`
	NumberedListItem *apiRichBody `json:"numbered_list_item,omitempty"`
	Quote            *apiRichBody `json:"quote,omitempty"`
	ToDo             *apiToDoBody `json:"to_do,omitempty"`
	Code             *apiCodeBody `json:"code,omitempty"`
	Divider          *struct{}    `json:"divider,omitempty"`
}

type apiRichBody struct {
	RichText []apiRichText `json:"rich_text"`
}

type apiToDoBody struct {
	RichText []apiRichText `json:"rich_text"`
	Checked  bool          `json:"checked"`
}

type apiCodeBody struct {
	RichText []apiRichText `json:"rich_text"`
	Language string        `json:"language,omitempty"`
}

// apiPage is the wire form of a page object.
type apiPage struct {
	Object         string                 `json:"object,omitempty"`
	ID             string                 `json:"id"`
	URL            string                 `json:"url,omitempty"`
	CreatedTime    time.Time              `json:"created_time,omitempty"`
	LastEditedTime time.Time              `json:"last_edited_time,omitempty"`
	Properties     map[string]apiProperty `json:"properties,omitempty"`
}

// apiProperty carries only the title property; other property schemas pass
// through untouched and are never parsed.
type apiProperty struct {
	Type  string        `json:"type,omitempty"`
	Title []apiRichText `json:"title,omitempty"`
}

type searchRequest struct {
	Query  string        `json:"query"`
	Filter *searchFilter `json:"filter,omitempty"`
}

type searchFilter struct {
	Value    string `json:"value"`
	Property string `json:"property"`
}

type searchResponse struct {
	Results    []apiPage `json:"results"`
	NextCursor string    `json:"next_cursor"`
	HasMore    bool      `json:"has_more"`
}

type childrenResponse struct {
	Results    []apiBlock `json:"results"`
	NextCursor string     `json:"next_cursor"`
	HasMore    bool       `json:"has_more"`
}

type appendRequest struct {
	Children []apiBlock `json:"children"`
}

type createPageRequest struct {
	Parent     apiParent              `json:"parent"`
	Properties map[string]apiProperty `json:"properties"`
	Children   []apiBlock             `json:"children,omitempty"`
}

type apiParent struct {
	PageID string `json:"page_id"`
}
