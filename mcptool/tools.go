package mcptool

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fwojciec/notedown"
	"github.com/fwojciec/notedown/markdown"
)

func searchTool() mcp.Tool {
	return mcp.NewTool("search_pages",
		mcp.WithDescription("Search the workspace for pages matching a query. Returns one page per line: title, id, url."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Text to search page titles for"),
		),
	)
}

func searchHandler(client notedown.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := req.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		pages, err := client.Search(ctx, query)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if len(pages) == 0 {
			return mcp.NewToolResultText("no pages found"), nil
		}
		var sb strings.Builder
		for _, p := range pages {
			fmt.Fprintf(&sb, "%s\t%s\t%s\n", p.Title, p.ID, p.URL)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func readPageTool() mcp.Tool {
	return mcp.NewTool("read_page",
		mcp.WithDescription("Read a page's content as markdown (or plain text). Accepts a page id or a share URL."),
		mcp.WithString("page",
			mcp.Required(),
			mcp.Description("Page id or share URL"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: markdown (default) or text"),
			mcp.Enum("markdown", "text"),
		),
	)
}

func readPageHandler(client notedown.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		page, err := req.RequireString("page")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		blocks, err := client.PageBlocks(ctx, page)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if req.GetString("format", "markdown") == "text" {
			return mcp.NewToolResultText(markdown.ToPlainText(blocks)), nil
		}
		return mcp.NewToolResultText(markdown.FromBlocks(blocks)), nil
	}
}

func createPageTool() mcp.Tool {
	return mcp.NewTool("create_page",
		mcp.WithDescription("Create a child page under a parent page, with optional markdown content."),
		mcp.WithString("parent",
			mcp.Required(),
			mcp.Description("Parent page id or share URL"),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Title of the new page"),
		),
		mcp.WithString("content",
			mcp.Description("Markdown content for the new page"),
		),
	)
}

func createPageHandler(client notedown.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		parent, err := req.RequireString("parent")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		title, err := req.RequireString("title")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		blocks := markdown.ToBlocks(req.GetString("content", ""))
		page, err := client.CreatePage(ctx, parent, title, blocks)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("created %q: %s (%s)", page.Title, page.ID, page.URL)), nil
	}
}

func appendPageTool() mcp.Tool {
	return mcp.NewTool("append_page",
		mcp.WithDescription("Append markdown content to the end of an existing page."),
		mcp.WithString("page",
			mcp.Required(),
			mcp.Description("Page id or share URL"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Markdown content to append"),
		),
	)
}

func appendPageHandler(client notedown.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		page, err := req.RequireString("page")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		content, err := req.RequireString("content")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		blocks := markdown.ToBlocks(content)
		if len(blocks) == 0 {
			return mcp.NewToolResultError("content produced no blocks"), nil
		}
		if err := client.AppendBlocks(ctx, page, blocks); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("appended %d block(s)", len(blocks))), nil
	}
}
