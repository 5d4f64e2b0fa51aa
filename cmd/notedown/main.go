// Command notedown bridges a Notion workspace to markdown.
//
// Usage:
//
//	NOTEDOWN_TOKEN=secret_... notedown serve
//	NOTEDOWN_TOKEN=secret_... notedown search "quarterly report"
//	NOTEDOWN_TOKEN=secret_... notedown read <page-id-or-url>
//	NOTEDOWN_TOKEN=secret_... notedown create <parent> "Title" -f notes.md
//	NOTEDOWN_TOKEN=secret_... notedown append <page> -f notes.md
//
// Configuration is read from notedown.yaml in ~/.config/notedown or the
// current directory, or from NOTEDOWN_* environment variables. Keys: token,
// base_url, notion_version, min_interval.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fwojciec/notedown"
	"github.com/fwojciec/notedown/markdown"
	"github.com/fwojciec/notedown/mcptool"
	"github.com/fwojciec/notedown/notion"
	"github.com/fwojciec/notedown/term"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "notedown",
	Short: "Markdown bridge for Notion workspaces",
	Long: `Convert between markdown and Notion pages.

Run an MCP server for tool-calling clients, or work with pages
directly: search the workspace, read a page as markdown, create
pages from markdown files, and append to existing pages.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdio",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the workspace for pages",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

var readCmd = &cobra.Command{
	Use:   "read <page>",
	Short: "Print a page as markdown",
	Long:  "Prints a page's content as markdown, styled for the terminal unless --plain is set. Accepts a page id or a share URL.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRead,
}

var createCmd = &cobra.Command{
	Use:   "create <parent> <title>",
	Short: "Create a child page from markdown",
	Args:  cobra.ExactArgs(2),
	RunE:  runCreate,
}

var appendCmd = &cobra.Command{
	Use:   "append <page>",
	Short: "Append markdown to a page",
	Args:  cobra.ExactArgs(1),
	RunE:  runAppend,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(serveCmd, searchCmd, readCmd, createCmd, appendCmd)

	readCmd.Flags().BoolP("plain", "p", false, "print raw markdown without styling")
	readCmd.Flags().IntP("width", "w", 80, "wrap width for styled output")
	createCmd.Flags().StringP("file", "f", "", "markdown file with page content (default: empty page)")
	appendCmd.Flags().StringP("file", "f", "", "markdown file to append (default: stdin)")
}

func initConfig() {
	viper.SetDefault("min_interval", time.Second/3)

	viper.SetConfigName("notedown")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "notedown"))
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("NOTEDOWN")
	viper.AutomaticEnv()

	// Missing or malformed config files are not fatal; env vars suffice.
	_ = viper.ReadInConfig()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "notedown: %v\n", err)
		os.Exit(1)
	}
}

// newClient builds the API client from configuration.
func newClient() (notedown.Client, error) {
	token := viper.GetString("token")
	if token == "" {
		return nil, errors.New("missing API token: set NOTEDOWN_TOKEN or token in notedown.yaml")
	}
	var opts []notion.Option
	if u := viper.GetString("base_url"); u != "" {
		opts = append(opts, notion.WithBaseURL(u))
	}
	if v := viper.GetString("notion_version"); v != "" {
		opts = append(opts, notion.WithVersion(v))
	}
	if d := viper.GetDuration("min_interval"); d > 0 {
		opts = append(opts, notion.WithMinInterval(d))
	}
	return notion.New(token, opts...), nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	srv := mcpserver.NewStdioServer(mcptool.New(client, version))
	return srv.Listen(cmd.Context(), os.Stdin, os.Stdout)
}

func runSearch(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	pages, err := client.Search(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		fmt.Fprintln(os.Stderr, "no pages found")
		return nil
	}
	for _, p := range pages {
		fmt.Printf("%s\t%s\t%s\n", p.Title, p.ID, p.URL)
	}
	return nil
}

func runRead(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	blocks, err := client.PageBlocks(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	md := markdown.FromBlocks(blocks)

	plain, _ := cmd.Flags().GetBool("plain")
	if plain {
		fmt.Println(md)
		return nil
	}
	width, _ := cmd.Flags().GetInt("width")
	fmt.Println(term.Render(md, width, notedown.DefaultTheme()))
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	var content string
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		content, err = readSource(path)
		if err != nil {
			return err
		}
	}
	page, err := client.CreatePage(cmd.Context(), args[0], args[1], markdown.ToBlocks(content))
	if err != nil {
		return err
	}
	fmt.Printf("created %q: %s\n", page.Title, page.URL)
	return nil
}

func runAppend(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	path, _ := cmd.Flags().GetString("file")
	content, err := readSource(path)
	if err != nil {
		return err
	}
	blocks := markdown.ToBlocks(content)
	if len(blocks) == 0 {
		return errors.New("no content to append")
	}
	if err := client.AppendBlocks(cmd.Context(), args[0], blocks); err != nil {
		return err
	}
	fmt.Printf("appended %d block(s)\n", len(blocks))
	return nil
}

// readSource reads markdown from a file, or from stdin when path is empty
// or "-".
func readSource(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
