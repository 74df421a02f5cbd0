// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes the vault query surfaces for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/ansuz/internal/ftsindex"
	"github.com/starford/ansuz/internal/models"
	"github.com/starford/ansuz/internal/vaultservice"
)

// Server wraps the MCP server with Ansuz tools.
type Server struct {
	mcp *server.MCPServer
	svc *vaultservice.Service
	db  *ftsindex.DB
}

// New creates a new MCP server with all Ansuz tools registered.
func New(svc *vaultservice.Service, db *ftsindex.DB) *Server {
	s := &Server{svc: svc, db: db}

	s.mcp = server.NewMCPServer(
		"Ansuz",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("resolve_link",
		mcp.WithDescription("Resolve a wiki or markdown link target to a vault document. "+
			"Returns the document, a candidate list when ambiguous, or an external URL hand-off. "+
			"See the ansuz://link-format resource for the reference syntax."),
		mcp.WithString("target", mcp.Required(), mcp.Description("Link target, e.g. 'notes/a' or 'My%20Note'")),
		mcp.WithString("kind", mcp.Description("Link kind: 'wiki' (default) or 'markdown'")),
	), s.resolveLink)

	s.mcp.AddTool(mcp.NewTool("search_vault",
		mcp.WithDescription("Case-insensitive regex search through document bodies."),
		mcp.WithString("pattern", mcp.Required(), mcp.Description("Regex pattern")),
	), s.searchVault)

	s.mcp.AddTool(mcp.NewTool("fulltext_search",
		mcp.WithDescription("Full-text search through the indexed vault sidecar."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
	), s.fulltextSearch)

	s.mcp.AddTool(mcp.NewTool("list_tags",
		mcp.WithDescription("List the tag catalog, optionally filtered to a completion prefix."),
		mcp.WithString("prefix", mcp.Description("Optional tag prefix, e.g. '#pro'")),
	), s.listTags)

	s.mcp.AddTool(mcp.NewTool("resolve_alias",
		mcp.WithDescription("Resolve a front-matter alias to its owning document."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Exact alias string")),
	), s.resolveAlias)

	s.mcp.AddTool(mcp.NewTool("list_files",
		mcp.WithDescription("Enumerate all eligible vault documents."),
	), s.listFiles)

	s.mcp.AddTool(mcp.NewTool("read_note",
		mcp.WithDescription("Read the full content of a vault document."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Relative path to the document (e.g. folder/note.md)")),
	), s.readNote)

	s.mcp.AddTool(mcp.NewTool("get_backlinks",
		mcp.WithDescription("Find all documents whose links point at the given target."),
		mcp.WithString("target", mcp.Required(), mcp.Description("Link target to find backlinks for")),
	), s.getBacklinks)

	// Resource: link and front matter format contract.
	s.mcp.AddResource(
		mcp.NewResource("ansuz://link-format", "Link Format Contract",
			mcp.WithResourceDescription("Reference syntax and front matter keys the vault understands."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readLinkFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) resolveLink(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	target, err := req.RequireString("target")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	kind := models.LinkWiki
	if k, kerr := req.RequireString("kind"); kerr == nil && k == string(models.LinkMarkdown) {
		kind = models.LinkMarkdown
	}
	res, err := s.svc.ResolveReference(ctx, models.LinkReference{Kind: kind, Target: target})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(res, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) searchVault(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pattern, err := req.RequireString("pattern")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	paths, err := s.svc.Search(ctx, pattern)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(paths) == 0 {
		return mcp.NewToolResultText("no matches"), nil
	}
	return mcp.NewToolResultText(strings.Join(paths, "\n")), nil
}

func (s *Server) fulltextSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	results, err := s.db.Search(query, 20)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(results, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) listTags(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.svc.UpdateTags(ctx); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var tags []string
	if prefix, perr := req.RequireString("prefix"); perr == nil && prefix != "" {
		tags = s.svc.CompleteTag(prefix)
	} else {
		tags = s.svc.Tags()
	}
	if len(tags) == 0 {
		return mcp.NewToolResultText("no tags"), nil
	}
	return mcp.NewToolResultText(strings.Join(tags, "\n")), nil
}

func (s *Server) resolveAlias(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.svc.UpdateAliases(ctx); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	doc, err := s.svc.ResolveAlias(ctx, name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("alias not found: %s", name)), nil
	}
	return mcp.NewToolResultText(doc.RelPath), nil
}

func (s *Server) listFiles(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	docs, err := s.svc.ListFiles(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var paths []string
	for _, d := range docs {
		paths = append(paths, d.RelPath)
	}
	return mcp.NewToolResultText(strings.Join(paths, "\n")), nil
}

func (s *Server) readNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := s.svc.ReadDocument(ctx, path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", path)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) getBacklinks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	target, err := req.RequireString("target")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	bl, err := s.db.Backlinks(target)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(bl) == 0 {
		return mcp.NewToolResultText("no backlinks found"), nil
	}
	return mcp.NewToolResultText(strings.Join(bl, "\n")), nil
}

func (s *Server) readLinkFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "ansuz://link-format",
			MIMEType: "text/markdown",
			Text:     LinkFormatContract,
		},
	}, nil
}
