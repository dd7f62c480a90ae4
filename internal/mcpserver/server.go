// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes portfolio content to LLM clients via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rajrishis/portfolio/internal/apperr"
	"github.com/rajrishis/portfolio/internal/portfolioservice"
	"github.com/rajrishis/portfolio/internal/state"
	"github.com/rajrishis/portfolio/internal/storage"
	"github.com/rajrishis/portfolio/internal/view"
)

// Resource URIs.
const (
	PageURI          = "portfolio://page.md"
	ContentFormatURI = "portfolio://content-format"
)

const defaultSearchLimit = 20

// Server wraps the MCP server with portfolio tools.
type Server struct {
	mcp      *server.MCPServer
	svc      *portfolioservice.Service
	renderer *view.Renderer
	fs       storage.Provider
}

// New creates a new MCP server with all portfolio tools registered.
// fs may be nil when no content directory is configured.
func New(svc *portfolioservice.Service, renderer *view.Renderer, fs storage.Provider, version string) *Server {
	s := &Server{svc: svc, renderer: renderer, fs: fs}

	s.mcp = server.NewMCPServer(
		"Portfolio",
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("get_profile",
		mcp.WithDescription("Return the portfolio owner's profile: name, tagline, bio, contact email and social links."),
	), s.getProfile)

	s.mcp.AddTool(mcp.NewTool("list_projects",
		mcp.WithDescription("List portfolio projects in display order, optionally only those using a technology."),
		mcp.WithString("tech", mcp.Description("Optional technology filter, case-insensitive (e.g. React)")),
	), s.listProjects)

	s.mcp.AddTool(mcp.NewTool("get_project",
		mcp.WithDescription("Return a single project by slug."),
		mcp.WithString("slug", mcp.Required(), mcp.Description("Project slug (e.g. ai-chat)")),
	), s.getProject)

	s.mcp.AddTool(mcp.NewTool("list_skills",
		mcp.WithDescription("List the owner's skills in display order."),
	), s.listSkills)

	s.mcp.AddTool(mcp.NewTool("search_portfolio",
		mcp.WithDescription("Search project titles, descriptions, technologies and skills."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (default 20)")),
	), s.searchPortfolio)

	s.mcp.AddTool(mcp.NewTool("list_assets",
		mcp.WithDescription("List files in the content assets directory with the URL each is served at."),
	), s.listAssets)

	s.mcp.AddTool(mcp.NewTool("get_content_format",
		mcp.WithDescription("Returns the content directory format: site.yaml fields and project file frontmatter. "+
			"Read this before proposing changes to portfolio content."),
	), s.getContentFormat)

	s.mcp.AddResource(
		mcp.NewResource(PageURI, "Portfolio page",
			mcp.WithResourceDescription("The rendered portfolio page as Markdown."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readPageResource,
	)

	s.mcp.AddResource(
		mcp.NewResource(ContentFormatURI, "Content Format Contract",
			mcp.WithResourceDescription("Layout and file format of the portfolio content directory."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readContentFormatResource,
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

func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getProfile(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.svc.Profile(ctx))
}

func (s *Server) listProjects(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projects, err := s.svc.ListProjects(ctx, req.GetString("tech", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(projects)
}

func (s *Server) getProject(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug, err := req.RequireString("slug")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	p, err := s.svc.GetProject(ctx, slug)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("not found: %s", slug)), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(p)
}

func (s *Server) listSkills(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(strings.Join(s.svc.Skills(ctx), "\n")), nil
}

func (s *Server) searchPortfolio(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if strings.TrimSpace(query) == "" {
		return mcp.NewToolResultError("query must not be empty"), nil
	}
	results, err := s.svc.Search(ctx, query, req.GetInt("limit", defaultSearchLimit))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(results)
}

type assetItem struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	URL  string `json:"url"`
}

func (s *Server) listAssets(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.fs == nil {
		return mcp.NewToolResultText("no content directory configured"), nil
	}
	metas, err := s.fs.List("assets")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	items := make([]assetItem, 0, len(metas))
	for _, m := range metas {
		name := strings.TrimPrefix(m.Path, "assets/")
		if strings.Contains(name, "/") {
			continue
		}
		items = append(items, assetItem{Name: name, Size: m.Size, URL: "/assets/" + name})
	}
	if len(items) == 0 {
		return mcp.NewToolResultText("no assets found"), nil
	}
	return jsonResult(items)
}

func (s *Server) getContentFormat(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(ContentFormatContract), nil
}

// PageMarkdown renders the page in its default state as Markdown.
func (s *Server) PageMarkdown() (string, error) {
	return s.renderer.Markdown(view.NewModel(state.Default(), s.svc.Snapshot(), view.Options{}))
}

func (s *Server) readPageResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	md, err := s.PageMarkdown()
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      PageURI,
			MIMEType: "text/markdown",
			Text:     md,
		},
	}, nil
}

func (s *Server) readContentFormatResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      ContentFormatURI,
			MIMEType: "text/markdown",
			Text:     ContentFormatContract,
		},
	}, nil
}
