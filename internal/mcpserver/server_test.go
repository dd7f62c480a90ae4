package mcpserver

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/rajrishis/portfolio/internal/content"
	"github.com/rajrishis/portfolio/internal/models"
	"github.com/rajrishis/portfolio/internal/portfolioservice"
	"github.com/rajrishis/portfolio/internal/storage"
	"github.com/rajrishis/portfolio/internal/testutil"
	"github.com/rajrishis/portfolio/internal/view"
)

func testServer(t *testing.T) (*Server, string) {
	t.Helper()

	dir, fs := testutil.ContentDir(t)
	store, err := content.NewStore(fs, testutil.Logger())
	if err != nil {
		t.Fatal(err)
	}
	renderer, err := view.NewRenderer()
	if err != nil {
		t.Fatal(err)
	}
	svc := portfolioservice.NewService(store, testutil.TestDB(t), testutil.Logger())
	return New(svc, renderer, fs, "test"), dir
}

func builtinServer(t *testing.T) *Server {
	t.Helper()
	store, err := content.NewStore(nil, testutil.Logger())
	if err != nil {
		t.Fatal(err)
	}
	renderer, err := view.NewRenderer()
	if err != nil {
		t.Fatal(err)
	}
	var fs storage.Provider
	return New(portfolioservice.NewService(store, testutil.TestDB(t), testutil.Logger()), renderer, fs, "test")
}

func callTool(t *testing.T, srv *Server, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	// mcp-go has no in-process call helper, so handlers are invoked directly.
	var result *mcp.CallToolResult
	var err error

	switch name {
	case "get_profile":
		result, err = srv.getProfile(ctx, req)
	case "list_projects":
		result, err = srv.listProjects(ctx, req)
	case "get_project":
		result, err = srv.getProject(ctx, req)
	case "list_skills":
		result, err = srv.listSkills(ctx, req)
	case "search_portfolio":
		result, err = srv.searchPortfolio(ctx, req)
	case "list_assets":
		result, err = srv.listAssets(ctx, req)
	case "get_content_format":
		result, err = srv.getContentFormat(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}

	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestGetProfile(t *testing.T) {
	srv, _ := testServer(t)
	var p models.Profile
	if err := json.Unmarshal([]byte(resultText(callTool(t, srv, "get_profile", nil))), &p); err != nil {
		t.Fatal(err)
	}
	if p.Name != "Ada Lovelace" {
		t.Errorf("name = %q", p.Name)
	}
}

func TestListProjects(t *testing.T) {
	srv, _ := testServer(t)

	var all []models.Project
	if err := json.Unmarshal([]byte(resultText(callTool(t, srv, "list_projects", map[string]any{}))), &all); err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Errorf("projects = %d, want 2", len(all))
	}

	var filtered []models.Project
	r := callTool(t, srv, "list_projects", map[string]any{"tech": "go"})
	if err := json.Unmarshal([]byte(resultText(r)), &filtered); err != nil {
		t.Fatal(err)
	}
	if len(filtered) != 1 || filtered[0].Slug != "engine" {
		t.Errorf("filtered = %+v", filtered)
	}
}

func TestGetProject(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv, "get_project", map[string]any{"slug": "notes"})
	if r.IsError || !strings.Contains(resultText(r), `"title": "Notes"`) {
		t.Errorf("get_project = %q", resultText(r))
	}

	r = callTool(t, srv, "get_project", map[string]any{"slug": "nope"})
	if !r.IsError || resultText(r) != "not found: nope" {
		t.Errorf("missing project = %q", resultText(r))
	}

	if r := callTool(t, srv, "get_project", map[string]any{}); !r.IsError {
		t.Error("expected error without slug")
	}
}

func TestListSkills(t *testing.T) {
	srv, _ := testServer(t)
	if got := resultText(callTool(t, srv, "list_skills", nil)); got != "Go\nSQL" {
		t.Errorf("skills = %q", got)
	}
}

func TestSearchPortfolio(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv, "search_portfolio", map[string]any{"query": "engine", "limit": 5})
	if r.IsError || !strings.Contains(resultText(r), `"slug": "engine"`) {
		t.Errorf("search = %q", resultText(r))
	}

	if r := callTool(t, srv, "search_portfolio", map[string]any{"query": " "}); !r.IsError {
		t.Error("expected error for blank query")
	}
}

func TestListAssets(t *testing.T) {
	srv, dir := testServer(t)
	if got := resultText(callTool(t, srv, "list_assets", nil)); got != "no assets found" {
		t.Errorf("empty assets = %q", got)
	}

	testutil.WriteFile(t, dir, "assets/avatar.png", "png")
	got := resultText(callTool(t, srv, "list_assets", nil))
	if !strings.Contains(got, `"url": "/assets/avatar.png"`) {
		t.Errorf("assets = %q", got)
	}

	if got := resultText(callTool(t, builtinServer(t), "list_assets", nil)); got != "no content directory configured" {
		t.Errorf("builtin assets = %q", got)
	}
}

func TestContentFormat(t *testing.T) {
	srv, _ := testServer(t)
	if got := resultText(callTool(t, srv, "get_content_format", nil)); got != ContentFormatContract {
		t.Error("content format tool should return the contract")
	}
}

func TestPageResource(t *testing.T) {
	srv := builtinServer(t)
	contents, err := srv.readPageResource(context.Background(), mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if len(contents) != 1 {
		t.Fatalf("contents = %d", len(contents))
	}
	tc, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("unexpected content type %T", contents[0])
	}
	if tc.URI != PageURI {
		t.Errorf("uri = %q", tc.URI)
	}
	for _, want := range []string{"Rajrishi Sharma", "AI Chat Application", "srajrishi3@gmail.com"} {
		if !strings.Contains(tc.Text, want) {
			t.Errorf("page markdown missing %q", want)
		}
	}
	if strings.Contains(tc.Text, "querySelector") {
		t.Error("page markdown should not contain the client script")
	}
}
