package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rajrishis/portfolio/internal/models"
)

func TestParseProject_FrontmatterAndBody(t *testing.T) {
	input := []byte(`---
title: Log Shipper
order: 2
tech:
  - Go
  - " Kafka "
github: https://github.com/example/shipper
demo: https://shipper.example.com
accent: Teal
---
# Ignored heading

Ships **logs** from edge nodes
to a [central](https://example.com) cluster.
`)
	r, err := ParseProject("projects/log-shipper.md", input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := models.Project{
		Slug:        "log-shipper",
		Title:       "Log Shipper",
		Description: "Ships logs from edge nodes to a central cluster.",
		Tech:        []string{"Go", "Kafka"},
		GitHubURL:   "https://github.com/example/shipper",
		DemoURL:     "https://shipper.example.com",
		Accent:      "teal",
	}
	if diff := cmp.Diff(want, r.Project); diff != "" {
		t.Errorf("project mismatch (-want +got):\n%s", diff)
	}
	if r.Order != 2 {
		t.Errorf("order = %d, want 2", r.Order)
	}
}

func TestParseProject_TitleFromHeading(t *testing.T) {
	input := []byte("---\ntech: [Go]\n---\n# From Heading\nBody.\n")
	r, err := ParseProject("x.md", input)
	if err != nil {
		t.Fatal(err)
	}
	if r.Project.Title != "From Heading" {
		t.Errorf("title = %q", r.Project.Title)
	}
	if r.Project.Description != "Body." {
		t.Errorf("description = %q", r.Project.Description)
	}
}

func TestParseProject_MissingFrontmatter(t *testing.T) {
	if _, err := ParseProject("x.md", []byte("# Just a heading\n")); err == nil {
		t.Fatal("expected error without frontmatter")
	}
}

func TestParseProject_InvalidYAML(t *testing.T) {
	input := []byte("---\ntech: [unclosed\n---\nBody\n")
	if _, err := ParseProject("x.md", input); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestPlainText_StripsHTML(t *testing.T) {
	got := PlainText("<script>alert(1)</script>Fast &amp; <b>safe</b>\n\n  search")
	if got != "Fast & safe search" {
		t.Errorf("PlainText = %q", got)
	}
}

func TestPlainText_KeepsUnderscores(t *testing.T) {
	if got := PlainText("uses snake_case names"); got != "uses snake_case names" {
		t.Errorf("PlainText = %q", got)
	}
}

func TestParseSite(t *testing.T) {
	input := []byte(`profile:
  name: Ada
  email: ada@example.com
  footer_links:
    - label: GitHub
      url: https://github.com/ada
skills: [Go, "", " SQL "]
`)
	sf, err := ParseSite(input)
	if err != nil {
		t.Fatal(err)
	}
	if sf.Profile.Name != "Ada" || sf.Profile.Email != "ada@example.com" {
		t.Errorf("profile = %+v", sf.Profile)
	}
	if diff := cmp.Diff([]string{"Go", "SQL"}, sf.Skills); diff != "" {
		t.Errorf("skills (-want +got):\n%s", diff)
	}
	if len(sf.Profile.FooterLinks) != 1 || sf.Profile.FooterLinks[0].Label != "GitHub" {
		t.Errorf("footer links = %+v", sf.Profile.FooterLinks)
	}
}
