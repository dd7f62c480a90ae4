// Package parser decodes content-directory files: project Markdown files with
// YAML frontmatter and the site.yaml profile.
package parser

import (
	"bytes"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"

	"github.com/rajrishis/portfolio/internal/models"
)

var (
	spaceRe = regexp.MustCompile(`\s+`)
	// Inline Markdown markers that carry no meaning in a card description.
	emphasisRe = regexp.MustCompile(`(\*\*|__|` + "`" + `)`)
	mdLinkRe   = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)

	strict = bluemonday.StrictPolicy()
)

// ProjectFile is the frontmatter of a projects/*.md file.
type ProjectFile struct {
	Title  string   `yaml:"title"`
	Order  int      `yaml:"order"`
	Tech   []string `yaml:"tech"`
	GitHub string   `yaml:"github"`
	Demo   string   `yaml:"demo"`
	Accent string   `yaml:"accent"`
}

// Project is a parsed project file.
type Project struct {
	Order   int
	Project models.Project
}

// SiteFile is the layout of site.yaml.
type SiteFile struct {
	Profile models.Profile `yaml:"profile"`
	Skills  []string       `yaml:"skills"`
}

// ParseProject decodes a project file. The slug is the file name without
// extension; the body becomes the description as a single line of plain text.
func ParseProject(name string, data []byte) (*Project, error) {
	fmBlock, body, ok := splitFrontmatter(data)
	if !ok {
		return nil, fmt.Errorf("parser: %s: missing frontmatter", name)
	}
	var fm ProjectFile
	if err := yaml.Unmarshal(fmBlock, &fm); err != nil {
		return nil, fmt.Errorf("parser: %s: frontmatter: %w", name, err)
	}

	title := strings.TrimSpace(fm.Title)
	if title == "" {
		title = deriveTitle(body)
	}

	tech := make([]string, 0, len(fm.Tech))
	for _, t := range fm.Tech {
		if t = strings.TrimSpace(t); t != "" {
			tech = append(tech, t)
		}
	}

	return &Project{
		Order: fm.Order,
		Project: models.Project{
			Slug:        slugFromName(name),
			Title:       title,
			Description: PlainText(stripHeading(body)),
			Tech:        tech,
			GitHubURL:   strings.TrimSpace(fm.GitHub),
			DemoURL:     strings.TrimSpace(fm.Demo),
			Accent:      strings.ToLower(strings.TrimSpace(fm.Accent)),
		},
	}, nil
}

// ParseSite decodes site.yaml.
func ParseSite(data []byte) (*SiteFile, error) {
	var sf SiteFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parser: site.yaml: %w", err)
	}
	sf.Profile.Bio = PlainText(sf.Profile.Bio)
	sf.Profile.ContactText = PlainText(sf.Profile.ContactText)
	skills := make([]string, 0, len(sf.Skills))
	for _, s := range sf.Skills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	sf.Skills = skills
	return &sf, nil
}

// PlainText strips HTML and inline Markdown and collapses whitespace.
func PlainText(s string) string {
	s = strict.Sanitize(s)
	s = mdLinkRe.ReplaceAllString(s, "$1")
	s = emphasisRe.ReplaceAllString(s, "")
	s = unescape(s)
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// splitFrontmatter separates YAML frontmatter (between leading --- delimiters)
// from the Markdown body.
func splitFrontmatter(data []byte) ([]byte, string, bool) {
	const delim = "---"
	trimmed := bytes.TrimLeft(data, "\n\r")

	if !bytes.HasPrefix(trimmed, []byte(delim)) {
		return nil, string(data), false
	}

	rest := trimmed[len(delim):]
	idx := bytes.Index(rest, []byte("\n"+delim))
	if idx < 0 {
		return nil, string(data), false
	}

	block := rest[:idx]
	after := rest[idx+1+len(delim):]
	return block, strings.TrimLeft(string(after), "\n\r"), true
}

// deriveTitle returns the first H1 heading of body, or empty string.
func deriveTitle(body string) string {
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(trimmed[2:])
		}
	}
	return ""
}

// stripHeading drops Markdown heading lines from body.
func stripHeading(body string) string {
	var b strings.Builder
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func slugFromName(name string) string {
	base := path.Base(name)
	return strings.TrimSuffix(base, path.Ext(base))
}

// bluemonday escapes what it keeps; descriptions are re-escaped by
// html/template at render time.
var unescaper = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&#34;", `"`, "&#39;", "'", "&quot;", `"`)

func unescape(s string) string {
	return unescaper.Replace(s)
}
