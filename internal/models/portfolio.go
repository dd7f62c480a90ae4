// Package models defines the domain types for the portfolio.
package models

// Project is one portfolio card.
type Project struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
	GitHubURL   string   `json:"github_url"`
	DemoURL     string   `json:"demo_url"`
	// Accent names the color family used for the card background and border.
	Accent string `json:"accent"`
}

// Link is a labelled outbound hyperlink.
type Link struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// Profile holds the hero, contact and footer texts.
type Profile struct {
	Handle       string `json:"handle" yaml:"handle"`
	Name         string `json:"name" yaml:"name"`
	Tagline      string `json:"tagline" yaml:"tagline"`
	Bio          string `json:"bio" yaml:"bio"`
	Availability string `json:"availability" yaml:"availability"`
	Email        string `json:"email" yaml:"email"`
	ContactText  string `json:"contact_text" yaml:"contact_text"`
	GitHubURL    string `json:"github_url" yaml:"github"`
	LinkedInURL  string `json:"linkedin_url" yaml:"linkedin"`
	FooterLinks  []Link `json:"footer_links" yaml:"footer_links"`
	Copyright    string `json:"copyright" yaml:"copyright"`
}

// Portfolio is an immutable content snapshot. Values handed out by the
// content store must never be modified.
type Portfolio struct {
	Profile  Profile   `json:"profile"`
	Projects []Project `json:"projects"`
	Skills   []string  `json:"skills"`
	// Version is the SHA-256 of the source files, or "builtin".
	Version string `json:"version"`
	// Source is the content directory the snapshot was read from; empty for
	// the built-in content.
	Source string `json:"-"`
}

// ProjectBySlug returns the project with the given slug.
func (p *Portfolio) ProjectBySlug(slug string) (Project, bool) {
	for _, pr := range p.Projects {
		if pr.Slug == slug {
			return pr, true
		}
	}
	return Project{}, false
}

// FileMeta describes a file in the content directory.
type FileMeta struct {
	Path     string `json:"path"`
	Checksum string `json:"checksum"`
	Size     int64  `json:"size"`
}
