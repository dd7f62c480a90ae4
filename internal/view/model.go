package view

import (
	"html/template"

	"github.com/rajrishis/portfolio/internal/models"
	"github.com/rajrishis/portfolio/internal/state"
)

const navBase = "fixed top-0 w-full z-50 transition-all duration-300"

// Options control page features that do not depend on presentation state.
type Options struct {
	// LiveReload makes the page subscribe to EventsURL and reload itself
	// when content changes.
	LiveReload bool
	EventsURL  string
	// ScriptURL is where the client script is served from. When empty the
	// script is inlined.
	ScriptURL string
	// OmitScript leaves the client script out entirely.
	OmitScript bool
}

// Section is a navbar entry.
type Section struct {
	Label  string
	Anchor string
}

// Sections are the page anchors in document order.
var Sections = []Section{
	{Label: "About", Anchor: "about"},
	{Label: "Work", Anchor: "work"},
	{Label: "Contact", Anchor: "contact"},
}

// Card is a project with its resolved accent classes.
type Card struct {
	models.Project
	Accent Variant
	dark   bool
}

// Attrs renders the card's class and theme attributes.
func (c Card) Attrs() template.HTMLAttr {
	return themedAttrs("group p-8 border rounded-2xl transition-all duration-500 hover:scale-[1.02]", c.Accent, c.dark)
}

// Model is everything the page template needs. It is a pure function of the
// presentation state and the content snapshot.
type Model struct {
	State    state.Snapshot
	Profile  models.Profile
	Cards    []Card
	Skills   []string
	Sections []Section
	Version  string
	Options  Options
}

// NewModel derives the view model for s and p.
func NewModel(s state.Snapshot, p *models.Portfolio, opts Options) Model {
	m := Model{
		State:    s,
		Profile:  p.Profile,
		Skills:   p.Skills,
		Sections: Sections,
		Version:  p.Version,
		Options:  opts,
	}
	m.Cards = make([]Card, len(p.Projects))
	for i, pr := range p.Projects {
		m.Cards[i] = Card{Project: pr, Accent: AccentVariant(pr.Accent), dark: s.Dark}
	}
	return m
}

// Class returns the current-theme classes for token.
func (m Model) Class(token string) string {
	v, _ := Lookup(token)
	return v.For(m.State.Dark)
}

// Themed renders class and theme-switch attributes for an element whose
// static classes are base.
func (m Model) Themed(base, token string) template.HTMLAttr {
	v, _ := Lookup(token)
	return themedAttrs(base, v, m.State.Dark)
}

// NavClass is the navbar class list for the current state.
func (m Model) NavClass() string {
	if !m.State.Scrolled {
		return navBase
	}
	return joinClasses(navBase, m.Class(TokenNavScrolled))
}

// NavAttrs renders the navbar class plus the variants the client script
// swaps in when the scrolled flag changes.
func (m Model) NavAttrs() template.HTMLAttr {
	v, _ := Lookup(TokenNavScrolled)
	return template.HTMLAttr(`class="` + template.HTMLEscapeString(m.NavClass()) +
		`" data-nav-base="` + template.HTMLEscapeString(navBase) +
		`" data-scrolled-dark="` + template.HTMLEscapeString(v.Dark) +
		`" data-scrolled-light="` + template.HTMLEscapeString(v.Light) + `"`)
}

// Overlay is the CSS background of the pointer overlay.
func (m Model) Overlay() string {
	return OverlayBackground(m.State.Pointer, m.State.Dark)
}

// OverlayStyle is Overlay as an inline style declaration.
func (m Model) OverlayStyle() template.CSS {
	return template.CSS("background: " + m.Overlay())
}

// OverlayDark and OverlayLight expose the gradient colors to the client.
func (m Model) OverlayDark() string  { return overlayColor.Dark }
func (m Model) OverlayLight() string { return overlayColor.Light }

// MailTo is the contact link target.
func (m Model) MailTo() string {
	return "mailto:" + m.Profile.Email
}

// ScrollThreshold is exported to the client script.
func (m Model) ScrollThreshold() string {
	return formatCoord(state.ScrollThreshold)
}
