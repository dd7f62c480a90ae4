package view

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/rajrishis/portfolio/internal/state"
)

// Variant is a pair of class lists, one per theme.
type Variant struct {
	Dark  string
	Light string
}

// For returns the classes for the given theme.
func (v Variant) For(dark bool) string {
	if dark {
		return v.Dark
	}
	return v.Light
}

// Style tokens.
const (
	TokenRoot            = "root"
	TokenNavScrolled     = "navScrolled"
	TokenNavLink         = "navLink"
	TokenToggle          = "toggle"
	TokenIconSun         = "iconSun"
	TokenIconMoon        = "iconMoon"
	TokenBadge           = "badge"
	TokenTagline         = "tagline"
	TokenBio             = "bio"
	TokenSocial          = "social"
	TokenSectionHeading  = "sectionHeading"
	TokenSkillChip       = "skillChip"
	TokenCardLink        = "cardLink"
	TokenCardDescription = "cardDescription"
	TokenTechChip        = "techChip"
	TokenContactText     = "contactText"
	TokenContactEmail    = "contactEmail"
	TokenFooter          = "footer"
	TokenFooterText      = "footerText"
	TokenFooterLink      = "footerLink"
)

var palette = map[string]Variant{
	TokenRoot:            {"bg-gray-950 text-gray-100", "bg-gray-50 text-gray-900"},
	TokenNavScrolled:     {"bg-gray-950/80 backdrop-blur-xl border-b border-gray-800", "bg-white/80 backdrop-blur-xl border-b border-gray-200"},
	TokenNavLink:         {"text-gray-400 hover:text-gray-100", "text-gray-600 hover:text-gray-900"},
	TokenToggle:          {"hover:bg-gray-800", "hover:bg-gray-200"},
	TokenIconSun:         {"inline-block", "hidden"},
	TokenIconMoon:        {"hidden", "inline-block"},
	TokenBadge:           {"border-gray-800 text-gray-400", "border-gray-200 text-gray-600"},
	TokenTagline:         {"text-gray-400", "text-gray-600"},
	TokenBio:             {"text-gray-500", "text-gray-600"},
	TokenSocial:          {"border-gray-800 text-gray-400 hover:text-gray-100", "border-gray-200 text-gray-600 hover:text-gray-900"},
	TokenSectionHeading:  {"text-gray-500", "text-gray-600"},
	TokenSkillChip:       {"border-gray-800 text-gray-400", "border-gray-300 text-gray-700"},
	TokenCardLink:        {"hover:bg-gray-800", "hover:bg-white"},
	TokenCardDescription: {"text-gray-400", "text-gray-700"},
	TokenTechChip:        {"border-gray-800 text-gray-400", "border-gray-300 text-gray-700"},
	TokenContactText:     {"text-gray-400", "text-gray-700"},
	TokenContactEmail:    {"text-gray-100 hover:text-blue-500", "text-gray-900 hover:text-blue-600"},
	TokenFooter:          {"border-gray-800", "border-gray-200"},
	TokenFooterText:      {"text-gray-500", "text-gray-600"},
	TokenFooterLink:      {"text-gray-500 hover:text-gray-100", "text-gray-600 hover:text-gray-900"},
}

// Lookup returns the variant registered for token.
func Lookup(token string) (Variant, bool) {
	v, ok := palette[token]
	return v, ok
}

// AccentVariant returns the card background and border classes for an accent
// color family.
func AccentVariant(accent string) Variant {
	return Variant{
		Dark:  fmt.Sprintf("bg-%s-500/10 border-%s-500/20", accent, accent),
		Light: fmt.Sprintf("bg-%s-50 border-%s-200", accent, accent),
	}
}

// Overlay gradient colors.
var overlayColor = Variant{
	Dark:  "rgba(59, 130, 246, 0.08)",
	Light: "rgba(59, 130, 246, 0.05)",
}

// OverlayBackground returns the CSS background of the cursor-following
// gradient, centred exactly on p.
func OverlayBackground(p state.Point, dark bool) string {
	return fmt.Sprintf("radial-gradient(600px at %spx %spx, %s, transparent 80%%)",
		formatCoord(p.X), formatCoord(p.Y), overlayColor.For(dark))
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func joinClasses(parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

// themedAttrs renders class plus the data attributes the client script uses to
// switch themes without a round trip.
func themedAttrs(base string, v Variant, dark bool) template.HTMLAttr {
	return template.HTMLAttr(fmt.Sprintf(`class="%s" data-theme-base="%s" data-theme-dark="%s" data-theme-light="%s"`,
		template.HTMLEscapeString(joinClasses(base, v.For(dark))),
		template.HTMLEscapeString(base),
		template.HTMLEscapeString(v.Dark),
		template.HTMLEscapeString(v.Light)))
}
