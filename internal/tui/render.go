package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rajrishis/portfolio/internal/models"
	"github.com/rajrishis/portfolio/internal/view"
)

const minContentWidth = 20

func heading(st styles, label string) string {
	return st.Rule.Render("────") + " " + st.Heading.Render(strings.ToUpper(label))
}

func chips(st styles, labels []string) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = st.Chip.Render("[" + l + "]")
	}
	return strings.Join(parts, " ")
}

// renderNav draws the navbar; the scrolled variant gets a bottom border.
func renderNav(st styles, p *models.Portfolio, scrolled bool, width int) string {
	links := make([]string, len(view.Sections))
	for i, s := range view.Sections {
		links[i] = st.NavLink.Render(s.Label)
	}
	left := st.Handle.Render("</> " + p.Profile.Handle)
	right := lipgloss.JoinHorizontal(lipgloss.Top, links...)
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	line := left + strings.Repeat(" ", gap) + right

	if scrolled {
		return st.Nav.Width(width).Render(line)
	}
	return st.NavPlain.Width(width).Render(line)
}

// renderBody draws the scrollable page content in section order.
func renderBody(st styles, p *models.Portfolio, width int) string {
	width = max(width, minContentWidth)
	text := lipgloss.NewStyle().Width(width - 2)
	var b strings.Builder

	pr := p.Profile
	b.WriteString(st.Badge.Render(lipgloss.NewStyle().Foreground(green).Render("●") + " " + pr.Availability))
	b.WriteString("\n")
	b.WriteString(st.Name.Render(pr.Name))
	b.WriteString("\n")
	b.WriteString(text.Inherit(st.Tagline).Render(pr.Tagline))
	b.WriteString("\n\n")
	b.WriteString(text.Inherit(st.Bio).Render(pr.Bio))
	b.WriteString("\n\n")
	for _, l := range []string{pr.GitHubURL, pr.LinkedInURL} {
		if l != "" {
			b.WriteString(st.Link.Render(l))
			b.WriteString("\n")
		}
	}

	if len(p.Skills) > 0 {
		b.WriteString("\n")
		b.WriteString(heading(st, "Skills"))
		b.WriteString("\n")
		b.WriteString(text.Render(chips(st, p.Skills)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(heading(st, "Selected Work"))
	b.WriteString("\n\n")
	for _, proj := range p.Projects {
		card := st.CardTitle.Render(proj.Title) + "\n" +
			st.CardBody.Render(proj.Description) + "\n\n" +
			chips(st, proj.Tech)
		links := make([]string, 0, 2)
		if proj.GitHubURL != "" {
			links = append(links, st.Link.Render(proj.GitHubURL))
		}
		if proj.DemoURL != "" {
			links = append(links, st.Link.Render(proj.DemoURL))
		}
		if len(links) > 0 {
			card += "\n" + strings.Join(links, "  ")
		}
		b.WriteString(cardStyle(proj.Accent, width-4).Render(card))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(heading(st, "Let's Connect"))
	b.WriteString("\n\n")
	b.WriteString(text.Inherit(st.CardBody).Render(pr.ContactText))
	b.WriteString("\n\n")
	b.WriteString(st.Email.Render(pr.Email + " ↗"))
	b.WriteString("\n\n")

	footerLinks := make([]string, len(pr.FooterLinks))
	for i, l := range pr.FooterLinks {
		footerLinks[i] = l.Label
	}
	b.WriteString(st.Footer.Width(width - 2).Render(pr.Copyright + "   " + strings.Join(footerLinks, " · ")))
	b.WriteString("\n")
	return b.String()
}
