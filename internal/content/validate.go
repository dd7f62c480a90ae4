package content

import (
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/rajrishis/portfolio/internal/apperr"
	"github.com/rajrishis/portfolio/internal/models"
)

var (
	// webURL admits absolute http(s) URLs only.
	webURL  = []validation.Rule{is.URL, validation.Match(regexp.MustCompile(`^https?://`)).Error("must be an absolute http(s) URL")}
	linkURL = validation.Match(regexp.MustCompile(`^(https?://\S+|mailto:\S+@\S+)$`)).Error("must be an absolute http(s) or mailto URL")
)

func accentRules() []interface{} {
	out := make([]interface{}, len(Accents))
	for i, a := range Accents {
		out[i] = a
	}
	return out
}

func validateProject(p *models.Project) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Slug, validation.Required),
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Description, validation.Required),
		validation.Field(&p.Tech, validation.Required, validation.Each(validation.Required)),
		validation.Field(&p.GitHubURL, webURL...),
		validation.Field(&p.DemoURL, webURL...),
		validation.Field(&p.Accent, validation.Required, validation.In(accentRules()...)),
	)
}

func validateProfile(p *models.Profile) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Email, validation.Required, is.EmailFormat),
		validation.Field(&p.GitHubURL, webURL...),
		validation.Field(&p.LinkedInURL, webURL...),
		validation.Field(&p.FooterLinks, validation.Each(validation.By(validateLink))),
	)
}

func validateLink(v any) error {
	l, ok := v.(models.Link)
	if !ok {
		return fmt.Errorf("unexpected link type %T", v)
	}
	return validation.ValidateStruct(&l,
		validation.Field(&l.Label, validation.Required),
		validation.Field(&l.URL, validation.Required, linkURL),
	)
}

// Validate checks a snapshot; errors wrap apperr.ErrInvalidContent.
func Validate(p *models.Portfolio) error {
	if err := validateProfile(&p.Profile); err != nil {
		return fmt.Errorf("%w: profile: %v", apperr.ErrInvalidContent, err)
	}
	if len(p.Projects) == 0 {
		return fmt.Errorf("%w: no projects", apperr.ErrInvalidContent)
	}
	seen := make(map[string]struct{}, len(p.Projects))
	for i := range p.Projects {
		pr := &p.Projects[i]
		if err := validateProject(pr); err != nil {
			return fmt.Errorf("%w: project %q: %v", apperr.ErrInvalidContent, pr.Slug, err)
		}
		if _, dup := seen[pr.Slug]; dup {
			return fmt.Errorf("%w: duplicate project slug %q", apperr.ErrInvalidContent, pr.Slug)
		}
		seen[pr.Slug] = struct{}{}
	}
	return nil
}
