package render

import (
	"fmt"
	"net/url"
	"strings"

	"go-portfolio-backend/internal/domain"
)

// Fallback defaults applied when the corresponding field is empty after
// sanitization, so a sparse submission still renders a presentable page.
const (
	defaultName       = "Your Name"
	defaultProfession = "Your Profession"
	defaultTagline    = "Welcome to my portfolio"
	defaultSummary    = "A short professional summary will appear here."
	defaultAbout      = "Tell visitors a little about yourself."
	defaultEmail      = "your.email@example.com"
	defaultLinkedIn   = "https://www.linkedin.com"
	defaultPhone      = "+0 000 000 0000"
)

// Site binds a sanitized request into the given style template and returns
// the complete HTML document. Pure function: identical input yields a
// byte-identical document, and no placeholder token survives substitution.
func Site(tpl domain.Template, req *domain.PortfolioRequest) string {
	doc := skeleton

	colors := map[string]string{
		"{color-bg}":      tpl.Scheme.Background,
		"{color-surface}": tpl.Scheme.Surface,
		"{color-text}":    tpl.Scheme.Text,
		"{color-muted}":   tpl.Scheme.Muted,
		"{color-accent}":  tpl.Scheme.Accent,
	}
	for token, value := range colors {
		doc = strings.ReplaceAll(doc, token, value)
	}

	doc = strings.ReplaceAll(doc, "{skills}", skillsFragment(req.Skills, req.Proficiencies))
	doc = strings.ReplaceAll(doc, "{projects}", projectsFragment(req.Projects))

	fields := []struct {
		token    string
		value    string
		fallback string
	}{
		{"{keywords}", strings.Join(req.Skills, ", "), ""},
		{"{name}", req.Name, defaultName},
		{"{profession}", req.Profession, defaultProfession},
		{"{tagline}", req.Tagline, defaultTagline},
		{"{summary}", req.Summary, defaultSummary},
		{"{about}", req.About, defaultAbout},
		{"{email}", req.Email, defaultEmail},
		{"{linkedin}", safeLink(req.LinkedIn), defaultLinkedIn},
		{"{phone}", req.Phone, defaultPhone},
	}
	for _, f := range fields {
		value := f.value
		if value == "" {
			value = f.fallback
		}
		doc = strings.ReplaceAll(doc, f.token, value)
	}

	return doc
}

// skillsFragment builds one block per skill, pairing it with its
// proficiency percentage. A missing or out-of-range proficiency renders
// as 0 rather than failing the document.
func skillsFragment(skills []string, proficiencies []int) string {
	var b strings.Builder
	for i, skill := range skills {
		if skill == "" {
			continue
		}
		pct := 0
		if i < len(proficiencies) {
			pct = proficiencies[i]
		}
		if pct < 0 || pct > 100 {
			pct = 0
		}
		fmt.Fprintf(&b, `<div class="skill"><span class="skill-name">%s &mdash; %d%%</span><div class="bar"><div class="fill" style="width:%d%%"></div></div></div>`,
			skill, pct, pct)
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return "<p>Skills coming soon.</p>"
	}
	return strings.TrimRight(b.String(), "\n")
}

// safeLink returns s only when it is a parseable http or https URL.
// Sanitization strips markup, not URI schemes, so hrefs get their own gate:
// anything else (javascript:, data:, relative paths) renders as no link.
func safeLink(s string) string {
	if s == "" {
		return ""
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}
	return s
}

// projectsFragment builds one block per project that still has both a title
// and a description after sanitization. The link element is emitted only
// when a link was supplied.
func projectsFragment(projects []domain.Project) string {
	var b strings.Builder
	for _, p := range projects {
		if p.Title == "" || p.Description == "" {
			continue
		}
		b.WriteString(`<article class="project">`)
		fmt.Fprintf(&b, "<h3>%s</h3>", p.Title)
		if p.Category != "" {
			fmt.Fprintf(&b, `<span class="category">%s</span>`, p.Category)
		}
		fmt.Fprintf(&b, "<p>%s</p>", p.Description)
		if link := safeLink(p.Link); link != "" {
			fmt.Fprintf(&b, `<a href="%s" target="_blank" rel="noopener">View project</a>`, link)
		}
		b.WriteString("</article>\n")
	}
	if b.Len() == 0 {
		return "<p>Projects coming soon.</p>"
	}
	return strings.TrimRight(b.String(), "\n")
}
