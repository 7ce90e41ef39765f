package render_test

import (
	"strings"
	"testing"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullRequest() *domain.PortfolioRequest {
	return &domain.PortfolioRequest{
		Name:          "Ada Lovelace",
		Profession:    "Engineer",
		Tagline:       "Numbers into music",
		Summary:       "Analytical engines and their programs.",
		About:         "First programmer.",
		Email:         "ada@example.com",
		LinkedIn:      "https://www.linkedin.com/in/ada",
		Phone:         "+44 20 0000 0000",
		Skills:        []string{"Mathematics", "Mechanical computation"},
		Proficiencies: []int{95, 90},
		Projects: []domain.Project{
			{Title: "Note G", Description: "Bernoulli number program", Link: "https://example.com/note-g", Category: "Algorithms"},
		},
		Template: "dark",
	}
}

func mustTemplate(t *testing.T, name string) domain.Template {
	t.Helper()
	tpl, ok := domain.LookupTemplate(name)
	require.True(t, ok)
	return tpl
}

func TestSiteIsDeterministic(t *testing.T) {
	tpl := mustTemplate(t, "dark")

	first := render.Site(tpl, fullRequest())
	second := render.Site(tpl, fullRequest())

	assert.Equal(t, first, second)
}

func TestSiteLeavesNoPlaceholders(t *testing.T) {
	tokens := []string{
		"{keywords}", "{name}", "{profession}", "{tagline}", "{summary}",
		"{about}", "{skills}", "{projects}", "{email}", "{linkedin}", "{phone}",
		"{color-bg}", "{color-surface}", "{color-text}", "{color-muted}", "{color-accent}",
	}

	for _, name := range domain.TemplateNames() {
		tpl := mustTemplate(t, name)

		doc := render.Site(tpl, fullRequest())
		for _, token := range tokens {
			assert.NotContains(t, doc, token, "template %s", name)
		}

		sparse := render.Site(tpl, &domain.PortfolioRequest{Template: name})
		for _, token := range tokens {
			assert.NotContains(t, sparse, token, "template %s (sparse)", name)
		}
	}
}

func TestSiteAppliesDefaults(t *testing.T) {
	tpl := mustTemplate(t, "default")

	doc := render.Site(tpl, &domain.PortfolioRequest{Template: "default"})

	assert.Contains(t, doc, "Your Name")
	assert.Contains(t, doc, "your.email@example.com")
	assert.Contains(t, doc, "Skills coming soon.")
	assert.Contains(t, doc, "Projects coming soon.")
}

func TestSiteUsesTemplateColors(t *testing.T) {
	for _, name := range domain.TemplateNames() {
		tpl := mustTemplate(t, name)

		doc := render.Site(tpl, fullRequest())

		assert.Contains(t, doc, tpl.Scheme.Background, "template %s", name)
		assert.Contains(t, doc, tpl.Scheme.Accent, "template %s", name)
	}
}

func TestSkillsRenderWithProficiency(t *testing.T) {
	tpl := mustTemplate(t, "dark")

	doc := render.Site(tpl, fullRequest())

	assert.Contains(t, doc, "Mathematics &mdash; 95%")
	assert.Contains(t, doc, "width:95%")
}

func TestOutOfRangeProficiencyRendersAsZero(t *testing.T) {
	tpl := mustTemplate(t, "dark")
	req := fullRequest()
	req.Skills = []string{"Mathematics"}
	req.Proficiencies = []int{150}

	doc := render.Site(tpl, req)

	assert.Contains(t, doc, "Mathematics &mdash; 0%")
	assert.NotContains(t, doc, "width:150%")
}

func TestIncompleteProjectsAreDropped(t *testing.T) {
	tpl := mustTemplate(t, "dark")
	req := fullRequest()
	req.Projects = []domain.Project{
		{Title: "Complete", Description: "Kept"},
		{Title: "No description"},
		{Description: "No title"},
	}

	doc := render.Site(tpl, req)

	assert.Equal(t, 1, strings.Count(doc, `<article class="project">`))
	assert.Contains(t, doc, "<h3>Complete</h3>")
}

func TestProjectLinkIsOptional(t *testing.T) {
	tpl := mustTemplate(t, "dark")
	req := fullRequest()
	req.Projects = []domain.Project{{Title: "No link", Description: "Plain entry"}}

	doc := render.Site(tpl, req)

	assert.NotContains(t, doc, "View project")

	req.Projects[0].Link = "https://example.com"
	doc = render.Site(tpl, req)

	assert.Contains(t, doc, `href="https://example.com"`)
	assert.Contains(t, doc, "View project")
}

func TestNonHTTPLinksAreDropped(t *testing.T) {
	tpl := mustTemplate(t, "dark")

	for _, link := range []string{
		"javascript:alert(1)",
		"data:text/html,<h1>x</h1>",
		"ftp://example.com/file",
		"not a url",
	} {
		req := fullRequest()
		req.Projects = []domain.Project{{Title: "T", Description: "D", Link: link}}

		doc := render.Site(tpl, req)

		assert.NotContains(t, doc, link, "link %q", link)
		assert.NotContains(t, doc, "View project", "link %q", link)
	}
}

func TestUnsafeLinkedInFallsBackToDefault(t *testing.T) {
	tpl := mustTemplate(t, "dark")
	req := fullRequest()
	req.LinkedIn = "javascript:alert(1)"

	doc := render.Site(tpl, req)

	assert.NotContains(t, doc, "javascript:")
	assert.Contains(t, doc, "https://www.linkedin.com")
}
