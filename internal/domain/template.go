package domain

import "sort"

// Scheme is a named color configuration fed into the shared markup skeleton.
// Templates are a closed set of these, not separate markup trees.
type Scheme struct {
	Background string
	Surface    string
	Text       string
	Muted      string
	Accent     string
}

// Template is an immutable style variant identified by name.
type Template struct {
	Name   string
	Scheme Scheme
}

// templates is the closed enumeration of style variants. Process-wide
// constants; never mutated.
var templates = map[string]Template{
	"default": {
		Name: "default",
		Scheme: Scheme{
			Background: "#f5f6fa",
			Surface:    "#ffffff",
			Text:       "#1f2430",
			Muted:      "#6b7280",
			Accent:     "#2563eb",
		},
	},
	"dark": {
		Name: "dark",
		Scheme: Scheme{
			Background: "#0f1117",
			Surface:    "#1a1d27",
			Text:       "#e5e7eb",
			Muted:      "#9ca3af",
			Accent:     "#38bdf8",
		},
	},
	"elegant": {
		Name: "elegant",
		Scheme: Scheme{
			Background: "#faf7f2",
			Surface:    "#fffdf9",
			Text:       "#2d2a26",
			Muted:      "#8a8174",
			Accent:     "#b08d57",
		},
	},
	"minimal": {
		Name: "minimal",
		Scheme: Scheme{
			Background: "#ffffff",
			Surface:    "#fafafa",
			Text:       "#111111",
			Muted:      "#777777",
			Accent:     "#111111",
		},
	},
}

// LookupTemplate resolves a template name against the enumeration.
func LookupTemplate(name string) (Template, bool) {
	t, ok := templates[name]
	return t, ok
}

// TemplateNames lists the known template identifiers (for error messages).
func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
