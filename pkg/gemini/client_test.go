package gemini_test

import (
	"testing"

	"go-portfolio-backend/pkg/gemini"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSON(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"bare json", `{"tagline":"x"}`, `{"tagline":"x"}`},
		{"json fence", "```json\n{\"tagline\":\"x\"}\n```", `{"tagline":"x"}`},
		{"plain fence", "```\n{\"tagline\":\"x\"}\n```", `{"tagline":"x"}`},
		{"surrounding whitespace", "  \n{\"tagline\":\"x\"}\n  ", `{"tagline":"x"}`},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, gemini.CleanJSON(tc.input))
		})
	}
}
