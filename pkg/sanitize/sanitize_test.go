package sanitize_test

import (
	"testing"

	"go-portfolio-backend/pkg/sanitize"

	"github.com/stretchr/testify/assert"
)

func TestTextPassesPlainContent(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", sanitize.Text("Ada Lovelace"))
	assert.Equal(t, "Backend Engineer (Go)", sanitize.Text("Backend Engineer (Go)"))
}

func TestTextStripsMarkup(t *testing.T) {
	assert.Equal(t, "Hello world", sanitize.Text("Hello <b>world</b>"))
	assert.Equal(t, "link", sanitize.Text(`<a href="https://evil.example">link</a>`))
}

func TestTextRemovesScripts(t *testing.T) {
	out := sanitize.Text(`Ada<script>alert("xss")</script>`)

	assert.Equal(t, "Ada", out)
	assert.NotContains(t, out, "alert")
}

func TestTextTrimsWhitespace(t *testing.T) {
	assert.Equal(t, "Ada", sanitize.Text("  Ada  "))
	assert.Equal(t, "", sanitize.Text("   "))
}
