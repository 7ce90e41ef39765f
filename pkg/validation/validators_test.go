package validation_test

import (
	"testing"

	"go-portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type subject struct {
	Name  string `validate:"omitempty,valid_name"`
	Phone string `validate:"omitempty,valid_phone"`
	Email string `validate:"omitempty,valid_email"`
	Bio   string `validate:"omitempty,no_emoji"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestIsEmail(t *testing.T) {
	valid := []string{
		"ada@example.com",
		"first.last@sub.example.co.uk",
		"name+tag@example.io",
	}
	for _, addr := range valid {
		assert.True(t, validation.IsEmail(addr), addr)
	}

	invalid := []string{
		"ada@example",     // no TLD
		"ada.example.com", // no @
		"@example.com",    // empty local part
		"ada@",            // empty domain
		"ada @example.com",
		"",
	}
	for _, addr := range invalid {
		assert.False(t, validation.IsEmail(addr), addr)
	}
}

func TestValidEmailTag(t *testing.T) {
	v := newValidator()

	assert.NoError(t, v.Struct(subject{Email: "ada@example.com"}))
	assert.Error(t, v.Struct(subject{Email: "ada@example"}))
}

func TestValidNameTag(t *testing.T) {
	v := newValidator()

	assert.NoError(t, v.Struct(subject{Name: "Ada Lovelace"}))
	assert.NoError(t, v.Struct(subject{Name: "O'Brien-Smith (Jr.)"}))
	assert.Error(t, v.Struct(subject{Name: "Ada <script>"}))
}

func TestValidPhoneTag(t *testing.T) {
	v := newValidator()

	assert.NoError(t, v.Struct(subject{Phone: "+6281234567890"}))
	assert.NoError(t, v.Struct(subject{Phone: "08123456789"}))
	assert.NoError(t, v.Struct(subject{Phone: "+44 20 7946 0958"}))
	assert.NoError(t, v.Struct(subject{Phone: "(020) 7946-0958"}))
	assert.Error(t, v.Struct(subject{Phone: "not-a-number"}))
	assert.Error(t, v.Struct(subject{Phone: "123"}))
}

func TestNoEmojiTag(t *testing.T) {
	v := newValidator()

	assert.NoError(t, v.Struct(subject{Bio: "Plain biography text."}))
	assert.Error(t, v.Struct(subject{Bio: "Great work \U0001F600"}))
}
