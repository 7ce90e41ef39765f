package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-portfolio-backend/internal/delivery/http/middleware"
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPortfolioUC struct {
	mock.Mock
}

func (m *MockPortfolioUC) Publish(ctx context.Context, req *domain.PortfolioRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func newTestRouter(t *testing.T, uc domain.PortfolioUsecase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	v1.NewPortfolioHandler(r.Group("/v1"), uc, t.TempDir(), nil)
	return r
}

type formField struct{ key, value string }

func multipartBody(t *testing.T, fields []formField) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, f := range fields {
		require.NoError(t, w.WriteField(f.key, f.value))
	}
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

func basicFields() []formField {
	return []formField{
		{"name", "Ada Lovelace"},
		{"profession", "Engineer"},
		{"email", "ada@example.com"},
		{"template", "dark"},
	}
}

func TestGenerateSuccess(t *testing.T) {
	uc := new(MockPortfolioUC)
	uc.On("Publish", mock.Anything, mock.MatchedBy(func(req *domain.PortfolioRequest) bool {
		return req.Name == "Ada Lovelace" && req.Template == "dark"
	})).Return("https://octocat.github.io/eportfolio-ada-lovelace-1", nil)

	r := newTestRouter(t, uc)
	body, contentType := multipartBody(t, basicFields())

	req := httptest.NewRequest(http.MethodPost, "/v1/portfolios", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "https://octocat.github.io/eportfolio-ada-lovelace-1", resp.Data.URL)
}

func TestGenerateParsesStructuredFields(t *testing.T) {
	uc := new(MockPortfolioUC)
	uc.On("Publish", mock.Anything, mock.MatchedBy(func(req *domain.PortfolioRequest) bool {
		return len(req.Skills) == 2 && req.Proficiencies[1] == 70 &&
			len(req.Projects) == 1 && req.Projects[0].Title == "Note G"
	})).Return("https://octocat.github.io/x", nil)

	fields := append(basicFields(),
		formField{"skills", `["Go","SQL"]`},
		formField{"skillProficiencies", `[90,70]`},
		formField{"projects", `[{"title":"Note G","description":"Bernoulli program"}]`},
	)

	r := newTestRouter(t, uc)
	body, contentType := multipartBody(t, fields)

	req := httptest.NewRequest(http.MethodPost, "/v1/portfolios", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	uc.AssertExpectations(t)
}

func TestGenerateRejectsMalformedSkillsJSON(t *testing.T) {
	uc := new(MockPortfolioUC)
	r := newTestRouter(t, uc)

	fields := append(basicFields(), formField{"skills", `not-json`})
	body, contentType := multipartBody(t, fields)

	req := httptest.NewRequest(http.MethodPost, "/v1/portfolios", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	uc.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestGenerateMapsPublishingFailureTo500(t *testing.T) {
	uc := new(MockPortfolioUC)
	uc.On("Publish", mock.Anything, mock.Anything).
		Return("", apperror.Publishing("Failed to create the site repository", assert.AnError))

	r := newTestRouter(t, uc)
	body, contentType := multipartBody(t, basicFields())

	req := httptest.NewRequest(http.MethodPost, "/v1/portfolios", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Failed to create the site repository", resp.Message)
}

func TestGenerateRejectsSpoofedResume(t *testing.T) {
	uc := new(MockPortfolioUC)
	r := newTestRouter(t, uc)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, f := range basicFields() {
		require.NoError(t, w.WriteField(f.key, f.value))
	}
	part, err := w.CreateFormFile("cv", "resume.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("plain text pretending to be a pdf"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/portfolios", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
