package v1

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	portfolioUC domain.PortfolioUsecase
	tmpDir      string
}

func NewPortfolioHandler(r *gin.RouterGroup, portfolioUC domain.PortfolioUsecase, tmpDir string, limiter gin.HandlerFunc) {
	handler := &PortfolioHandler{portfolioUC: portfolioUC, tmpDir: tmpDir}

	portfolios := r.Group("/portfolios")
	if limiter != nil {
		portfolios.Use(limiter)
	}
	{
		portfolios.POST("", handler.Generate)
	}
}

// Generate accepts a multipart submission, validates and stores the
// attachments transiently, and hands the assembled request to the
// publication pipeline. 200 carries the published site URL; 400 covers all
// input problems, 500 all publishing problems.
func (h *PortfolioHandler) Generate(c *gin.Context) {
	req, err := h.bindRequest(c)
	if err != nil {
		c.Error(err)
		return
	}

	url, err := h.portfolioUC.Publish(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Portfolio published", gin.H{"url": url})
}

// bindRequest parses form fields and file parts into a domain request.
// Any temp file it saved is removed again before returning an error, so a
// rejected submission leaves nothing behind.
func (h *PortfolioHandler) bindRequest(c *gin.Context) (*domain.PortfolioRequest, error) {
	req := &domain.PortfolioRequest{
		Name:       c.PostForm("name"),
		Profession: c.PostForm("profession"),
		Tagline:    c.PostForm("tagline"),
		Summary:    c.PostForm("summary"),
		About:      c.PostForm("about"),
		Email:      c.PostForm("email"),
		LinkedIn:   c.PostForm("linkedin"),
		Phone:      c.PostForm("phone"),
		Template:   c.PostForm("template"),
	}

	// Structured fields arrive as JSON strings inside the multipart form.
	// Anything unparsable is a client-input error, never a server fault.
	if raw := c.PostForm("skills"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Skills); err != nil {
			return nil, apperror.BadRequest("Field skills must be a JSON array of strings")
		}
	}
	if raw := c.PostForm("skillProficiencies"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Proficiencies); err != nil {
			return nil, apperror.BadRequest("Field skillProficiencies must be a JSON array of numbers")
		}
	}
	if raw := c.PostForm("projects"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Projects); err != nil {
			return nil, apperror.BadRequest("Field projects must be a JSON array of objects")
		}
	}

	resume, err := h.saveUpload(c, "cv", security.RoleResume)
	if err != nil {
		return nil, err
	}
	req.Resume = resume

	headshot, err := h.saveUpload(c, "image", security.RoleHeadshot)
	if err != nil {
		if resume != nil {
			_ = os.Remove(resume.Path)
		}
		return nil, err
	}
	req.Headshot = headshot

	return req, nil
}

// saveUpload validates one optional file part and persists it under a
// request-unique name. Headshots are re-encoded to JPEG on the way in so
// the committed headshot.jpg is a genuine JPEG regardless of upload format.
func (h *PortfolioHandler) saveUpload(c *gin.Context, field string, role security.UploadRole) (*domain.UploadedFile, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, apperror.BadRequest(fmt.Sprintf("Could not read the %s upload", field))
	}

	if fileHeader.Size > security.MaxFileSize {
		return nil, apperror.BadRequest(fmt.Sprintf("The %s upload exceeds the 5 MiB limit", field))
	}

	data, err := readMultipartFile(fileHeader)
	if err != nil {
		return nil, apperror.BadRequest(fmt.Sprintf("Could not read the %s upload", field))
	}

	// Content type from the bytes, not the client-declared header
	detectedMIME := http.DetectContentType(data)
	result := security.ValidateUpload(role, fileHeader.Filename, data, detectedMIME)
	if !result.Valid {
		return nil, apperror.BadRequest(result.Error)
	}

	ext := result.Extension
	if role == security.RoleHeadshot {
		data, err = reencodeHeadshot(data)
		if err != nil {
			return nil, apperror.BadRequest("The headshot image could not be decoded")
		}
		ext = ".jpg"
	}

	// Timestamp + role keeps names unique across concurrent requests
	path := filepath.Join(h.tmpDir, fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), role, ext))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return nil, apperror.Internal(fmt.Errorf("persist %s upload: %w", field, err))
	}

	return &domain.UploadedFile{
		Role: string(role),
		Path: path,
		MIME: result.DetectedMIME,
		Size: int64(len(data)),
	}, nil
}

func readMultipartFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return io.ReadAll(src)
}
