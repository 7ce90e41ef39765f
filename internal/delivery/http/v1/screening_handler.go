package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

type ScreeningHandler struct {
	screeningUC domain.ScreeningUsecase
}

func NewScreeningHandler(r *gin.RouterGroup, screeningUC domain.ScreeningUsecase) {
	handler := &ScreeningHandler{screeningUC: screeningUC}

	r.POST("/screening", handler.Screen)
}

// Screen forwards an uploaded resume to the completion service and returns
// suggested portfolio content. Nothing is stored; the PDF lives only in
// memory for the duration of the request.
func (h *ScreeningHandler) Screen(c *gin.Context) {
	fileHeader, err := c.FormFile("cv")
	if err != nil {
		c.Error(apperror.BadRequest("A cv file part is required"))
		return
	}
	if fileHeader.Size > security.MaxFileSize {
		c.Error(apperror.BadRequest("The cv upload exceeds the 5 MiB limit"))
		return
	}

	data, err := readMultipartFile(fileHeader)
	if err != nil {
		c.Error(apperror.BadRequest("Could not read the cv upload"))
		return
	}

	detectedMIME := http.DetectContentType(data)
	result := security.ValidateUpload(security.RoleResume, fileHeader.Filename, data, detectedMIME)
	if !result.Valid {
		c.Error(apperror.BadRequest(result.Error))
		return
	}

	suggestion, err := h.screeningUC.Screen(c.Request.Context(), data, c.PostForm("job"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume screened", suggestion)
}
