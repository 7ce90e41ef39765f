package v1

import (
	"net/http"
	"time"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterDeps struct {
	PortfolioUC domain.PortfolioUsecase
	ScreeningUC domain.ScreeningUsecase
	HealthUC    usecase.HealthUsecase
	Registry    *prometheus.Registry // nil disables the /metrics endpoint
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = deps.Config.MaxUploadBytes

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	if deps.Registry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	globalCfg := middleware.DefaultRateLimitConfig()
	globalCfg.Limit = deps.Config.RateLimitGlobalThreshold
	globalCfg.Window = time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	v1 := r.Group("/v1")
	v1.Use(middleware.RateLimitMiddleware(globalCfg))

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", deps.HealthUC.Check(c.Request.Context()))
	})

	// Site generation: each accepted request provisions a remote
	// repository, so it carries its own stricter per-client cap.
	publishLimiter := middleware.RateLimitMiddleware(middleware.PublishRateLimitConfig(
		deps.Config.RateLimitPublishThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	))
	NewPortfolioHandler(v1, deps.PortfolioUC, deps.Config.UploadTmpDir, publishLimiter)

	// Auxiliary CV screening
	NewScreeningHandler(v1, deps.ScreeningUC)

	return r
}
