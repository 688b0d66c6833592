package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go-cv-review-backend/config"
	"go-cv-review-backend/internal/delivery/http/middleware"
	"go-cv-review-backend/internal/delivery/http/response"
	"go-cv-review-backend/internal/domain"
)

type RouterDeps struct {
	ReviewUC domain.ReviewUsecase
	CVUC     domain.CVLinkUsecase
	Config   *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Limit:  deps.Config.RateLimitThreshold,
		Window: time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second,
	}))

	// Exempt from the Basic gate: assets and the liveness probe.
	r.Static("/static", "./static")
	r.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Everything else sits behind the shared-credential gate.
	v1 := r.Group("/v1")
	v1.Use(middleware.BasicAuth(
		deps.Config.BasicAuthUser,
		deps.Config.BasicAuthPassword,
		deps.Config.BasicAuthRealm,
	))
	{
		v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

		NewReviewHandler(v1, deps.ReviewUC)
		NewCVHandler(v1, deps.CVUC)
	}

	return r
}
