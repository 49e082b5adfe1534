package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	httpapi "github.com/procoat-sa/site-backend/internal/api/http"
	"github.com/procoat-sa/site-backend/internal/api/http/middleware"
	"github.com/procoat-sa/site-backend/internal/auth"
	"github.com/procoat-sa/site-backend/internal/db"
	partnerhttp "github.com/procoat-sa/site-backend/internal/partners/http"
	partnerrepo "github.com/procoat-sa/site-backend/internal/partners/repository"
	projecthttp "github.com/procoat-sa/site-backend/internal/projects/http"
	projectrepo "github.com/procoat-sa/site-backend/internal/projects/repository"
	"github.com/procoat-sa/site-backend/internal/revalidate"
	"github.com/procoat-sa/site-backend/internal/uploads"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Environment string
	CORSOrigins []string
	DB          *db.DB
	Verifier    auth.TokenVerifier
	Cache       revalidate.Invalidator
	Uploads     *uploads.Store // nil disables /api/upload
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestIDMiddleware())

	if len(dep.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     dep.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	projectRepo := projectrepo.NewRepo(dep.DB)
	partnerRepo := partnerrepo.NewRepo(dep.DB)

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Environment, dep.DB, projectRepo)
	healthHandler.RegisterRoutes(r)

	// One limiter across all admin mutations; a single editor never hits it.
	requireUser := auth.RequireUser(dep.Verifier)
	limitWrites := middleware.RateLimit(rate.NewLimiter(rate.Limit(5), 20))

	api := r.Group("/api")

	projectHandler := projecthttp.NewHandler(projectRepo, dep.Cache)
	projectHandler.Register(api.Group("/projects"), requireUser, limitWrites)

	partnerHandler := partnerhttp.NewHandler(partnerRepo, dep.Cache)
	partnerHandler.Register(api.Group("/partners"), requireUser, limitWrites)

	if dep.Uploads != nil {
		uploadHandler := uploads.NewHandler(dep.Uploads)
		api.POST("/upload", requireUser, limitWrites, uploadHandler.Upload)
	}

	return r
}
