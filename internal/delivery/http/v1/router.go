package v1

import (
	"resume-builder-backend/internal/delivery/http/middleware"
	"resume-builder-backend/internal/domain"
	"resume-builder-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ResumeUC        domain.ResumeUsecase
	AuthUC          domain.AuthUsecase
	JobUC           domain.JobUsecase
	MasterDataUC    domain.MasterDataUsecase
	AnalyticsUC     domain.AnalyticsUsecase
	SystemUC        usecase.SystemUsecase
	MasterResources []string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	NewSystemHandler(api, deps.SystemUC)
	NewResumeHandler(api, deps.ResumeUC)
	NewAuthHandler(api, deps.AuthUC)
	NewJobHandler(api, deps.JobUC)
	NewMasterDataHandler(api, deps.MasterDataUC, deps.MasterResources)
	NewAnalyticsHandler(api, deps.AnalyticsUC)

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
