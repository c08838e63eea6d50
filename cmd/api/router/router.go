package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/bson"

	"promptdeck/categorizer"
	"promptdeck/cmd/api/auth"
	"promptdeck/cmd/api/handlers"
	"promptdeck/cmd/api/middleware"
	"promptdeck/config"
	"promptdeck/db"
	_ "promptdeck/docs"
	"promptdeck/quota"
	"promptdeck/repositories"
	"promptdeck/services"
)

// New 는 라우터를 구성한다. dispatcher 는 nil 일 수 있다(이벤트 버스 없는 구성).
func New(jwtManager *auth.JWTManager, dispatcher *services.EventDispatcher) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLoggingMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		// Try ping MongoDB
		if err := db.Database().RunCommand(context.Background(), bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	cfg := config.GetConfig()
	promptRepo := repositories.NewPromptRepository(db.Database())
	logRepo := repositories.NewCategorizeLogRepository(db.Database())

	promptSvc := services.NewPromptService(promptRepo, dispatcher)
	deps := services.CategorizeServiceDeps{
		Prompts: promptRepo,
		Logs:    logRepo,
		Gateway: categorizer.NewGateway(cfg.GeminiModel),
		// 배치 트리거도 게이트웨이 호출 페이싱을 적용받는다.
		Quota: quota.NewCategorizeQuotaLimiterFromConfig(cfg),
	}
	// nil 포인터를 인터페이스에 넣지 않는다.
	if dispatcher != nil {
		deps.Publisher = dispatcher
	}
	categorizeSvc := services.NewCategorizeService(deps)

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.GET("/prompts", handlers.ListPromptsHandler(promptSvc))
		api.GET("/prompts/:id", handlers.GetPromptHandler(promptSvc))

		// 등록은 인증만 요구한다. 역할 제한 없음.
		api.POST("/prompts", middleware.RequireRoles(jwtManager), handlers.CreatePromptHandler(promptSvc))

		// 태깅 호출은 역할 허용 목록으로 제한한다.
		categorize := api.Group("", middleware.RequireRoles(jwtManager, auth.CategorizerRoles...))
		{
			categorize.POST("/prompts/categorize", handlers.CategorizeDraftHandler(categorizeSvc))
			categorize.POST("/prompts/:id/categorize", handlers.CategorizePromptHandler(categorizeSvc))
		}

		admin := api.Group("/admin", middleware.RequireRoles(jwtManager, auth.OperatorRoles...))
		{
			admin.POST("/prompts/categorize-batch", handlers.BatchCategorizeHandler(categorizeSvc))
		}
	}

	return r
}
