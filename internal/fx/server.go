package fx

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/EduardoCSampaio/financas-app/config"
	"github.com/EduardoCSampaio/financas-app/internal/infrastructure"
	"github.com/EduardoCSampaio/financas-app/internal/logger"
	"github.com/EduardoCSampaio/financas-app/internal/middleware"
	"github.com/EduardoCSampaio/financas-app/internal/routes"

	docs "github.com/EduardoCSampaio/financas-app/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go.uber.org/fx"
)

// ServerModule fornece a configuração do servidor HTTP
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
		startServer,
	),
)

func newRouter(cfg *config.Config) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	return gin.Default()
}

func setupRoutes(
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	jwtSvc *middleware.JwtService,
	authRateLimiter *middleware.RateLimiter,
	storage *infrastructure.LocalStorage,
) {
	router.Use(middleware.CORSMiddleware())

	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.Static(cfg.Storage.BaseURL, storage.Dir())

	public := router.Group("/api")
	public.Use(middleware.RateLimit(authRateLimiter))
	{
		public.POST("/auth/token", handler.Authenticate)
		public.POST("/auth/google", handler.GoogleAuth)
		public.POST("/auth/forgot-password", handler.ForgotPassword)
		public.POST("/auth/reset-password", handler.ResetPassword)
		public.POST("/users", handler.Registration)
	}

	private := router.Group("/api")
	private.Use(middleware.AuthMiddleware(jwtSvc))
	private.Use(middleware.RateLimitByUser(100, time.Minute))
	{
		private.GET("/dashboard", handler.GetDashboard)

		users := private.Group("/users")
		{
			users.GET("/me", handler.GetMe)
			users.PATCH("/me", handler.UpdateUserName)
			users.PATCH("/me/password", handler.UpdateUserPassword)
			users.DELETE("/me", handler.DeleteUser)

			users.GET("/categories", handler.ListCategories)
			users.POST("/categories", handler.CreateCategory)
			users.PUT("/categories/:id", handler.UpdateCategory)
			users.DELETE("/categories/:id", handler.DeleteCategory)

			users.GET("/budgets", handler.ListBudgets)
			users.POST("/budgets", handler.UpsertBudget)
			users.DELETE("/budgets/:id", handler.DeleteBudget)
		}

		accounts := private.Group("/accounts")
		{
			accounts.POST("", handler.CreateAccount)
			accounts.GET("", handler.ListAccounts)
			accounts.GET("/:id", handler.GetAccount)
			accounts.PUT("/:id", handler.UpdateAccount)
			accounts.DELETE("/:id", handler.DeleteAccount)
		}

		transactions := private.Group("/transactions")
		{
			transactions.GET("", handler.GetTransactions)
			transactions.GET("/export", handler.ExportTransactions)
			transactions.GET("/:id", handler.GetTransaction)
			transactions.POST("", handler.CreateTransaction)
			transactions.PUT("/:id", handler.UpdateTransaction)
			transactions.PATCH("/:id/paid", handler.UpdatePaid)
			transactions.DELETE("/:id", handler.DeleteTransaction)
		}
	}
}

func startServer(lc fx.Lifecycle, cfg *config.Config, router *gin.Engine) {
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info().Str("port", cfg.Server.Port).Msg("Servidor HTTP iniciado")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal().Err(err).Msg("Falha no servidor HTTP")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Encerrando servidor HTTP")
			return srv.Shutdown(ctx)
		},
	})
}
