package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/krzysztofpiesio89/czystepomniki-app-backend/cmd/fx/auth_fx"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/cmd/fx/cemetery_fx"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/cmd/fx/contact_fx"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/cmd/fx/controllers_fx"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/cmd/fx/db_fx"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/cmd/fx/greeting_fx"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/cmd/fx/mail_fx"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/cmd/fx/session_fx"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/cmd/fx/storage_fx"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/cmd/fx/summary_fx"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/api/controllers"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/config"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		fx.Provide(config.Load),
		db_fx.Module,
		auth_fx.Module,
		contact_fx.Module,
		cemetery_fx.Module,
		mail_fx.Module,
		storage_fx.Module,
		session_fx.Module,
		greeting_fx.Module,
		summary_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	contactController *controllers.ContactController,
	cemeteryController *controllers.CemeteryController,
	summaryController *controllers.SummaryController,
	uploadController *controllers.UploadController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, authController, contactController, cemeteryController, summaryController, uploadController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	contactController *controllers.ContactController,
	cemeteryController *controllers.CemeteryController,
	summaryController *controllers.SummaryController,
	uploadController *controllers.UploadController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/login", authController.Login)

	cemeteryGroup := r.Group("/cemeteries")
	cemeteryGroup.GET("", cemeteryController.List)

	contactGroup := r.Group("/contacts")
	contactGroup.GET("", contactController.List)
	contactGroup.POST("", contactController.Create)
	contactGroup.POST("/bulk", contactController.BulkImport)
	contactGroup.DELETE("", contactController.Delete)

	summaryGroup := r.Group("/send-summary")
	summaryGroup.POST("", summaryController.SendSummary)
	summaryGroup.POST("/upload", summaryController.UploadPhotos)
	summaryGroup.POST("/finalize", summaryController.Finalize)

	r.GET("/summaries", summaryController.ListSummaries)

	uploadGroup := r.Group("/uploads")
	uploadGroup.GET("/*filename", uploadController.Serve)
	uploadGroup.POST("/*filename", uploadController.Store)
}
