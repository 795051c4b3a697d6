package controllers_fx

import (
	"go.uber.org/fx"

	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/api/controllers"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/config"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/services"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewContactController),
	fx.Provide(controllers.NewCemeteryController),
	fx.Provide(provideSummaryController),
	fx.Provide(provideUploadController))

func provideSummaryController(summaryService services.SummaryServiceInterface, cfg *config.Config) *controllers.SummaryController {
	return controllers.NewSummaryController(summaryService, cfg.MaxUploadBytes, cfg.WorkflowTimeout)
}

func provideUploadController(storage services.StorageService, cfg *config.Config) *controllers.UploadController {
	return controllers.NewUploadController(storage, cfg.MaxUploadBytes)
}
