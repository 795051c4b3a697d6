package storage_fx

import (
	"context"

	"go.uber.org/fx"

	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/config"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/services"
)

var Module = fx.Provide(provideStorage)

func provideStorage(cfg *config.Config) (services.StorageService, error) {
	return services.NewS3Storage(context.Background(), cfg.Storage)
}
