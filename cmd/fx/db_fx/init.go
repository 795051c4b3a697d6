package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/config"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/infra"
)

var Module = fx.Provide(provideDB)

func provideDB(cfg *config.Config) *gorm.DB {
	return infra.InitPostgresql(cfg.PostgresURL)
}
