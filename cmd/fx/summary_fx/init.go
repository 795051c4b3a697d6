package summary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/config"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/repositories"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/services"
	mem "github.com/krzysztofpiesio89/czystepomniki-app-backend/pkg/memcache"
)

var Module = fx.Provide(
	provideSummaryService, provideSummaryRepo)

func provideSummaryRepo(db *gorm.DB) repositories.SummaryRepository {
	return repositories.NewSummaryRepository(db)
}

func provideSummaryService(
	summaryRepo repositories.SummaryRepository,
	storage services.StorageService,
	mail services.IMailService,
	sessions mem.SessionStore,
	greeter services.Greeter,
	cfg *config.Config,
) services.SummaryServiceInterface {
	return services.NewSummaryService(summaryRepo, storage, mail, sessions, greeter, cfg)
}
