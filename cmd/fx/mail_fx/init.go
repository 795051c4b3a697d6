package mail_fx

import (
	"go.uber.org/fx"

	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/config"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg *config.Config) services.IMailService {
	return services.NewSMTPMailService(cfg.SMTP)
}
