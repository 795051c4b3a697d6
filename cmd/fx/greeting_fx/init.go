package greeting_fx

import (
	"go.uber.org/fx"

	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/config"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/services"
)

var Module = fx.Provide(provideGreeter)

func provideGreeter(cfg *config.Config) services.Greeter {
	heuristic := services.NewHeuristicGreeter()
	if cfg.OpenAIKey != "" {
		return services.NewOpenAIGreeter(cfg.OpenAIKey, heuristic)
	}
	return heuristic
}
