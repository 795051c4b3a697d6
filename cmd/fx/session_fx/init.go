package session_fx

import (
	"context"
	"log"
	"time"

	"go.uber.org/fx"

	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/config"
	mem "github.com/krzysztofpiesio89/czystepomniki-app-backend/pkg/memcache"
)

var Module = fx.Options(
	fx.Provide(provideSessionStore),
	fx.Invoke(registerJanitor),
)

func provideSessionStore() mem.SessionStore {
	return mem.NewUploadSessions()
}

// registerJanitor expires abandoned upload sessions in the background so
// half-finished uploads do not pin photo bytes in memory forever.
func registerJanitor(lc fx.Lifecycle, store mem.SessionStore, cfg *config.Config) {
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ticker := time.NewTicker(cfg.SweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if n := store.Sweep(cfg.SessionTTL); n > 0 {
							log.Printf("upload session janitor: expired %d session(s)", n)
						}
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)
			return nil
		},
	})
}
