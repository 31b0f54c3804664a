// Package factory constructs the configured store adapter.
package factory

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/whiskyhouse/whisky-service/internal/config"
	"github.com/whiskyhouse/whisky-service/internal/store"
	storepg "github.com/whiskyhouse/whisky-service/internal/store/postgres"
	storelite "github.com/whiskyhouse/whisky-service/internal/store/sqlite"
)

// NewStore selects the store adapter from cfg.DBDriver, opens it
// synchronously and verifies connectivity with a bounded async ping so
// startup stays fast.
func NewStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (store.Store, error) {
	switch cfg.DBDriver {
	case "sqlite":
		db, err := storelite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := storelite.EnsureSchema(db); err != nil {
			_ = db.Close()
			return nil, err
		}
		s := storelite.New(db)
		pingAsync(ctx, s, cfg.DBDriver, log)
		return s, nil
	case "postgres":
		db, err := storepg.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if err := storepg.Bootstrap(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		s := storepg.New(db)
		pingAsync(ctx, s, cfg.DBDriver, log)
		return s, nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER: %s", cfg.DBDriver)
	}
}

func pingAsync(ctx context.Context, s store.Store, driver string, log zerolog.Logger) {
	go func() {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := s.HealthPing(pingCtx); err != nil {
			log.Warn().Err(err).Str("driver", driver).Msg("store connectivity check failed")
		} else {
			log.Debug().Str("driver", driver).Msg("store connectivity check completed")
		}
	}()
}
