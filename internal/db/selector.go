package db

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/hostdesk/reservation-api/internal/config"
	domain "github.com/hostdesk/reservation-api/internal/domain/reservation"
	infraRepo "github.com/hostdesk/reservation-api/internal/infra/repository"
)

// SelectRepository picks the persistence tier once at startup:
// Postgres -> Redis -> JSON file -> seeded in-memory. A tier is skipped when
// its configuration is absent or its connectivity probe fails; the choice is
// never re-evaluated mid-session.
func SelectRepository(cfg *config.Config, log *slog.Logger) (domain.Repository, string) {
	if cfg.DatabaseURL != "" {
		gdb, err := Open(cfg.DatabaseURL)
		if err == nil {
			log.Info("persistence backend selected", "backend", "postgres")
			return infraRepo.NewReservationGormRepository(gdb), "postgres"
		}
		log.Warn("postgres unavailable, falling back", "error", err)
	}

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err == nil {
			client := redis.NewClient(opts)
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err = client.Ping(ctx).Err()
			cancel()
			if err == nil {
				log.Info("persistence backend selected", "backend", "redis")
				return infraRepo.NewReservationRedisRepository(client), "redis"
			}
		}
		log.Warn("redis unavailable, falling back", "error", err)
	}

	if cfg.DataFile != "" {
		repo, err := infraRepo.NewReservationFileRepository(cfg.DataFile)
		if err == nil {
			log.Info("persistence backend selected", "backend", "file", "path", cfg.DataFile)
			return repo, "file"
		}
		log.Warn("data file unusable, falling back", "error", err)
	}

	log.Info("persistence backend selected", "backend", "memory", "seeded", true)
	return infraRepo.NewReservationMemoryRepository(domain.SampleFields()), "memory"
}
