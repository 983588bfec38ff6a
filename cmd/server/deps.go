package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/cragline-cms/internal/auth"
	"github.com/Nixie-Tech-LLC/cragline-cms/internal/cache"
	"github.com/Nixie-Tech-LLC/cragline-cms/internal/config"
	"github.com/Nixie-Tech-LLC/cragline-cms/internal/db"
	"github.com/Nixie-Tech-LLC/cragline-cms/internal/events"
)

const etagTTL = 24 * time.Hour

// Dependencies are constructed once at boot and shared by every request.
type Dependencies struct {
	Store     db.Store
	Validator auth.Validator
	ETags     cache.ETags
	Publisher events.Publisher
}

// InitDependencies selects and connects the configured backends. The returned
// cleanup releases connections in reverse order.
func InitDependencies(ctx context.Context, cfg *config.Config) (Dependencies, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	deps := Dependencies{
		Validator: InitValidator(cfg),
		Publisher: events.Nop{},
	}

	if cfg.DatabaseURL == "" {
		log.Warn().Msg("DATABASE_URL not set, using in-memory store")
		deps.Store = db.NewMemoryStore()
	} else {
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return Dependencies{}, cleanup, fmt.Errorf("db init: %w", err)
		}
		closers = append(closers, func() { conn.Close() })

		if err := db.RunMigrations(ctx, conn, cfg.MigrationsPath); err != nil {
			cleanup()
			return Dependencies{}, func() {}, fmt.Errorf("db migrate: %w", err)
		}
		deps.Store = db.NewStore(conn)
	}

	if cfg.RedisAddress != "" {
		rdb := cache.NewClient(cfg.RedisAddress, cfg.RedisUsername, cfg.RedisPassword)
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddress).Msg("redis unreachable, collection ETags disabled")
			rdb.Close()
		} else {
			closers = append(closers, func() { rdb.Close() })
			deps.ETags = cache.NewRedisETags(rdb, etagTTL)
			log.Info().Str("addr", cfg.RedisAddress).Msg("collection ETags enabled")
		}
	}

	if cfg.MQTTBrokerURL != "" {
		host, _ := os.Hostname()
		publisher, err := events.NewMQTTPublisher(cfg.MQTTBrokerURL, "cms-"+host)
		if err != nil {
			log.Warn().Err(err).Str("broker", cfg.MQTTBrokerURL).Msg("MQTT unavailable, change events disabled")
		} else {
			closers = append(closers, publisher.Close)
			deps.Publisher = publisher
		}
	}

	return deps, cleanup, nil
}

// InitValidator verifies tokens locally when the JWT secret is known and asks the
// identity provider otherwise.
func InitValidator(cfg *config.Config) auth.Validator {
	var v auth.Validator
	if cfg.SupabaseJWTSecret != "" {
		log.Info().Msg("verifying bearer tokens with the configured JWT secret")
		v = auth.NewJWTValidator(cfg.SupabaseJWTSecret)
	} else {
		if cfg.SupabaseURL == "" {
			log.Warn().Msg("SUPABASE_URL not set, every authenticated request will be rejected")
		}
		v = auth.NewGoTrueValidator(cfg.SupabaseURL, cfg.SupabaseAnonKey, nil)
	}

	if cfg.RequiredRole != "" {
		log.Info().Str("role", cfg.RequiredRole).Msg("restricting CMS access to role")
	}
	return auth.RequireRole(v, cfg.RequiredRole)
}
