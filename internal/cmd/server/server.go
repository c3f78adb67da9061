// Package server wires configuration, storage, and the HTTP surface for
// the atelier binary.
package server

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/louisbranch/atelier/internal/auth/bootstrap"
	"github.com/louisbranch/atelier/internal/auth/session"
	"github.com/louisbranch/atelier/internal/gallery"
	"github.com/louisbranch/atelier/internal/objects"
	"github.com/louisbranch/atelier/internal/platform/config"
	"github.com/louisbranch/atelier/internal/platform/otel"
	"github.com/louisbranch/atelier/internal/storage/sqlite"
	"github.com/louisbranch/atelier/internal/web"
)

const productionEnv = "production"

// Config holds the server command configuration.
type Config struct {
	HTTPAddr      string `env:"ATELIER_HTTP_ADDR" envDefault:"localhost:8080"`
	DBPath        string `env:"ATELIER_DB_PATH" envDefault:"atelier.db"`
	Env           string `env:"ATELIER_ENV" envDefault:"development"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// Production reports whether the process runs under the production policy.
func (c Config) Production() bool {
	return c.Env == productionEnv
}

// ParseConfig reads configuration from the environment, then lets flags
// override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.StringVar(&cfg.Env, "env", cfg.Env, "deployment environment (development or production)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the server: open storage, provision the admin identity, then
// serve until the context ends. The admin bootstrap guard runs before the
// listener; a weak production credential never serves a request.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := otel.Setup(ctx, "atelier")
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close store: %v", err)
		}
	}()

	if err := bootstrap.EnsureAdmin(ctx, store, bootstrap.Config{
		AdminPassword: cfg.AdminPassword,
		Production:    cfg.Production(),
	}); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}

	sessions := session.NewManager(store)
	handler := web.NewHandler(web.HandlerConfig{
		Identities: store,
		Sessions:   sessions,
		Objects:    objects.NewService(store),
		Gallery:    gallery.NewService(store),
		Production: cfg.Production(),
	})

	server, err := web.NewServer(web.Config{
		HTTPAddr: cfg.HTTPAddr,
		Handler:  handler,
		Sessions: sessions,
	})
	if err != nil {
		return fmt.Errorf("init server: %w", err)
	}

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
