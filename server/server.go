package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"MediBook/config"
	"MediBook/config/db"
	"MediBook/config/redis"
	"MediBook/events"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

type Options struct {
	Config *config.Config

	CacheEnabled     bool
	MongoEnabled     bool
	WebServerEnabled bool
	WebServerPort    string

	JobsEnabled bool
	JobsHandler func(infra *Infra)

	WebServerPreHandler func(r *gin.Engine, infra *Infra)

	MigrationEnabled bool
	MigrationHandler func(infra *Infra) error
}

// Infra is what Start connected to. Database is nil when Mongo is disabled
// and Cache is a no-op when redis is disabled or unreachable.
type Infra struct {
	Config    *config.Config
	Database  *mongo.Database
	Cache     *redis.Cache
	Publisher events.Publisher
}

func GetDefaultOptions(cfg *config.Config) Options {
	return Options{
		Config:           cfg,
		CacheEnabled:     cfg.CacheEnabled,
		MongoEnabled:     cfg.MongoEnabled,
		WebServerEnabled: true,
		WebServerPort:    cfg.Port,
		JobsEnabled:      cfg.JobsEnabled,
		MigrationEnabled: cfg.MongoEnabled,
	}
}

/*
* Connect Mongo when enabled, it is required when asked for
* Connect redis when enabled, run without cache if it is unreachable
* Open the events publisher, fall back to dropping events on failure
 */
func Connect(ctx context.Context, opts Options) (*Infra, error) {
	cfg := opts.Config
	infra := &Infra{Config: cfg, Publisher: events.Nop{}}

	if opts.MongoEnabled {
		database, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		infra.Database = database
	} else {
		log.Warn().Msg("MONGO_ENABLED is false: data is kept in memory and lost on restart")
	}

	if opts.CacheEnabled {
		client, err := redis.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, running without cache")
		} else {
			infra.Cache = redis.NewCache(client, cfg.CacheTTL)
		}
	}

	publisher, err := events.NewPublisher(cfg)
	if err != nil {
		log.Warn().Err(err).Str("driver", cfg.EventsDriver).Msg("events publisher unavailable, events are dropped")
	} else {
		infra.Publisher = publisher
	}
	return infra, nil
}

func (i *Infra) Close(ctx context.Context) {
	if err := i.Publisher.Close(); err != nil {
		log.Warn().Err(err).Msg("closing events publisher")
	}
	if err := i.Cache.Close(); err != nil {
		log.Warn().Err(err).Msg("closing redis")
	}
	if i.Database != nil {
		if err := db.Disconnect(ctx); err != nil {
			log.Warn().Err(err).Msg("closing mongo")
		}
	}
}

// NewEngine builds the gin engine with the request middlewares every route
// shares.
func NewEngine(cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(RequestID(), AccessLog(), Recovery(), RequestTimeout(cfg.RequestTimeout))
	return r
}

/*
* Connect infrastructure and run migrations
* Start the jobs
* Serve HTTP until SIGINT or SIGTERM, then shut down gracefully
 */
func Start(opts Options) error {
	if opts.Config == nil {
		return errors.New("server: options carry no config")
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	infra, err := Connect(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		infra.Close(closeCtx)
	}()

	if opts.MigrationEnabled && opts.MigrationHandler != nil {
		if err := opts.MigrationHandler(infra); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}
	if opts.JobsEnabled && opts.JobsHandler != nil {
		opts.JobsHandler(infra)
	}
	if !opts.WebServerEnabled {
		return nil
	}

	r := NewEngine(opts.Config)
	if opts.WebServerPreHandler != nil {
		opts.WebServerPreHandler(r, infra)
	}

	srv := &http.Server{
		Addr:              ":" + opts.WebServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}
