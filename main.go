package main

import (
	"os"
	"sync"

	"MediBook/config"
	"MediBook/jobs"
	"MediBook/migrations"
	"MediBook/routes"
	"MediBook/server"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	startServer = server.Start
	isTest      = false
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

func run(args []string) error {
	root := newRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

/*
* Build the server options from config
* Migrations and jobs share the services the routes use
 */
func serve(cfg *config.Config) error {
	var (
		once sync.Once
		app  *application
	)
	appFor := func(infra *server.Infra) *application {
		once.Do(func() { app = newApplication(infra) })
		return app
	}

	defaultopts := server.GetDefaultOptions(cfg)

	options := server.Options{
		Config:           cfg,
		CacheEnabled:     defaultopts.CacheEnabled,
		MongoEnabled:     defaultopts.MongoEnabled,
		WebServerEnabled: defaultopts.WebServerEnabled,
		WebServerPort:    defaultopts.WebServerPort,

		JobsEnabled: defaultopts.JobsEnabled && !isTest,
		JobsHandler: func(infra *server.Infra) {
			if _, err := jobs.StartDailyScheduler(appFor(infra).bookings); err != nil {
				log.Error().Err(err).Msg("daily scheduler not started")
			}
		},

		WebServerPreHandler: func(r *gin.Engine, infra *server.Infra) {
			r.Use(cors.New(corsConfig(cfg.CORSOrigins)))
			a := appFor(infra)
			routes.Routes(r, a.controller, a.guards)
		},

		MigrationEnabled: defaultopts.MigrationEnabled,
		MigrationHandler: func(infra *server.Infra) error {
			if infra.Database == nil {
				return nil
			}
			ctx, cancel := migrationContext()
			defer cancel()
			return migrations.Run(ctx, infra.Database)
		},
	}
	return startServer(options)
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", server.RequestIDHeader},
		ExposeHeaders: []string{server.RequestIDHeader},
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}
