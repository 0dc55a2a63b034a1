package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/echoip/echoip/app"
	"github.com/echoip/echoip/core/config"
	"github.com/echoip/echoip/core/logger"
	"github.com/echoip/echoip/core/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg app.Config
	config.MustLoad(&cfg) // panic on error

	var log = logger.New(logger.WithDevelopment(cfg.AppName))
	if cfg.Env == "production" {
		log = logger.New(logger.WithProduction(cfg.AppName))
	}

	r := app.NewRouter()

	s, err := server.NewFromConfig(cfg.Server, server.WithLogger(log.With(logger.Component("server"))))
	if err != nil {
		log.Error("Failed to create server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(s.Run(ctx, r.Dispatch))

	if err := eg.Wait(); err != nil {
		// A bind failure lands here: the only intentionally fatal error.
		log.Error("Failed to run server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	log.Info("Application stopped")
}
