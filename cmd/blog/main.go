package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/blogcli/internal/buildinfo"
	"github.com/dmitrijs2005/blogcli/internal/client/api"
	"github.com/dmitrijs2005/blogcli/internal/client/auth"
	"github.com/dmitrijs2005/blogcli/internal/client/blog"
	"github.com/dmitrijs2005/blogcli/internal/client/cli"
	"github.com/dmitrijs2005/blogcli/internal/client/config"
	"github.com/dmitrijs2005/blogcli/internal/client/session"
	"github.com/dmitrijs2005/blogcli/internal/logging"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
}

func run() error {
	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return err
	}

	ctx := context.Background()

	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	store, err := session.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error(ctx, "failed to close session store", "error", err)
		}
	}()

	gw := api.New(cfg.APIBaseURL, store, api.WithLogger(logger))
	authService := auth.NewService(gw, store, logger)
	defer authService.Close()

	app := cli.NewApp(authService, blog.NewService(gw), gw,
		cli.WithLogger(logger),
		cli.WithTokens(store),
	)

	authService.Bootstrap(ctx)
	app.Run(ctx)
	return nil
}
