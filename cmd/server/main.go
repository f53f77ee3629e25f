package main

import (
	"context"
	"log"
	"os"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/logging"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/config"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel)

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		os.Exit(1)
	}
}
