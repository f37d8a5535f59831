package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/Guyuepp/social-feed/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := &cli.Command{
		Name:  "feed",
		Usage: "Social feed backend",
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server and the like worker",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					return runServer(ctx, cfg)
				},
			},
			{
				Name:  "migrate",
				Usage: "Create the like ledger tables",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					db, err := openDB(cfg.DSN(), cfg.DBMaxRetry)
					if err != nil {
						return fmt.Errorf("could not connect to database after retries: %w", err)
					}
					defer closeDB(db)
					return migrate(db)
				},
			},
		},
		DefaultCommand: "server",
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.SetupLogger(); err != nil {
		return nil, err
	}
	return cfg, nil
}
