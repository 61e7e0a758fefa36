package main

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/house-holder/shopkeeper/internal/adapters/repl"
	"github.com/house-holder/shopkeeper/internal/config"
	"github.com/house-holder/shopkeeper/internal/core"
	"github.com/house-holder/shopkeeper/internal/seed"
)

func main() {
	app := &cli.App{
		Name:  "shopkeeper",
		Usage: "single-operator inventory and order-taking tool",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "seed",
				Usage: "path to a JSON stock seed `FILE` (overrides SHOPKEEPER_SEED_FILE)",
			},
		},
		Action: runSession,
		Commands: []*cli.Command{
			{
				Name:   "stock",
				Usage:  "print the stocked inventory and exit",
				Action: runStock,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("shopkeeper")
	}
}

func runSession(c *cli.Context) error {
	store, log, err := bootstrap(c)
	if err != nil {
		return err
	}
	log.Info("session started")
	return repl.New(store, os.Stdin, os.Stdout, os.Stderr, log).Run()
}

func runStock(c *cli.Context) error {
	store, _, err := bootstrap(c)
	if err != nil {
		return err
	}
	repl.PrintInventory(os.Stdout, store)
	return nil
}

// bootstrap loads config, wires logging and returns a freshly seeded store.
func bootstrap(c *cli.Context) (*core.Store, *logrus.Entry, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	if err := setupLogging(cfg); err != nil {
		return nil, nil, err
	}
	log := logrus.WithField("session_id", uuid.NewString())

	seedPath := cfg.SeedFile
	if c.String("seed") != "" {
		seedPath = c.String("seed")
	}

	items, err := seed.Load(seedPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, nil, err
		}
		log.WithField("path", seedPath).Warn("seed file not found, using default stock")
		items = seed.Default()
	}

	store := core.NewStore()
	seed.Apply(store, items)
	log.WithField("items", store.InventoryLen()).Info("stock seeded")
	return store, log, nil
}

func setupLogging(cfg *config.Config) error {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	if cfg.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	var out io.Writer = os.Stderr
	if cfg.LogFile != "" {
		file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return err
		}
		out = file
	}
	logrus.SetOutput(out)
	return nil
}
