// Package main runs the expedition simulation behind a line-oriented text host.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/frontier/internal/config"
	"github.com/cory-johannsen/frontier/internal/content"
	"github.com/cory-johannsen/frontier/internal/game"
	"github.com/cory-johannsen/frontier/internal/game/combat"
	"github.com/cory-johannsen/frontier/internal/game/dice"
	"github.com/cory-johannsen/frontier/internal/game/state"
	"github.com/cory-johannsen/frontier/internal/observability"
	"github.com/cory-johannsen/frontier/internal/save"
	"github.com/cory-johannsen/frontier/internal/storage/postgres"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	contentDir := flag.String("content", "", "override content.dir")
	slot := flag.String("slot", "", "override save.slot")
	fresh := flag.Bool("new", false, "start a new kingdom instead of loading the save slot")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *contentDir != "" {
		cfg.Content.Dir = *contentDir
	}
	if *slot != "" {
		cfg.Save.Slot = *slot
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	provider := content.LoadDir(ctx, cfg.Content.Dir, observability.Named(logger, "content"))

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal("opening save store", zap.Error(err))
	}
	defer closeStore()

	var src dice.Source = dice.NewCryptoSource()
	if cfg.Game.Seed != 0 {
		src = dice.NewSeededSource(cfg.Game.Seed)
	}

	g := game.New(provider, src, rulesFrom(cfg.Game), observability.Named(logger, "game"))
	if !*fresh {
		switch err := g.Load(ctx, store, cfg.Save.Slot); {
		case err == nil:
		case errors.Is(err, save.ErrNotFound):
			logger.Info("no save found, founding a new kingdom", zap.String("slot", cfg.Save.Slot))
		default:
			logger.Warn("save could not be loaded, founding a new kingdom", zap.Error(err))
		}
	}

	logger.Info("frontier ready",
		zap.String("save_backend", cfg.Save.Backend),
		zap.String("slot", cfg.Save.Slot),
		zap.Duration("startup", time.Since(start)),
	)

	h := &host{game: g, store: store, slot: cfg.Save.Slot, out: os.Stdout, logger: logger}
	if err := h.run(ctx, bufio.NewScanner(os.Stdin)); err != nil {
		logger.Fatal("host loop", zap.Error(err))
	}
}

func rulesFrom(g config.GameConfig) state.Rules {
	return state.Rules{
		Combat: combat.Rules{
			MaxEnergy:     g.MaxEnergy,
			HandSize:      g.HandSize,
			AmbientStress: g.CombatStress,
		},
		PartySize:   g.MaxPartySize,
		RecruitPool: g.RecruitPool,
	}
}

// openStore selects the save backend. The returned func releases it.
func openStore(ctx context.Context, cfg config.Config) (save.Store, func(), error) {
	switch cfg.Save.Backend {
	case config.SaveBackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		if err := pool.Ready(ctx, 5*time.Second); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("save database not ready: %w", err)
		}
		return pool.Saves(), pool.Close, nil
	default:
		fs, err := save.NewFileStore(cfg.Save.Dir)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {}, nil
	}
}
