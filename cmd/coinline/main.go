package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/JKGam3r/CoinsInALine/internal/config"
	"github.com/JKGam3r/CoinsInALine/internal/console"
	"github.com/JKGam3r/CoinsInALine/internal/logger"
	"github.com/JKGam3r/CoinsInALine/internal/metrics"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	logger.Info("coinline started", "seed", seed, "default_difficulty", cfg.DefaultDifficulty)

	session := console.NewSession(os.Stdin, os.Stdout, cfg, rng)
	if err := session.Run(); err != nil {
		logger.Fatal("session failed", "error", err)
	}

	if cfg.MetricsDump {
		if err := metrics.Dump(os.Stderr); err != nil {
			logger.Error("metrics dump failed", "error", err)
		}
	}
	logger.Info("coinline exited")
}
