package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	envScale    = "CHASER_SCALE"
	envLogLevel = "CHASER_LOG_LEVEL"
	envSeed     = "CHASER_SEED"
	envTitle    = "CHASER_TITLE"
)

// Config holds the settings that do not change how the game plays.
type Config struct {
	Scale    float64   // window scale handed to ebiten
	LogLevel log.Level // logrus level
	Seed     int64     // seed for the adversaries' random source
	Title    string    // window title
}

// Load reads an optional .env file and then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debugf(".env file not found or could not be loaded: %v", err)
	}
	return fromEnv(os.LookupEnv, time.Now)
}

func fromEnv(lookup func(string) (string, bool), now func() time.Time) (Config, error) {
	cfg := Config{
		Scale:    1,
		LogLevel: log.InfoLevel,
		Seed:     now().UnixNano(),
		Title:    "Chaser",
	}

	if v, ok := lookup(envScale); ok {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", envScale, err)
		}
		if scale <= 0 {
			return cfg, fmt.Errorf("%s must be positive, got %v", envScale, scale)
		}
		cfg.Scale = scale
	}
	if v, ok := lookup(envLogLevel); ok {
		level, err := log.ParseLevel(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", envLogLevel, err)
		}
		cfg.LogLevel = level
	}
	if v, ok := lookup(envSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", envSeed, err)
		}
		cfg.Seed = seed
	}
	if v, ok := lookup(envTitle); ok && v != "" {
		cfg.Title = v
	}
	return cfg, nil
}
