package config

import (
	"fmt"
	"os"
	"sleeper-history/internal/constants"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	LeagueID       string
	StartSeason    int
	SleeperBaseURL string
	SleeperRPS     float64
	SleeperRetries int
	RetryDelay     time.Duration
	MaxWeeks       int
	ServerPort     string
	LogLevel       string
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		LeagueID:       getEnv("SLEEPER_LEAGUE_ID", ""),
		SleeperBaseURL: getEnv("SLEEPER_BASE_URL", constants.DefaultSleeperBaseURL),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		RetryDelay:     constants.DefaultRetryDelay,
	}

	if cfg.LeagueID == "" {
		return nil, fmt.Errorf("SLEEPER_LEAGUE_ID is required")
	}

	var err error
	if cfg.StartSeason, err = getEnvInt("START_SEASON", constants.DefaultStartSeason); err != nil {
		return nil, err
	}
	if cfg.SleeperRetries, err = getEnvInt("SLEEPER_RETRIES", constants.DefaultRetries); err != nil {
		return nil, err
	}
	if cfg.MaxWeeks, err = getEnvInt("MAX_WEEKS", constants.MaxWeeksPerSeason); err != nil {
		return nil, err
	}
	if cfg.MaxWeeks < 1 {
		return nil, fmt.Errorf("MAX_WEEKS must be at least 1, got %d", cfg.MaxWeeks)
	}

	rps := getEnv("SLEEPER_RPS", "")
	cfg.SleeperRPS = constants.DefaultRequestsPerSecond
	if rps != "" {
		if cfg.SleeperRPS, err = strconv.ParseFloat(rps, 64); err != nil {
			return nil, fmt.Errorf("invalid SLEEPER_RPS %q: %w", rps, err)
		}
	}

	logger.Info().
		Str("league_id", cfg.LeagueID).
		Int("start_season", cfg.StartSeason).
		Str("sleeper_base_url", cfg.SleeperBaseURL).
		Float64("sleeper_rps", cfg.SleeperRPS).
		Int("sleeper_retries", cfg.SleeperRetries).
		Int("max_weeks", cfg.MaxWeeks).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

var Module = fx.Provide(Load)
