package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Server holds settings for the SSH table server. Values come from the
// environment; command-line flags override them.
type Server struct {
	Port     int    `env:"SOLITAIRE_PORT" envDefault:"2222"`
	HostKey  string `env:"SOLITAIRE_HOST_KEY" envDefault:"server_host_key"`
	Layout   string `env:"SOLITAIRE_LAYOUT"`
	LogLevel string `env:"SOLITAIRE_LOG_LEVEL" envDefault:"info"`
	Seed     int64  `env:"SOLITAIRE_SEED"`
}

// LoadServer reads Server settings from the environment.
func LoadServer() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// SlogLevel maps LogLevel onto a slog level. Unknown names mean info.
func (s Server) SlogLevel() slog.Level {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
