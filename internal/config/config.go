// Package config loads process configuration from the environment.
package config

import (
	"errors"

	"github.com/spf13/viper"

	"github.com/recondesk/lookup-bot/internal/lookup"
)

const defaultLookupBaseURL = "https://api.b77bf911.workers.dev"

// ErrMissingToken is returned when BOT_TOKEN is absent. The process must not
// start without it.
var ErrMissingToken = errors.New("BOT_TOKEN is not set")

type Config struct {
	BotToken  string
	Port      int
	LogLevel  string
	LogFormat string
	Lookup    lookup.Config
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", 10000)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOOKUP_BASE_URL", defaultLookupBaseURL)

	token := v.GetString("BOT_TOKEN")
	if token == "" {
		return nil, ErrMissingToken
	}

	return &Config{
		BotToken:  token,
		Port:      v.GetInt("PORT"),
		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),
		Lookup:    lookup.Config{BaseURL: v.GetString("LOOKUP_BASE_URL")},
	}, nil
}
