// Package config reads the game's settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joeshaw/envdecode"
	"github.com/minaorangina/jest/game"
)

// Config holds everything needed to set up a game
type Config struct {
	Players       PlayerList `env:"JEST_PLAYERS,default=You:human;Ada:cautious;Bob:random" validate:"min=3,max=4,unique=Name,dive"`
	Rules         string     `env:"JEST_RULES,default=A" validate:"oneof=A B C a b c"`
	ExtendedCards bool       `env:"JEST_EXTENDED_CARDS,default=false"`
	BonusMalus    bool       `env:"JEST_BONUS_MALUS,default=false"`
	LogLevel      string     `env:"JEST_LOG_LEVEL,default=info" validate:"oneof=debug info warn error"`
	SaveDir       string     `env:"JEST_SAVE_DIR"`
	LoadID        string     `env:"JEST_LOAD_ID" validate:"excluded_without=SaveDir"`
	FeedAddr      string     `env:"JEST_FEED_ADDR,default=:8000" validate:"required"`
}

// PlayerSpec names a player and the kind of decision source playing for them
type PlayerSpec struct {
	Name string `validate:"required"`
	Kind string `validate:"oneof=human cautious random"`
}

// PlayerList is read from a semicolon separated list of name:kind pairs
type PlayerList []PlayerSpec

// Decode implements envdecode.Decoder
func (l *PlayerList) Decode(value string) error {
	specs := PlayerList{}
	for _, entry := range strings.Split(value, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		name, kind, ok := strings.Cut(entry, ":")
		if !ok {
			return fmt.Errorf("player %q should be written name:kind", entry)
		}
		specs = append(specs, PlayerSpec{
			Name: strings.TrimSpace(name),
			Kind: strings.ToLower(strings.TrimSpace(kind)),
		})
	}

	*l = specs
	return nil
}

// Variant is the rule variant to play
func (c *Config) Variant() game.Variant {
	v, err := game.ParseVariant(c.Rules)
	if err != nil {
		return game.VariantA
	}
	return v
}

// Load reads and validates the configuration
func Load() (*Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("could not read configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
