package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/gobblet/internal/entity"
)

const FirstTurnRandom = "random"

var (
	ErrUnknownLogLevel  = errors.New("unknown log level")
	ErrUnknownFirstTurn = errors.New("unknown first turn")
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"GOBBLET_LOG_LEVEL" env-default:"info"`
	FirstTurn string `yaml:"first-turn" env:"GOBBLET_FIRST_TURN" env-default:"random"`
	NoColors  bool   `yaml:"no-colors" env:"GOBBLET_NO_COLORS" env-default:"false"`
}

// MustLoad - load all configurations in config.yml file, or from the environment alone when the file is missing.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from environment: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}

	if that.FirstTurn != FirstTurnRandom {
		if _, err := entity.ParseColor(that.FirstTurn); err != nil {
			return fmt.Errorf("%w: %w", ErrUnknownFirstTurn, err)
		}
	}

	return nil
}

// FirstColor - resolves the color that opens the match. pick is only called for "random".
func (that *Config) FirstColor(pick func() entity.Color) entity.Color {
	if that.FirstTurn == FirstTurnRandom {
		return pick()
	}

	color, err := entity.ParseColor(that.FirstTurn)
	if err != nil {
		return pick()
	}

	return color
}
