package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel    string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	Mode        int    `yaml:"mode" env:"TICTACTOE_MODE" env-default:"0" validate:"oneof=0 1 2"`
	ClearScreen bool   `yaml:"clear-screen" env:"TICTACTOE_CLEAR_SCREEN" env-default:"false"`
	Marks       Marks  `yaml:"marks"`
}

// Marks are the symbols drawn for each side.
type Marks struct {
	A string `yaml:"a" env:"TICTACTOE_MARK_A" env-default:"X" validate:"required,len=1,printascii,excludes= ,nefield=B"`
	B string `yaml:"b" env:"TICTACTOE_MARK_B" env-default:"O" validate:"required,len=1,printascii,excludes= "`
}

// Load reads the YAML file at path when it exists, otherwise only the environment.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if _, statErr := os.Stat(path); statErr == nil {
		err = cleanenv.ReadConfig(path, config)
	} else if errors.Is(statErr, os.ErrNotExist) {
		err = cleanenv.ReadEnv(config)
	} else {
		err = statErr
	}

	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err = validator.New(validator.WithRequiredStructEnabled()).Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
