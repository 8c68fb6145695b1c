package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFile  string  `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:"tictactoe.log"`
	Game     Game    `yaml:"game"`
	Players  Players `yaml:"players"`
}

type Game struct {
	Mode       string `yaml:"mode" env:"TICTACTOE_MODE" env-default:"pvai"`
	Difficulty string `yaml:"difficulty" env:"TICTACTOE_DIFFICULTY" env-default:"normal"`
	RandomSeed uint64 `yaml:"random-seed" env:"TICTACTOE_RANDOM_SEED" env-default:"0"`
}

type Players struct {
	X string `yaml:"x" env:"TICTACTOE_PLAYER_X" env-default:""`
	O string `yaml:"o" env:"TICTACTOE_PLAYER_O" env-default:""`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}
