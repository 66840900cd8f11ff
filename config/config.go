package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"
)

type Config struct {
	LogLevel   string     `yaml:"log-level" env:"TRIQUI_LOG_LEVEL" env-default:"info"`
	Seed       uint64     `yaml:"seed" env:"TRIQUI_SEED" env-default:"0"`
	Play       Play       `yaml:"play"`
	Experiment Experiment `yaml:"experiment"`
}

type Play struct {
	Iterations   int  `yaml:"iterations" env:"TRIQUI_ITERATIONS" env-default:"1000"`
	Preset       bool `yaml:"preset" env:"TRIQUI_PRESET" env-default:"false"` // Use show-analysis and show-tree instead of asking
	ShowAnalysis bool `yaml:"show-analysis" env:"TRIQUI_SHOW_ANALYSIS" env-default:"false"`
	ShowTree     bool `yaml:"show-tree" env:"TRIQUI_SHOW_TREE" env-default:"false"`
	TreeDepth    int  `yaml:"tree-depth" env:"TRIQUI_TREE_DEPTH" env-default:"3"`
}

type Experiment struct {
	Name        string  `yaml:"name" env:"TRIQUI_EXPERIMENT" env-default:"strength"`
	Games       int     `yaml:"games" env:"TRIQUI_EXPERIMENT_GAMES" env-default:"30"`
	Iterations  int     `yaml:"iterations" env:"TRIQUI_EXPERIMENT_ITERATIONS" env-default:"1000"`
	Temperature float64 `yaml:"temperature" env:"TRIQUI_EXPERIMENT_TEMPERATURE" env-default:"0"`
	Dir         string  `yaml:"dir" env:"TRIQUI_EXPERIMENT_DIR" env-default:"results"`
}

// Load reads the YAML file at path, then the environment. An empty path, or
// a path that does not exist, leaves the defaults and environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, config); err != nil {
				return nil, fmt.Errorf("unable to load config file: %w", err)
			}
			return config, config.validate()
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("unable to stat config file: %w", err)
		}
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to load config from environment: %w", err)
	}
	return config, config.validate()
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Level parses LogLevel for zerolog
func (that *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(that.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func (that *Config) validate() error {
	if that.Play.Iterations <= 0 {
		return fmt.Errorf("play.iterations must be positive, got %d", that.Play.Iterations)
	}
	if that.Play.TreeDepth < 0 {
		return fmt.Errorf("play.tree-depth must not be negative, got %d", that.Play.TreeDepth)
	}
	if that.Experiment.Games < 0 || that.Experiment.Iterations <= 0 {
		return fmt.Errorf("experiment needs a non-negative game count and positive iterations")
	}
	if that.Experiment.Temperature < 0 {
		return fmt.Errorf("experiment.temperature must not be negative, got %v", that.Experiment.Temperature)
	}
	return nil
}
