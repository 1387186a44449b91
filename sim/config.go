package sim

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

const DefaultDBPath = "./tmp/joydrive.db"

// Config has the simulator settings. Values come from the defaults, then the optional
// YAML file, then environment variables
type Config struct {
	// DBPath is the storm database holding the simulated EEPROM
	DBPath string `yaml:"db_path" env:"JOYDRIVE_DB"`
	// Memory uses a throwaway in-memory EEPROM instead of DBPath
	Memory  bool `yaml:"memory" env:"JOYDRIVE_MEMORY"`
	Verbose bool `yaml:"verbose" env:"JOYDRIVE_VERBOSE"`

	// Initial input line levels
	EstopIn  bool `yaml:"estop_in" env:"JOYDRIVE_ESTOP_IN"`
	SelectIn bool `yaml:"select_in" env:"JOYDRIVE_SELECT_IN"`
}

// DefaultConfig returns the config used before the file and environment are applied
func DefaultConfig() Config {
	return Config{
		DBPath: DefaultDBPath,
	}
}

// LoadConfig reads the YAML file at path, if path is not empty, and applies environment overrides
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}

		err = yaml.Unmarshal(data, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	err := env.Parse(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("error parsing environment: %w", err)
	}

	if cfg.DBPath == "" && !cfg.Memory {
		return Config{}, errors.New("db_path is required unless memory is set")
	}

	return cfg, nil
}
