package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	StoragePath string `yaml:"storage_path"`
	ActorId     string `yaml:"actor_id"`
	DebounceMs  int    `yaml:"debounce_ms"`
	LogLevel    string `yaml:"log_level"`
	LogJSON     bool   `yaml:"log_json"`
}

// Debounce is the quiet period applied to filter input changes.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}

// Default returns the configuration used when no file is supplied:
// board data next to the process, the single-user actor identity and a
// 200ms filter debounce window.
func Default() *Config {
	return &Config{
		StoragePath: "helpboard.json",
		ActorId:     "me",
		DebounceMs:  200,
		LogLevel:    "info",
	}
}

// MustLoad reads a yaml config file, panicking on any problem. Fields
// absent from the file keep their defaults.
func MustLoad(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	cfg := Default()
	if err := yaml.Unmarshal(configFile, cfg); err != nil {
		panic("can't unmarshal config file")
	}
	return cfg
}
