// Package config manages pick configuration settings.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
)

const (
	configDirName  = "pick"
	configFileName = "config.json"
	listsFileName  = "lists.yaml"

	DefaultHeight = 10
)

type Config struct {
	Match     string `json:"match,omitempty"`
	Height    int    `json:"height,omitempty"`
	Title     string `json:"title,omitempty"`
	AltScreen bool   `json:"alt_screen,omitempty"`
	ListsPath string `json:"lists_path,omitempty"`
}

// ListHeight returns the configured number of visible rows, or the default.
func (c Config) ListHeight() int {
	if c.Height <= 0 {
		return DefaultHeight
	}
	return c.Height
}

func GetConfigDir() (string, error) {
	return filepath.Join(xdg.ConfigHome, configDirName), nil
}

func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// GetListsPath returns the named list store for cfg, creating an empty one
// if missing.
func GetListsPath(cfg Config) (string, error) {
	path := strings.TrimSpace(cfg.ListsPath)
	if path == "" {
		dir, err := GetConfigDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(dir, listsFileName)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create lists dir: %w", err)
	}

	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("check lists file: %w", err)
		}
		if err := os.WriteFile(path, []byte("lists: []\n"), 0o644); err != nil {
			return "", fmt.Errorf("create lists file: %w", err)
		}
	}
	return path, nil
}

func LoadConfig() (Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return Config{}, err
	}
	return LoadConfigFrom(path)
}

// LoadConfigFrom reads the config at path. A missing file yields the zero Config.
func LoadConfigFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Keys lists the settings accepted by Set, in display order.
var Keys = []string{"match", "height", "title", "alt_screen", "lists_path"}

// Set assigns value to the setting named key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "match":
		c.Match = strings.ToLower(strings.TrimSpace(value))
	case "height":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid height %q: want a non-negative integer", value)
		}
		c.Height = n
	case "title":
		c.Title = value
	case "alt_screen":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid alt_screen %q: want true or false", value)
		}
		c.AltScreen = b
	case "lists_path":
		c.ListsPath = strings.TrimSpace(value)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

func SaveConfig(cfg Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	return SaveConfigTo(path, cfg)
}

// SaveConfigTo writes cfg as indented JSON to path.
func SaveConfigTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
