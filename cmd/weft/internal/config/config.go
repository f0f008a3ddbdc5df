// Package config resolves project settings for the weft CLI from the
// optional weft.yaml and the project's go.mod.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// Config represents the optional weft.yaml configuration.
type Config struct {
	App AppConfig `yaml:"app"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
}

// LoadOptional reads weft.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "weft.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read weft.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse weft.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads weft.yaml (if present) and resolves defaults from the
// project's go.mod.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		AppName:    appName,
	}, nil
}

// modulePath reads the module path from dir's go.mod.
func modulePath(dir string) (string, error) {
	path := filepath.Join(dir, "go.mod")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod in %s: %w", dir, err)
	}

	file, err := modfile.Parse(path, data, nil)
	if err != nil {
		return "", fmt.Errorf("failed to parse go.mod: %w", err)
	}
	if file.Module == nil || file.Module.Mod.Path == "" {
		return "", fmt.Errorf("go.mod in %s declares no module path", dir)
	}
	if err := module.CheckPath(file.Module.Mod.Path); err != nil {
		return "", fmt.Errorf("invalid module path %q: %w", file.Module.Mod.Path, err)
	}
	return file.Module.Mod.Path, nil
}

// defaultAppName derives an app name from the module path, falling
// back to the directory name.
func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(modulePath)
	if base != "" && base != "." && base != "/" {
		return base
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "app"
	}
	return filepath.Base(abs)
}
