// Package config contains the loader and strongly typed model for rpnctl.yaml.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/rpnkit/rpnctl/internal/env"
	"github.com/rpnkit/rpnctl/internal/postfix"
)

// Config represents the rpnctl.yaml configuration after template rendering.
// The file is optional; every field has a usable built-in default.
type Config struct {
	// Capacity bounds the operator stack of a single conversion.
	Capacity int `yaml:"capacity,omitempty"`
	// LogLevel sets the default log level (debug, info, warn, error).
	LogLevel string `yaml:"logLevel,omitempty"`
	// Echo toggles the INPUT/OUTPUT banner around convert results.
	Echo bool `yaml:"echo,omitempty"`
	// EnvFiles lists .env files loaded before template rendering.
	EnvFiles []string `yaml:"envFiles,omitempty"`
}

// Default returns the built-in configuration used when no file is present.
func Default() Config {
	return Config{
		Capacity: postfix.DefaultCapacity,
		LogLevel: "info",
	}
}

// rawHeader is a minimal struct used to extract the envFiles list before templating.
type rawHeader struct {
	EnvFiles []string `yaml:"envFiles"`
}

// Load reads path, renders its Go-template expressions against the merged
// environment (process env plus any envFiles), and parses the result into a
// Config. A missing file yields Default() without error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return Config{}, fmt.Errorf("resolve config path: %w", err)
	}

	rawBytes, err := os.ReadFile(absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %q: %w", absPath, err)
	}

	var header rawHeader
	if err := yaml.Unmarshal(rawBytes, &header); err != nil {
		return Config{}, fmt.Errorf("parse top-level config fields: %w", err)
	}

	baseDir := filepath.Dir(absPath)
	envFileVars, err := env.LoadEnvFiles(baseDir, header.EnvFiles)
	if err != nil {
		return Config{}, err
	}
	envMap := env.Merge(env.FromOS(), envFileVars)

	rendered, err := executeTemplate(rawBytes, envMap)
	if err != nil {
		return Config{}, err
	}

	if err := yaml.Unmarshal(rendered, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse rendered rpnctl.yaml: %w", err)
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = postfix.DefaultCapacity
	}
	if strings.TrimSpace(cfg.LogLevel) == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}

// executeTemplate renders the given YAML content with the environment helpers.
func executeTemplate(raw []byte, envMap env.Vars) ([]byte, error) {
	tmpl, err := template.New("rpnctl.yaml").Funcs(buildFuncMap(envMap)).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, nil); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	return buf.Bytes(), nil
}

// buildFuncMap constructs the set of template functions available in rpnctl.yaml.
func buildFuncMap(envMap env.Vars) template.FuncMap {
	return template.FuncMap{
		"default": funcDef,
		"envOr":   funcEnvOr(envMap),
		"toLower": strings.ToLower,
	}
}

// funcDef returns def when value is empty or whitespace, otherwise value.
func funcDef(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}

// funcEnvOr returns a function that looks up a key in envMap and falls back to def.
func funcEnvOr(envMap env.Vars) func(key, def string) string {
	return func(key, def string) string {
		if v, ok := envMap[key]; ok && v != "" {
			return v
		}
		return def
	}
}
