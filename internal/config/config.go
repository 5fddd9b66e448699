package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	shellquote "github.com/kballard/go-shellquote"
	"gopkg.in/yaml.v3"
)

const (
	AppName     = "create-blaze-app"
	DisplayName = "🔥 Create Blaze App"
	Version     = "1.0.0"

	DefaultTemplateRepo   = "https://github.com/dimi-r1/react-firebase-boilerplate.git"
	DefaultProjectName    = "my-react-firebase-app"
	DefaultGit            = "git"
	DefaultInstallCommand = "npm install"
	DefaultCommitMessage  = "Initial commit from " + AppName
	DefaultManifestFile   = "package.json"
	DefaultEnvExample     = ".env.example"
	DefaultEnvLocal       = ".env.local"

	// DefaultTemplate is the value of --template when the flag is omitted.
	DefaultTemplate = "default"

	BoilerplateRepository = "https://github.com/dimi-r1/react-firebase-boilerplate"
	CLIRepository         = "https://github.com/dimi-r1/create-fb-react"
)

// Config holds the settings the setup steps run with.
// Every field has a built-in default; a TOML or YAML file may override any of them.
type Config struct {
	TemplateRepo   string `toml:"template_repo" yaml:"template_repo"`
	Git            string `toml:"git" yaml:"git"`
	InstallCommand string `toml:"install_command" yaml:"install_command"`
	CommitMessage  string `toml:"commit_message" yaml:"commit_message"`
	ManifestFile   string `toml:"manifest_file" yaml:"manifest_file"`
	EnvExample     string `toml:"env_example" yaml:"env_example"`
	EnvLocal       string `toml:"env_local" yaml:"env_local"`
	DefaultName    string `toml:"default_name" yaml:"default_name"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		TemplateRepo:   DefaultTemplateRepo,
		Git:            DefaultGit,
		InstallCommand: DefaultInstallCommand,
		CommitMessage:  DefaultCommitMessage,
		ManifestFile:   DefaultManifestFile,
		EnvExample:     DefaultEnvExample,
		EnvLocal:       DefaultEnvLocal,
		DefaultName:    DefaultProjectName,
	}
}

// Load reads a config file on top of the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes config data on top of the defaults. source names the data in
// errors; a .yaml or .yml extension selects YAML, anything else TOML.
func Parse(data []byte, source string) (*Config, error) {
	cfg := Default()

	decode := decodeTOML
	switch strings.ToLower(filepath.Ext(source)) {
	case ".yaml", ".yml":
		decode = decodeYAML
	}

	if err := decode(data, cfg, source); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", source, err)
	}

	return cfg, nil
}

func decodeTOML(data []byte, cfg *Config, source string) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config %s: %w", source, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown keys in config %s: %s", source, strings.Join(keys, ", "))
	}
	return nil
}

func decodeYAML(data []byte, cfg *Config, source string) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	// An empty document leaves the defaults alone.
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		if strings.Contains(err.Error(), "not found in type") {
			return fmt.Errorf("unknown keys in config %s: %w", source, err)
		}
		return fmt.Errorf("failed to parse config %s: %w", source, err)
	}
	return nil
}

// Validate checks that the Config is usable.
func (c *Config) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"template_repo", c.TemplateRepo},
		{"git", c.Git},
		{"install_command", c.InstallCommand},
		{"commit_message", c.CommitMessage},
		{"manifest_file", c.ManifestFile},
		{"env_example", c.EnvExample},
		{"env_local", c.EnvLocal},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%s is required", r.key)
		}
	}

	if _, err := c.InstallArgs(); err != nil {
		return err
	}

	// These are joined onto the project directory and must stay inside it.
	for key, name := range map[string]string{
		"manifest_file": c.ManifestFile,
		"env_example":   c.EnvExample,
		"env_local":     c.EnvLocal,
	} {
		if !filepath.IsLocal(name) {
			return fmt.Errorf("%s must be a path inside the project, got %q", key, name)
		}
	}

	return nil
}

// InstallArgs splits InstallCommand into a program and its arguments.
func (c *Config) InstallArgs() ([]string, error) {
	words, err := shellquote.Split(c.InstallCommand)
	if err != nil {
		return nil, fmt.Errorf("invalid install_command %q: %w", c.InstallCommand, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("install_command is required")
	}
	return words, nil
}
