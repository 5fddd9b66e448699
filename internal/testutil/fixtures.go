package testutil

import (
	"embed"

	"github.com/dimi-r1/create-fb-react/internal/config"
)

//go:embed fixtures/*
var fixturesFS embed.FS

// LoadFixture loads a fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// LoadConfigFixture loads and validates a TOML config fixture.
func LoadConfigFixture(name string) (*config.Config, error) {
	data, err := LoadFixture(name)
	if err != nil {
		return nil, err
	}
	return config.Parse(data, name)
}

// ValidConfig returns the valid config fixture.
func ValidConfig() (*config.Config, error) {
	return LoadConfigFixture("valid_config.toml")
}

// InvalidConfig returns the error from parsing the invalid config fixture.
func InvalidConfig() error {
	_, err := LoadConfigFixture("invalid_config.toml")
	return err
}

// TemplateManifest returns the template's package.json.
func TemplateManifest() []byte {
	data, err := LoadFixture("package.json")
	if err != nil {
		panic(err)
	}
	return data
}

// TemplateEnvExample returns the template's example environment file.
func TemplateEnvExample() []byte {
	data, err := LoadFixture("env.example")
	if err != nil {
		panic(err)
	}
	return data
}
