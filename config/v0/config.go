// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

// Package v0 provides the schema for v0 of the system config file for jsv
//
// v0 allows for breaking changes without a major version increase
package v0

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/invopop/jsonschema"
	"github.com/xeipuuv/gojsonschema"

	"github.com/defenseunicorns/jsv"
	"github.com/defenseunicorns/jsv/config"
)

// SchemaVersion is the current schema version for configs
const SchemaVersion = "v0"

// Config is the system configuration file for jsv
type Config struct {
	SchemaVersion string   `json:"schema-version"`
	Dir           string   `json:"dir,omitempty"`
	Extensions    []string `json:"extensions,omitempty"`
}

// versioned is the subset of a config read to dispatch on schema version
type versioned struct {
	SchemaVersion string `json:"schema-version"`
}

// JSONSchemaExtend extends the JSON schema for a config
func (Config) JSONSchemaExtend(schema *jsonschema.Schema) {
	if schemaVersion, ok := schema.Properties.Get("schema-version"); ok && schemaVersion != nil {
		schemaVersion.Description = "Config schema version"
		schemaVersion.Enum = []any{SchemaVersion}
	}

	if dir, ok := schema.Properties.Get("dir"); ok && dir != nil {
		dir.Description = "Directory searched for schema files (e.g. ./schemas )"
	}

	if extensions, ok := schema.Properties.Get("extensions"); ok && extensions != nil {
		extensions.Description = "File extensions discovered as schema files, each starting with a dot"
		if extensions.Items != nil {
			extensions.Items.Pattern = `^\.`
		}
	}
}

// DefaultConfig returns a valid config with every setting at its default
func DefaultConfig() *Config {
	return &Config{
		SchemaVersion: SchemaVersion,
		Dir:           jsv.DefaultDir,
		Extensions:    jsv.DefaultExtensions(),
	}
}

// LoadConfig loads and validates a configuration from the given reader
func LoadConfig(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var v versioned
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}

	switch version := v.SchemaVersion; version {
	case SchemaVersion:
		cfg := DefaultConfig()
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		return cfg, Validate(cfg)
	// when a v1 of the config is released, unmarshal v1 here and auto migrate v0 during loading
	default:
		return nil, fmt.Errorf("unsupported config schema version: expected %q, got %q", SchemaVersion, version)
	}
}

// LoadDefaultConfig loads the configuration from its default location
//
// If the configuration file does not exist, this function returns a default valid config
func LoadDefaultConfig() (*Config, error) {
	dir, err := config.DefaultDirectory()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(dir, config.DefaultFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	cfg, err := LoadConfig(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	return cfg, nil
}

// Since every validation operation leverages the same config schema, only calculate it once to save some compute cycles
//
// This also prevents any schema changes from occuring at runtime
var schemaOnce = sync.OnceValues(func() (string, error) {
	s := Schema()
	b, err := json.Marshal(s)
	return string(b), err
})

// Validate checks if a config adheres to the JSON schema
func Validate(config *Config) error {
	schema, err := schemaOnce()
	if err != nil {
		return err
	}

	schemaLoader := gojsonschema.NewStringLoader(schema)

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(config))
	if err != nil {
		return err
	}

	if result.Valid() {
		return nil
	}

	var resErr error
	for _, err := range result.Errors() {
		resErr = errors.Join(resErr, errors.New(err.String()))
	}

	return resErr
}

// Schema returns the JSON schema for the Config type
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{DoNotReference: true}
	return reflector.Reflect(&Config{})
}
