// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package v0

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/defenseunicorns/jsv"
	"github.com/defenseunicorns/jsv/config"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		expectErr string
	}{
		{
			name: "valid config",
			content: `schema-version: v0
dir: ./api/schemas
extensions:
  - .json
  - .yaml`,
		},
		{
			name:    "empty config uses defaults",
			content: `schema-version: v0`,
		},
		{
			name:      "invalid yaml",
			content:   `invalid: yaml: content`,
			expectErr: "mapping value is not allowed in this context",
		},
		{
			name: "unsupported schema version",
			content: `schema-version: v999
dir: ./schemas`,
			expectErr: `unsupported config schema version: expected "v0", got "v999"`,
		},
		{
			name: "invalid structure",
			content: `schema-version: v0
extensions: "should-be-list"`,
			expectErr: "failed to parse config file",
		},
		{
			name: "validation error",
			content: `schema-version: v0
extensions:
  - json`,
			expectErr: "Does not match pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(strings.NewReader(tt.content))

			if tt.expectErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.expectErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, SchemaVersion, cfg.SchemaVersion)
			assert.NotEmpty(t, cfg.Dir)
			assert.NotEmpty(t, cfg.Extensions)
		})
	}

	t.Run("config settings override defaults", func(t *testing.T) {
		cfg, err := LoadConfig(strings.NewReader(`schema-version: v0
dir: ./api/schemas
extensions: [".yaml", ".yml"]`))
		require.NoError(t, err)
		assert.Equal(t, "./api/schemas", cfg.Dir)
		assert.Equal(t, []string{".yaml", ".yml"}, cfg.Extensions)

		cfg, err = LoadConfig(strings.NewReader(`schema-version: v0`))
		require.NoError(t, err)
		assert.Equal(t, jsv.DefaultDir, cfg.Dir)
		assert.Equal(t, jsv.DefaultExtensions(), cfg.Extensions)
	})

	t.Run("reader edge cases", func(t *testing.T) {
		content := `schema-version: v0
dir: ./schemas`

		cfg, err := LoadConfig(iotest.OneByteReader(strings.NewReader(content)))
		require.NoError(t, err)
		assert.Equal(t, "./schemas", cfg.Dir)

		cfg, err = LoadConfig(iotest.HalfReader(strings.NewReader(content)))
		require.NoError(t, err)
		assert.Equal(t, "./schemas", cfg.Dir)

		_, err = LoadConfig(iotest.ErrReader(assert.AnError))
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to read config file")
	})
}

func TestLoadDefaultConfig(t *testing.T) {
	setupTempHome := func(t *testing.T, configContent string) string {
		tmpDir := t.TempDir()
		configDir := filepath.Join(tmpDir, ".jsv")
		require.NoError(t, os.MkdirAll(configDir, 0o755))

		if configContent != "" {
			configPath := filepath.Join(configDir, config.DefaultFileName)
			require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))
		}

		originalHome := os.Getenv("HOME")
		os.Setenv("HOME", tmpDir)
		t.Cleanup(func() { os.Setenv("HOME", originalHome) })

		return tmpDir
	}

	t.Run("no config file returns defaults", func(t *testing.T) {
		setupTempHome(t, "")

		cfg, err := LoadDefaultConfig()
		require.NoError(t, err)
		assert.Equal(t, jsv.DefaultDir, cfg.Dir)
		assert.Equal(t, jsv.DefaultExtensions(), cfg.Extensions)
	})

	t.Run("valid config file loads correctly", func(t *testing.T) {
		content := `schema-version: v0
dir: ./api/schemas`
		setupTempHome(t, content)

		cfg, err := LoadDefaultConfig()
		require.NoError(t, err)
		assert.Equal(t, "./api/schemas", cfg.Dir)
	})

	t.Run("invalid config file returns error", func(t *testing.T) {
		setupTempHome(t, `schema-version: v999`)

		_, err := LoadDefaultConfig()
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to load config file")
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		config      *Config
		expectedErr string
	}{
		{
			name:   "valid config",
			config: DefaultConfig(),
		},
		{
			name: "valid config with overrides",
			config: &Config{
				SchemaVersion: SchemaVersion,
				Dir:           "./api/schemas",
				Extensions:    []string{".json", ".yaml", ".yml"},
			},
		},
		{
			name: "invalid schema version",
			config: &Config{
				SchemaVersion: "v999",
			},
			expectedErr: "schema-version",
		},
		{
			name: "extension missing leading dot",
			config: &Config{
				SchemaVersion: SchemaVersion,
				Extensions:    []string{"json"},
			},
			expectedErr: "Does not match pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(tt.config)
			if tt.expectedErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
