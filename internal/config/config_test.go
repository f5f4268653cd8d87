// Copyright (c) 2026 Phil Davis <phildavis17@gmail.com>.
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestConfig writes contents to a temp weatherpls.yaml, points
// WEATHERPLS_CFG at it, and resets the global Config.
func setupTestConfig(t *testing.T, contents string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "weatherpls.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	t.Setenv("WEATHERPLS_CFG", path)

	Config = Type{}
	t.Cleanup(func() { Config = Type{} })
}

const sampleConfig = `
units: metric
location:
  lat: 40.8363
  long: -73.9358
cache:
  weather_ttl: 10
  geocode_ttl: 43200.0
enabled: true
`

func TestLoad(t *testing.T) {
	setupTestConfig(t, sampleConfig)

	cfg, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Source)
	assert.Equal(t, "metric", cfg.Data["units"])

	location, ok := cfg.Data["location"].(map[string]interface{})
	assert.True(t, ok, "location should be a map")
	assert.Equal(t, 40.8363, location["lat"])
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("WEATHERPLS_CFG", "/nonexistent/path/weatherpls.yaml")
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_PathIsDirectory(t *testing.T) {
	t.Setenv("WEATHERPLS_CFG", t.TempDir())
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "points to a directory")
}

func TestLoad_BadYAML(t *testing.T) {
	setupTestConfig(t, "units: [unclosed\n")

	_, err := Load()
	assert.Error(t, err)
}

func TestGetString(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue []string
		want         string
		wantErr      bool
	}{
		{
			name: "simple value",
			key:  "units",
			want: "metric",
		},
		{
			name:         "missing key with default",
			key:          "missing",
			defaultValue: []string{"imperial"},
			want:         "imperial",
		},
		{
			name:    "missing key without default",
			key:     "missing",
			wantErr: true,
		},
		{
			name:    "non-string value",
			key:     "cache.weather_ttl",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, sampleConfig)
			_, _ = Load()

			got, err := GetString(tt.key, tt.defaultValue...)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue []int
		want         int
		wantErr      bool
	}{
		{
			name: "int value",
			key:  "cache.weather_ttl",
			want: 10,
		},
		{
			name: "float value converted to int",
			key:  "cache.geocode_ttl",
			want: 43200,
		},
		{
			name:         "missing key with default",
			key:          "missing",
			defaultValue: []int{60},
			want:         60,
		},
		{
			name:    "missing key without default",
			key:     "missing",
			wantErr: true,
		},
		{
			name:    "non-int value",
			key:     "units",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, sampleConfig)
			_, _ = Load()

			got, err := GetInt(tt.key, tt.defaultValue...)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetFloat(t *testing.T) {
	setupTestConfig(t, sampleConfig)
	_, _ = Load()

	lat, err := GetFloat("location.lat")
	assert.NoError(t, err)
	assert.Equal(t, 40.8363, lat)

	// Whole-number YAML values still read as floats.
	ttl, err := GetFloat("cache.weather_ttl")
	assert.NoError(t, err)
	assert.Equal(t, 10.0, ttl)

	missing, err := GetFloat("no.such.key", -73.9358)
	assert.NoError(t, err)
	assert.Equal(t, -73.9358, missing)

	_, err = GetFloat("units")
	assert.Error(t, err)
}

func TestConfig_GetNestedPath(t *testing.T) {
	setupTestConfig(t, "level1:\n  level2:\n    level3:\n      value: deep-value\n")

	_, err := Load()
	require.NoError(t, err)

	val, err := Config.get("level1.level2.level3.value")
	assert.NoError(t, err)
	assert.Equal(t, "deep-value", val)
}

func TestConfig_LazyLoad(t *testing.T) {
	setupTestConfig(t, sampleConfig)

	// Don't explicitly call Load(); GetString should trigger it.
	val, err := GetString("units")
	assert.NoError(t, err)
	assert.Equal(t, "metric", val)
	assert.NotEmpty(t, Config.Source, "Config should be loaded")
}
