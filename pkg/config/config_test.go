// Copyright 2024 The SafeCalc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, "0.0.0.0", cfg.API.Host)
	assert.Equal(t, 8080, cfg.API.Port)
	assert.Equal(t, "10,10", cfg.API.RateLimit)
	assert.False(t, cfg.Prometheus.Enabled)
	assert.False(t, IsEmpty(cfg))
}

func TestLoadConfig(t *testing.T) {
	path := writeTempConfig(t, `
api:
  host: "127.0.0.1"
  port: 9090
  timeout: 120
  rate_limit: "25,50"
prometheus:
  enabled: true
debug_level: 2
`)

	cfg, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.API.Host)
	assert.Equal(t, 9090, cfg.API.Port)
	assert.Equal(t, 120, cfg.API.Timeout)
	assert.Equal(t, "25,50", cfg.API.RateLimit)
	assert.True(t, cfg.Prometheus.Enabled)
	assert.Equal(t, 2, cfg.DebugLevel)
}

func TestLoadConfigKeepsDefaultsForMissingFields(t *testing.T) {
	path := writeTempConfig(t, `
api:
  port: 9999
`)

	cfg, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, 9999, cfg.API.Port)
	// Unset fields keep their defaults.
	assert.Equal(t, 60, cfg.API.Timeout)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	// Defaults are still returned so callers can degrade gracefully.
	assert.Equal(t, 8080, cfg.API.Port)
}

func TestLoadConfigEnvInterpolation(t *testing.T) {
	t.Setenv("SAFECALC_TEST_HOST", "calc.example.com")
	path := writeTempConfig(t, `
api:
  host: "${SAFECALC_TEST_HOST}"
  port: 8080
`)

	cfg, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "calc.example.com", cfg.API.Host)
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := writeTempConfig(t, "api: [not a mapping")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestParseRateLimit(t *testing.T) {
	tests := []struct {
		name string
		spec string
		rl   int
		bl   int
	}{
		{name: "both values", spec: "25,50", rl: 25, bl: 50},
		{name: "rate only", spec: "25", rl: 25, bl: 10},
		{name: "empty", spec: "", rl: 10, bl: 10},
		{name: "spaces", spec: " 5 , 7 ", rl: 5, bl: 7},
		{name: "garbage", spec: "a,b", rl: 10, bl: 10},
		{name: "zero rejected", spec: "0,0", rl: 10, bl: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl, bl := ParseRateLimit(tt.spec)
			assert.Equal(t, tt.rl, rl)
			assert.Equal(t, tt.bl, bl)
		})
	}
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(Config{}))
	assert.False(t, IsEmpty(NewConfig()))
}
