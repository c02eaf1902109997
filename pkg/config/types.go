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

// Package config contains the configuration file parsing logic.
package config

// APIConfig holds the settings of the HTTP API daemon.
type APIConfig struct {
	Host              string `yaml:"host"`               // interface to bind to
	Port              int    `yaml:"port"`               // port to listen on
	Timeout           int    `yaml:"timeout"`            // idle timeout, seconds
	ReadTimeout       int    `yaml:"read_timeout"`       // seconds
	ReadHeaderTimeout int    `yaml:"readheader_timeout"` // seconds
	WriteTimeout      int    `yaml:"write_timeout"`      // seconds
	RateLimit         string `yaml:"rate_limit"`         // "requests-per-second,burst"
	SSLMode           string `yaml:"sslmode"`            // "enable" to serve TLS
	CertFile          string `yaml:"cert_file"`
	KeyFile           string `yaml:"key_file"`
}

// PrometheusConfig controls the /metrics endpoint.
type PrometheusConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Config represents the structure of the configuration file.
type Config struct {
	API        APIConfig        `yaml:"api"`
	Prometheus PrometheusConfig `yaml:"prometheus"`
	DebugLevel int              `yaml:"debug_level"`
}

// NewConfig returns a Config filled with default values.
func NewConfig() Config {
	return Config{
		API: APIConfig{
			Host:              "0.0.0.0",
			Port:              8080,
			Timeout:           60,
			ReadTimeout:       30,
			ReadHeaderTimeout: 15,
			WriteTimeout:      30,
			RateLimit:         "10,10",
		},
		Prometheus: PrometheusConfig{
			Enabled: false,
		},
		DebugLevel: 0,
	}
}

// IsEmpty reports whether a Config carries no usable API settings.
func IsEmpty(c Config) bool {
	return c.API == APIConfig{}
}
