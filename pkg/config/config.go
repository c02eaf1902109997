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
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

var envVarPattern = regexp.MustCompile(`\$\{?(\w+)\}?`)

// fileExists checks if a file exists at the given filename.
// It returns true if the file exists and is not a directory.
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// interpolateEnvVars replaces occurrences of `${VAR}` or `$VAR` in the input
// string with the value of the VAR environment variable.
func interpolateEnvVars(input string) string {
	return envVarPattern.ReplaceAllStringFunc(input, func(varName string) string {
		trimmedVarName := strings.TrimPrefix(varName, "$")
		trimmedVarName = strings.TrimPrefix(trimmedVarName, "{")
		trimmedVarName = strings.TrimSuffix(trimmedVarName, "}")
		return os.Getenv(trimmedVarName)
	})
}

// LoadConfig reads the configuration file, interpolates environment
// variables, and unmarshals it over the defaults, so fields missing from
// the file keep their default values.
func LoadConfig(confName string) (Config, error) {
	cfg := NewConfig()

	if !fileExists(confName) {
		return cfg, fmt.Errorf("file does not exist: %s", confName)
	}

	data, err := os.ReadFile(confName)
	if err != nil {
		return cfg, err
	}

	interpolated := interpolateEnvVars(string(data))
	if strings.TrimSpace(interpolated) == "" {
		return cfg, nil
	}

	if err := yaml.Unmarshal([]byte(interpolated), &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ParseRateLimit parses the "requests-per-second,burst" form of the
// api.rate_limit setting. Missing or malformed parts fall back to 10.
func ParseRateLimit(spec string) (rl, bl int) {
	rl, bl = 10, 10
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return rl, bl
	}
	parts := strings.SplitN(spec, ",", 2)
	if v, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil && v > 0 {
		rl = v
	}
	if len(parts) == 2 {
		if v, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil && v > 0 {
			bl = v
		}
	}
	return rl, bl
}
