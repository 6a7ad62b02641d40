/*
Copyright 2026 the DummyJSON API Tests Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DefaultBaseURL is the public DummyJSON service.
const DefaultBaseURL = "https://dummyjson.com"

var ErrMissingConfiguration = errors.New("missing required configuration")

type TestConfig struct {
	BaseURL            string        `envconfig:"API_BASE_URL" default:"https://dummyjson.com"`
	Username           string        `envconfig:"DUMMYJSON_USERNAME"`
	Password           string        `envconfig:"DUMMYJSON_PASSWORD"`
	TokenExpiryMinutes int           `envconfig:"TOKEN_EXPIRY_MINUTES" default:"60"`
	RequestTimeout     time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
	SkipIntegration    bool          `envconfig:"SKIP_INTEGRATION" default:"false"`
	ValidateSchema     bool          `envconfig:"VALIDATE_SCHEMA" default:"false"`
	LogRequests        bool          `envconfig:"LOG_REQUESTS" default:"false"`
	LogResponses       bool          `envconfig:"LOG_RESPONSES" default:"false"`
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if the credentials are missing, unless integration tests
// are being skipped, in which case nothing will ever use them.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{}
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}

	config.BaseURL = strings.TrimSuffix(config.BaseURL, "/")

	if config.SkipIntegration {
		return config, nil
	}

	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

func loadEnvFile() {
	envPaths := []string{
		"../../.env",    // From test/api directory
		"../../../.env", // From test/api/suites directory
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Load never overrides variables that are already set.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that all required configuration values are set.
func validateRequiredFields(config *TestConfig) error {
	var missing []string

	// Ordered so the error message is stable.
	required := []struct {
		name  string
		value string
	}{
		{"DUMMYJSON_USERNAME", config.Username},
		{"DUMMYJSON_PASSWORD", config.Password},
	}

	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s. Please set these environment variables or add them to a .env file", ErrMissingConfiguration, strings.Join(missing, ", "))
	}

	return nil
}
