// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// dotenvFile is read from the working directory when present.
const dotenvFile = ".env"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types, for example
// STORAGE_FILES_VAULT or APP_KDF.
//
// Variables from a .env file in the working directory fill in whatever the
// process environment does not set.
func parseEnv(cfg any) error {
	return parseEnvWithDotenv(cfg, dotenvFile)
}

func parseEnvWithDotenv(cfg any, path string) error {
	environment := env.ToMap(os.Environ())

	fileVars, err := godotenv.Read(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error reading %s: %w", path, err)
	}
	for k, v := range fileVars {
		if _, ok := environment[k]; !ok {
			environment[k] = v
		}
	}

	if err = env.ParseWithOptions(cfg, env.Options{Environment: environment}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
