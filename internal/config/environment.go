// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment is a read-only snapshot of environment variables. A key that
// is present with an empty value is set; only an absent key is not set.
type Environment map[string]string

// Lookup returns the value of key and whether it is set.
func (e Environment) Lookup(key string) (string, bool) {
	value, ok := e[key]
	return value, ok
}

// ProcessEnvironment returns a snapshot of the current process environment.
func ProcessEnvironment() Environment {
	environ := os.Environ()
	env := make(Environment, len(environ))
	for _, kv := range environ {
		key, value, _ := strings.Cut(kv, "=")
		if key == "" {
			continue
		}
		env[key] = value
	}

	return env
}

// LoadEnvironment returns the process environment merged with the variables
// declared in the given dotenv files. Process variables always take
// precedence; between files, the first file declaring a key wins. Files that
// do not exist are skipped.
func LoadEnvironment(files ...string) (Environment, error) {
	env := ProcessEnvironment()

	for _, file := range files {
		fileEnv, err := readDotEnv(file)
		if err != nil {
			return nil, err
		}
		mergeMissing(env, fileEnv)
	}

	return env, nil
}

func readDotEnv(file string) (Environment, error) {
	values, err := godotenv.Read(file)
	if errors.Is(err, fs.ErrNotExist) {
		return Environment{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading env file %q: %w", file, err)
	}

	return values, nil
}

// mergeMissing copies into dst the keys of src that dst does not have.
func mergeMissing(dst, src Environment) {
	for key, value := range src {
		if _, ok := dst[key]; !ok {
			dst[key] = value
		}
	}
}

// Clone returns an independent copy of the snapshot.
func (e Environment) Clone() Environment {
	return maps.Clone(e)
}
