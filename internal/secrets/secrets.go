// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API keys from a directory of plain-text files and
// from a dotenv file. In the directory each file is one secret: the filename
// is the key name and the trimmed contents are the value.
//
// Supported key files: openai-api-key.
package secrets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// OpenAIKeyFile is the secrets-directory file holding the LLM key.
	OpenAIKeyFile = "openai-api-key"
	// OpenAIKeyEnv is the environment (and .env) variable holding the LLM key.
	OpenAIKeyEnv = "OPENAI_API_KEY"
)

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory or missing files are not errors; Load returns an empty map.
// Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		name := entry.Name()

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[name] = value
		}
	}
	return secrets, nil
}

// LoadDotEnv parses a dotenv file without touching the process environment.
// A missing file yields an empty map.
func LoadDotEnv(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return vars, nil
}

// OpenAIKey resolves the LLM key: the process environment first, then the
// dotenv file, then the secrets directory. It returns "" when none is set.
func OpenAIKey(dir, envFile string) (string, error) {
	if v := strings.TrimSpace(os.Getenv(OpenAIKeyEnv)); v != "" {
		return v, nil
	}
	vars, err := LoadDotEnv(envFile)
	if err != nil {
		return "", err
	}
	if v := strings.TrimSpace(vars[OpenAIKeyEnv]); v != "" {
		return v, nil
	}
	files, err := Load(dir)
	if err != nil {
		return "", err
	}
	return files[OpenAIKeyFile], nil
}
