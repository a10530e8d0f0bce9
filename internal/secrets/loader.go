// Package secrets resolves credentials such as the Gemini API key.
package secrets

import (
	"fmt"
	"os"
	"strings"
)

// Source lists the places a secret may come from, in precedence order:
// File, Value, Env.
type Source struct {
	// Name labels the secret in error messages.
	Name  string
	Value string
	File  string
	// Env is an environment variable name; .env entries end up there too.
	Env string
}

// Load resolves src to a trimmed, non-empty secret.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "secret"
	}

	if path := strings.TrimSpace(src.File); path != "" {
		return fromFile(name, path)
	}

	if secret := strings.TrimSpace(src.Value); secret != "" {
		return secret, nil
	}

	env := strings.TrimSpace(src.Env)
	if env == "" {
		return "", fmt.Errorf("%s is not configured", name)
	}
	if secret := strings.TrimSpace(os.Getenv(env)); secret != "" {
		return secret, nil
	}
	return "", fmt.Errorf("%s is not configured (set %s)", name, env)
}

func fromFile(name, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s from file %q: %w", name, path, err)
	}
	secret := strings.TrimSpace(string(data))
	if secret == "" {
		return "", fmt.Errorf("%s file %q is empty", name, path)
	}
	return secret, nil
}
