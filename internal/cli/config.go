package cli

import (
	"os"
	"strconv"
	"strings"

	"github.com/matzehuels/poetry-lock-package/pkg/builder"
	"github.com/matzehuels/poetry-lock-package/pkg/errors"
	"github.com/matzehuels/poetry-lock-package/pkg/lockpkg"
)

// Environment variables read by the CLI. A .env file in the working
// directory is loaded into the environment by main before they are read.
const (
	envPoetry   = "POETRY_LOCK_PACKAGE_POETRY"
	envMaxDepth = "POETRY_LOCK_PACKAGE_MAX_DEPTH"
)

// config holds settings that come from the environment rather than flags.
type config struct {
	Poetry   string // build tool executable
	MaxDepth int    // dependency walk bound
}

// loadConfig reads the environment, falling back to defaults for unset
// variables.
func loadConfig() (config, error) {
	cfg := config{
		Poetry:   builder.DefaultCommand,
		MaxDepth: lockpkg.DefaultMaxDepth,
	}
	if v := strings.TrimSpace(os.Getenv(envPoetry)); v != "" {
		cfg.Poetry = v
	}
	if v := strings.TrimSpace(os.Getenv(envMaxDepth)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return config{}, errors.New(errors.ErrCodeInvalidInput,
				"%s must be a positive integer, got %q", envMaxDepth, v)
		}
		cfg.MaxDepth = n
	}
	return cfg, nil
}
