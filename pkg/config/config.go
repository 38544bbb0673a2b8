// Package config provides environment-based configuration for the cli
// application.
//
// Configuration values are read from the process environment, optionally
// seeded from a .env file in the working directory. Command-line flags
// defined in the cmd package may override any value loaded here.
package config

import (
	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds the application configuration sourced from the environment.
type Config struct {
	// Name is the default name to greet, overridable with the --name flag.
	Name string `env:"GREETER_NAME"`
}

// GetEnvVars loads configuration from a .env file (when present) and the
// process environment. A missing .env file is not an error; a malformed
// environment is fatal since the application cannot proceed without a
// coherent configuration.
func GetEnvVars() Config {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using environment variables only")
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("Failed to parse environment variables: %v", err)
	}
	return cfg
}
