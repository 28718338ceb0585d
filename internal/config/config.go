// Package config reads the DirectAdmin connection settings for dactl from the
// environment, optionally preloaded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	client "github.com/peteraglen/directadmin-go-client"
)

const (
	EnvUsername     = "DIRECTADMIN_USERNAME"
	EnvPassword     = "DIRECTADMIN_PASSWORD"
	EnvHost         = "DIRECTADMIN_HOST"
	EnvPort         = "DIRECTADMIN_PORT"
	EnvSSL          = "DIRECTADMIN_SSL"
	EnvFailureEmail = "DIRECTADMIN_FAILURE_EMAIL"

	defaultEnvFile = ".env"
)

// Load returns the client configuration found in the environment. Variables
// from envFile are added first without overriding ones already set. An empty
// envFile means ".env" if it exists.
//
// Absent values are left empty; client.New reports them.
func Load(envFile string) (client.Config, error) {
	if err := loadEnvFile(envFile); err != nil {
		return client.Config{}, err
	}

	cfg := client.Config{
		Username:     os.Getenv(EnvUsername),
		Password:     os.Getenv(EnvPassword),
		Host:         strings.TrimSpace(os.Getenv(EnvHost)),
		FailureEmail: strings.TrimSpace(os.Getenv(EnvFailureEmail)),
	}

	if value := strings.TrimSpace(os.Getenv(EnvPort)); value != "" {
		port, err := strconv.Atoi(value)
		if err != nil || port < 1 || port > 65535 {
			return client.Config{}, fmt.Errorf("invalid %s %q: must be a port number", EnvPort, value)
		}
		cfg.Port = port
	}

	if value := strings.TrimSpace(os.Getenv(EnvSSL)); value != "" {
		ssl, err := strconv.ParseBool(value)
		if err != nil {
			return client.Config{}, fmt.Errorf("invalid %s %q: %w", EnvSSL, value, err)
		}
		cfg.UseSSL = ssl
	}

	return cfg, nil
}

func loadEnvFile(envFile string) error {
	if envFile == "" {
		if _, err := os.Stat(defaultEnvFile); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		envFile = defaultEnvFile
	}

	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	return nil
}
