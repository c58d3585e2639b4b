package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	env_utils "builderspace-backend/internal/util/env"
	"builderspace-backend/internal/util/logger"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var log = logger.GetLogger()

type EnvVariables struct {
	IsTesting   bool
	DatabaseDsn string            `env:"DATABASE_DSN"`
	EnvMode     env_utils.EnvMode `env:"ENV_MODE"   env-default:"development"`
	JwtSecret   string            `env:"JWT_SECRET" env-default:"builderspace-dev-secret"`

	// HTTPS configuration
	EnableHTTPS bool   `env:"ENABLE_HTTPS" env-default:"false"`
	HTTPSPort   string `env:"HTTPS_PORT"   env-default:"443"`
	HTTPPort    string `env:"HTTP_PORT"    env-default:"4010"`
	CertsDir    string // Path to TLS certificates directory
}

var (
	env  EnvVariables
	once sync.Once
)

func GetEnv() EnvVariables {
	once.Do(loadEnvVariables)
	return env
}

func loadEnvVariables() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Warn("could not get current working directory", "error", err)
		cwd = "."
	}

	backendRoot := cwd
	for {
		if _, err := os.Stat(filepath.Join(backendRoot, "go.mod")); err == nil {
			break
		}

		parent := filepath.Dir(backendRoot)
		if parent == backendRoot {
			break
		}

		backendRoot = parent
	}

	// .env is optional: tests and containerized deployments pass real
	// environment variables instead
	envPaths := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(backendRoot, ".env"),
	}
	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			log.Info("Loaded .env", "path", path)
			break
		}
	}

	if err := cleanenv.ReadEnv(&env); err != nil {
		log.Error("Configuration could not be loaded", "error", err)
		os.Exit(1)
	}

	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			env.IsTesting = true
			break
		}
	}

	if env.EnvMode != env_utils.EnvModeDevelopment && env.EnvMode != env_utils.EnvModeProduction {
		log.Error("ENV_MODE is invalid", "mode", env.EnvMode)
		os.Exit(1)
	}

	if !env.IsTesting && env.DatabaseDsn == "" {
		log.Error("DATABASE_DSN is empty")
		os.Exit(1)
	}

	env.CertsDir = filepath.Join(filepath.Dir(backendRoot), "builderspace-data", "certs")

	log.Info("Environment variables loaded successfully!", "mode", env.EnvMode)
}
