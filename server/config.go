package server

import (
	"fmt"
	"os"
	"time"

	"github.com/carloscedeno/cardstore"
	"github.com/carloscedeno/cardstore/postgres"
	_ "github.com/joho/godotenv/autoload"
)

const (
	environmentEnvVar  = "ENVIRONMENT"
	functionNameEnvVar = "FUNCTION_NAME"
	portEnvVar         = "PORT"
	redisURLEnvVar     = "REDIS_URL"
	serviceKeyEnvVar   = "SERVICE_KEY"

	serverIdleTimeoutEnvVar  = "SERVER_IDLE_TIMEOUT"
	serverReadTimeoutEnvVar  = "SERVER_READ_TIMEOUT"
	serverWriteTimeoutEnvVar = "SERVER_WRITE_TIMEOUT"

	DefaultPort               = ":8000"
	DefaultServerIdleTimeout  = 120 * time.Second
	DefaultServerReadTimeout  = 5 * time.Second
	DefaultServerWriteTimeout = 10 * time.Second

	// Database defaults
	dbHostEnvVar     = "DATABASE_HOST"
	defaultDBHost    = "localhost"
	dbNameEnvVar     = "DATABASE_NAME"
	dbPassEnvVar     = "DATABASE_PASSWORD"
	dbPortEnvVar     = "DATABASE_PORT"
	defaultDBPort    = "5432"
	dbSSLModeEnvVar  = "DATABASE_SSLMODE"
	defaultDBSSLMode = "prefer"
	dbURLEnvVar      = "DATABASE_URL"
	dbUserEnvVar     = "DATABASE_USER"

	// Test database defaults
	dbTestHostEnvVar    = "DATABASE_TEST_HOST"
	defaultDBTestHost   = "localhost"
	dbTestNameEnvVar    = "DATABASE_TEST_NAME"
	dbTestPassEnvVar    = "DATABASE_TEST_PASSWORD"
	dbTestPortEnvVar    = "DATABASE_TEST_PORT"
	defaultDBTestPort   = "5432"
	dbTestUserEnvVar    = "DATABASE_TEST_USER"
	dbTestSSLModeEnvVar = "DATABASE_TEST_SSLMODE"
)

// A Config carries everything a Server needs that is decided outside
// the program, read from env vars with an optional ".env" file loaded
// from the working directory.
type Config struct {
	Env          cardstore.Environment
	FunctionName string
	Port         string
	RedisURL     string
	ServiceKey   string

	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NewConfig reads a Config from the environment.
//
// SERVICE_KEY must be set, as must either DATABASE_URL or the discrete
// DATABASE_* vars it replaces.
func NewConfig() (Config, error) {
	cfg := Config{
		Env:          cardstore.EnvVarOrEnv(environmentEnvVar, cardstore.Development),
		FunctionName: os.Getenv(functionNameEnvVar),
		Port:         cardstore.EnvVarOrString(portEnvVar, DefaultPort),
		RedisURL:     os.Getenv(redisURLEnvVar),
		ServiceKey:   os.Getenv(serviceKeyEnvVar),

		IdleTimeout:  cardstore.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		ReadTimeout:  cardstore.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout: cardstore.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
	}

	if cfg.Port[0] != ':' {
		cfg.Port = ":" + cfg.Port
	}

	if cfg.ServiceKey == "" {
		return cfg, fmt.Errorf("%w: %s must be set", cardstore.ErrBadConfig, serviceKeyEnvVar)
	}

	if os.Getenv(dbURLEnvVar) == "" && os.Getenv(dbNameEnvVar) == "" {
		return cfg, fmt.Errorf("%w: set %s or the discrete DATABASE_* vars", cardstore.ErrBadConfig, dbURLEnvVar)
	}

	return cfg, nil
}

// NewPostgresConfig constructs a *postgres.CxnConfig appropriate to the
// given environment. DATABASE_URL replaces the discrete DATABASE_* vars
// when set; testing environments read the DATABASE_TEST_* set instead.
func NewPostgresConfig(env cardstore.Environment) *postgres.CxnConfig {
	url := os.Getenv(dbURLEnvVar)
	switch {
	case env.IsTesting():
		return &postgres.CxnConfig{
			Host:     cardstore.EnvVarOrString(dbTestHostEnvVar, defaultDBTestHost),
			IsTestDB: true,
			Name:     os.Getenv(dbTestNameEnvVar),
			Password: os.Getenv(dbTestPassEnvVar),
			Port:     cardstore.EnvVarOrString(dbTestPortEnvVar, defaultDBTestPort),
			SSLMode:  cardstore.EnvVarOrString(dbTestSSLModeEnvVar, defaultDBSSLMode),
			User:     os.Getenv(dbTestUserEnvVar),
		}

	case url == "":
		return &postgres.CxnConfig{
			Host:     cardstore.EnvVarOrString(dbHostEnvVar, defaultDBHost),
			Name:     os.Getenv(dbNameEnvVar),
			Password: os.Getenv(dbPassEnvVar),
			Port:     cardstore.EnvVarOrString(dbPortEnvVar, defaultDBPort),
			SSLMode:  cardstore.EnvVarOrString(dbSSLModeEnvVar, defaultDBSSLMode),
			User:     os.Getenv(dbUserEnvVar),
		}

	default:
		return &postgres.CxnConfig{URL: url}
	}
}
