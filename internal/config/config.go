package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jellydator/validation"
	"gopkg.in/yaml.v3"
)

const (
	configFileEnvKey     = "BILLEST_CONFIG_FILE"
	apiPortEnvKey        = "API_PORT"
	dbDriverEnvKey       = "DB_DRIVER"
	dbConnEnvKey         = "DB_CONNECTION_URL"
	dbMaxOpenConnsEnvKey = "DB_MAX_OPEN_CONNS"
	dbLogSQLEnvKey       = "DB_LOG_SQL"
	allowedOriginEnvKey  = "CORS_ALLOWED_ORIGIN"
	hasherEnvKey         = "PASSWORD_HASHER"
	logLevelEnvKey       = "LOG_LEVEL"
	logFileEnvKey        = "LOG_FILE"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	HasherBcrypt = "bcrypt"
	HasherSHA256 = "sha256"
)

type App struct {
	Port            string `yaml:"port"`
	DBDriver        string `yaml:"db_driver"`
	DBConnectionURL string `yaml:"db_connection_url"`
	DBMaxOpenConns  int    `yaml:"db_max_open_conns"`
	DBLogSQL        bool   `yaml:"db_log_sql"`
	AllowedOrigin   string `yaml:"allowed_origin"`
	PasswordHasher  string `yaml:"password_hasher"`
	LogLevel        string `yaml:"log_level"`
	LogFile         string `yaml:"log_file"`
}

func defaults() App {
	return App{
		Port:            "5000",
		DBDriver:        DriverSQLite,
		DBConnectionURL: "bills.db",
		AllowedOrigin:   "http://localhost:3000",
		PasswordHasher:  HasherBcrypt,
		LogLevel:        "info",
	}
}

// NewApp builds the configuration from defaults, the optional YAML file named by
// BILLEST_CONFIG_FILE and finally the environment.
func NewApp() (App, error) {
	app := defaults()

	if path, ok := os.LookupEnv(configFileEnvKey); ok && path != "" {
		if err := app.loadFile(path); err != nil {
			return App{}, err
		}
	}

	if err := app.loadEnv(); err != nil {
		return App{}, err
	}

	if err := app.Validate(); err != nil {
		return App{}, fmt.Errorf("validate config: %w", err)
	}

	return app, nil
}

func (a App) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Port, validation.Required),
		validation.Field(&a.DBDriver, validation.Required, validation.In(DriverSQLite, DriverPostgres)),
		validation.Field(&a.DBConnectionURL, validation.Required),
		validation.Field(&a.DBMaxOpenConns, validation.Min(0)),
		validation.Field(&a.AllowedOrigin, validation.Required),
		validation.Field(&a.PasswordHasher, validation.Required, validation.In(HasherBcrypt, HasherSHA256)),
		validation.Field(&a.LogLevel, validation.In("debug", "info", "warn", "error")),
	)
}

func (a *App) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, a); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	return nil
}

func (a *App) loadEnv() error {
	lookupString(apiPortEnvKey, &a.Port)
	lookupString(dbDriverEnvKey, &a.DBDriver)
	lookupString(dbConnEnvKey, &a.DBConnectionURL)
	lookupString(allowedOriginEnvKey, &a.AllowedOrigin)
	lookupString(hasherEnvKey, &a.PasswordHasher)
	lookupString(logLevelEnvKey, &a.LogLevel)
	lookupString(logFileEnvKey, &a.LogFile)

	if v, ok := os.LookupEnv(dbMaxOpenConnsEnvKey); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", dbMaxOpenConnsEnvKey, err)
		}
		a.DBMaxOpenConns = n
	}

	if v, ok := os.LookupEnv(dbLogSQLEnvKey); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", dbLogSQLEnvKey, err)
		}
		a.DBLogSQL = b
	}

	return nil
}

func lookupString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
