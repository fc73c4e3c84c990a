// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}
	validDrivers   = []string{"mysql", "sqlite"}
)

// Dev-only fallback secrets. The original deployment shipped with the same
// fallback behavior, so it is kept, but setup prints a warning every time
// one of these ends up being used.
const (
	devJWTSecret = "dev-jwt-secret"
	devAppSecret = "dev-secret"
)

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")
	v.BindEnv("app.secret_key", "app_secret_key")
	v.BindEnv("app.rate_limit", "app_rate_limit")

	v.BindEnv("host.port", "host_port")
	v.BindEnv("host.cookie_secure", "host_cookie_secure")

	v.BindEnv("db.driver", "db_driver")
	v.BindEnv("db.host", "db_host")
	v.BindEnv("db.port", "db_port")
	v.BindEnv("db.user", "db_user")
	v.BindEnv("db.password", "db_password")
	v.BindEnv("db.name", "db_name")
	v.BindEnv("db.sqlite_path", "db_sqlite_path")

	v.BindEnv("jwt.secret", "jwt_secret")
	v.BindEnv("jwt.ttl_hours", "jwt_ttl_hours")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.rate_limit", 20)

	v.SetDefault("host.port", 8080)
	v.SetDefault("host.cookie_secure", false)

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.name", "userdetails")
	v.SetDefault("db.sqlite_path", "database.db")

	v.SetDefault("jwt.ttl_hours", 24)

	if err := v.ReadInConfig(); err != nil {
		// Defaults are enough to run locally, so a missing file is fine
		if _, ok := err.(v.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file, %w", err)
		}
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	if v.GetInt("app.rate_limit") <= 0 {
		return errors.New("app.rate_limit must be bigger than 0")
	}

	if v.GetInt("jwt.ttl_hours") <= 0 {
		return errors.New("jwt.ttl_hours must be bigger than 0")
	}

	if !slices.Contains(validDrivers, v.GetString("db.driver")) {
		return errors.New("invalid database driver provided")
	}

	if v.GetString("db.driver") == "mysql" && v.GetString("db.name") == "" {
		return errors.New("database name can't be empty")
	}

	if v.GetString("jwt.secret") == "" {
		fmt.Println("WARNING: jwt.secret is not set, falling back to an insecure built-in development secret. Set it as an environment variable or in the config.toml file before deploying.")
		v.Set("jwt.secret", devJWTSecret)
	}

	if v.GetString("app.secret_key") == "" {
		fmt.Println("WARNING: app.secret_key is not set, falling back to an insecure built-in development secret. Set it as an environment variable or in the config.toml file before deploying.")
		v.Set("app.secret_key", devAppSecret)
	}

	if !v.GetBool("host.cookie_secure") {
		fmt.Println("[WARNING]: Cookies are served without the Secure flag. This is fine for local development only")
	}

	return nil
}
