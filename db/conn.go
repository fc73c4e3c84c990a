// Package db contains the database connection setup
package db

import (
	"fmt"
	"reviewhub/review-api/internal/model"

	"github.com/spf13/viper"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// New opens the configured database and migrates the users and reviews
// tables. MySQL is the primary target, SQLite exists for local development.
//
// Note that users.email deliberately has no unique index. Uniqueness is
// checked by the handlers before writing, which leaves a small race window
// between two concurrent registrations.
func New() (*gorm.DB, error) {
	var dial gorm.Dialector

	switch viper.GetString("db.driver") {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			viper.GetString("db.user"),
			viper.GetString("db.password"),
			viper.GetString("db.host"),
			viper.GetInt("db.port"),
			viper.GetString("db.name"),
		)
		dial = mysql.Open(dsn)
	case "sqlite":
		dial = sqlite.Open(viper.GetString("db.sqlite_path"))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", viper.GetString("db.driver"))
	}

	db, err := gorm.Open(dial)
	if err != nil {
		return nil, fmt.Errorf("failed to open database, %w", err)
	}

	err = db.AutoMigrate(model.User{}, model.Review{})
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}
