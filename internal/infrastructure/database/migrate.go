package database

import (
	"errors"
	"fmt"

	"github.com/glowcare/clinic/db"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Migrate applies the embedded SQL migrations for one service's schema.
// service names the subdirectory under db/migrations.
func Migrate(gormDB *gorm.DB, service string) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	source, err := iofs.New(db.Migrations, "migrations/"+service)
	if err != nil {
		return fmt.Errorf("failed to load migrations for %s: %w", service, err)
	}

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("failed to init migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to init migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations for %s: %w", service, err)
	}

	logrus.Infof("Database migrations up to date for %s", service)

	return nil
}
