package schema

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/m04kA/SBN-BookingService/migrations"
)

var (
	// ErrMigrate возвращается при ошибке применения миграций
	ErrMigrate = errors.New("schema: migration failed")
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Source встроенный источник миграций
func Source() (source.Driver, error) {
	return iofs.New(migrations.FS, ".")
}

// Up применяет все неприменённые миграции к открытой базе
func Up(db *sql.DB, log Logger) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("Schema is up to date")
			return nil
		}
		return fmt.Errorf("%w: up: %v", ErrMigrate, err)
	}

	version, _, _ := m.Version()
	log.Info("Schema migrated to version %d", version)
	return nil
}

// Force помечает версию как применённую без выполнения SQL (после ручного исправления)
func Force(db *sql.DB, version int) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}
	if err := m.Force(version); err != nil {
		return fmt.Errorf("%w: force %d: %v", ErrMigrate, version, err)
	}
	return nil
}

func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	dbDriver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("%w: db driver: %v", ErrMigrate, err)
	}

	src, err := Source()
	if err != nil {
		return nil, fmt.Errorf("%w: source driver: %v", ErrMigrate, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", dbDriver)
	if err != nil {
		return nil, fmt.Errorf("%w: create migrator: %v", ErrMigrate, err)
	}
	return m, nil
}
