package db

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"crowdfund-web/db/migrations"
)

// migrateLogger forwards golang-migrate output to slog at debug level.
type migrateLogger struct {
	logger *slog.Logger
}

func (l migrateLogger) Printf(format string, v ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l migrateLogger) Verbose() bool { return false }

// Migrate brings the journal schema at addr up to migrations.Version. A
// dirty schema is never forced; it needs manual repair.
func Migrate(addr string, logger *slog.Logger) error {
	driver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, addr)
	if err != nil {
		return fmt.Errorf("connect migrator: %w", err)
	}
	defer mg.Close()
	mg.Log = migrateLogger{logger: logger}

	from, dirty, err := mg.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		from = 0
	case err != nil:
		return err
	case dirty:
		return fmt.Errorf("schema version %d is dirty", from)
	}

	err = mg.Migrate(migrations.Version)
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Debug("journal schema up to date", slog.Uint64("version", uint64(from)))
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info("journal schema migrated",
		slog.Uint64("from", uint64(from)),
		slog.Uint64("to", uint64(migrations.Version)))
	return nil
}
