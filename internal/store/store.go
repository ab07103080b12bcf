// Package store opens the PostgreSQL database named by DB_URL.
package store

import (
	"context"
	"database/sql"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DaanHessen/pagebot/internal/settings"
)

// DB wraps gorm.DB for repositories and exposes Close.
type DB struct {
	gorm *gorm.DB
	sql  *sql.DB
}

func (d *DB) Close() error   { return d.sql.Close() }
func (d *DB) Gorm() *gorm.DB { return d.gorm }

// Ping checks the connection is still usable.
func (d *DB) Ping(ctx context.Context) error { return d.sql.PingContext(ctx) }

// Open connects to the database in s. A missing DB_URL fails before any
// network access with a *settings.MissingError.
func Open(ctx context.Context, s settings.Settings) (*DB, error) {
	if err := s.Require(settings.KeyDBURL); err != nil {
		return nil, err
	}
	dsn, _ := s.DBURL()
	if err := checkDSN(dsn); err != nil {
		return nil, err
	}
	// gorm's own ping takes no context; PingContext below honours ctx.
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	if err != nil {
		closePool(gdb)
		return nil, errors.Wrap(err, "open database")
	}
	sdb, err := gdb.DB()
	if err != nil {
		return nil, errors.Wrap(err, "database handle")
	}
	sdb.SetConnMaxLifetime(30 * time.Minute)
	sdb.SetMaxOpenConns(10)
	sdb.SetMaxIdleConns(5)
	if err := sdb.PingContext(ctx); err != nil {
		closePool(gdb)
		return nil, errors.Wrap(err, "ping database")
	}
	log.WithField("db", settings.Redact(settings.KeyDBURL, dsn)).Info("database connected")
	return &DB{gorm: gdb, sql: sdb}, nil
}

// closePool releases whatever pool gorm opened before failing.
func closePool(gdb *gorm.DB) {
	if gdb == nil {
		return
	}
	sdb, err := gdb.DB()
	if err != nil {
		return
	}
	if err := sdb.Close(); err != nil {
		log.WithError(err).Warn("close database pool")
	}
}

// checkDSN accepts postgres URLs and libpq key=value strings.
func checkDSN(dsn string) error {
	if strings.TrimSpace(dsn) == "" {
		return errors.Errorf("%s is empty", settings.KeyDBURL)
	}
	if !strings.Contains(dsn, "://") {
		if strings.Contains(dsn, "=") {
			return nil
		}
		return errors.Errorf("%s is neither a URL nor a key=value DSN", settings.KeyDBURL)
	}
	// url errors echo the input, password included.
	u, err := url.Parse(dsn)
	if err != nil {
		return errors.Errorf("%s is not a valid URL", settings.KeyDBURL)
	}
	switch u.Scheme {
	case "postgres", "postgresql":
		return nil
	}
	return errors.Errorf("%s scheme %q is not supported (use postgres:// or postgresql://)", settings.KeyDBURL, u.Scheme)
}
