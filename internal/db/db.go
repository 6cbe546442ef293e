package db

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicate = errors.New("duplicate record")
var ErrUnsupportedDriver = errors.New("unsupported database driver")

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Options struct {
	Driver       string
	DSN          string
	MaxOpenConns int
	LogSQL       bool
}

// Open connects to the store described by opts. For sqlite the DSN is the database file path.
func Open(opts Options) (*GormDB, error) {
	var dialector gorm.Dialector
	switch opts.Driver {
	case DriverSQLite:
		dialector = sqlite.Open(opts.DSN)
	case DriverPostgres:
		dialector = postgres.Open(opts.DSN)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, opts.Driver)
	}

	logLevel := logger.Silent
	if opts.LogSQL {
		logLevel = logger.Info
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewGormDB(gdb, opts.MaxOpenConns)
}

// NewGormDB wraps an opened gorm handle. Idle connections are not retained so every
// Conn call dials the store and closes the connection once it is released.
func NewGormDB(gdb *gorm.DB, maxOpenConns int) (*GormDB, error) {
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db conn: %w", err)
	}

	sqlDB.SetMaxIdleConns(0)
	sqlDB.SetMaxOpenConns(maxOpenConns)

	return &GormDB{
		db: gdb,
	}, nil
}

func (f *GormDB) Close() error {
	sqlDB, err := f.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}
