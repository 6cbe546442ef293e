package db

import (
	"database/sql"

	"gorm.io/gorm"
)

// Wrap skips the idle connection tuning of NewGormDB; sqlmock cannot redial a closed connection.
func Wrap(gdb *gorm.DB) *GormDB {
	return &GormDB{db: gdb}
}

func Stats(f *GormDB) sql.DBStats {
	sqlDB, _ := f.db.DB()
	return sqlDB.Stats()
}
