package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type GormDB struct {
	db *gorm.DB
}

// Conn runs fn on a single connection checked out for the call and returned on every
// exit path, panics included.
func (f *GormDB) Conn(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return f.db.WithContext(ctx).Connection(func(tx *gorm.DB) error {
		// fresh session so consecutive statements in fn do not share conditions
		return fn(tx.Session(&gorm.Session{}))
	})
}

func (f *GormDB) Insert(ctx context.Context, record any) error {
	return f.Conn(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("insert record: %w", ErrDuplicate)
			}
			return fmt.Errorf("insert record: %w", err)
		}
		return nil
	})
}

func (f *GormDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	return f.Conn(ctx, func(tx *gorm.DB) error {
		err := tx.Where(fmt.Sprintf("%s = ?", column), value).First(entity).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("getting record by %q: %w", column, err)
		}
		return nil
	})
}

// FindWhere loads every row matching all conds into dest. Each cond is anything gorm's
// Where accepts; a map value of nil becomes IS NULL.
func (f *GormDB) FindWhere(ctx context.Context, dest any, order any, conds ...any) error {
	return f.Conn(ctx, func(tx *gorm.DB) error {
		tx = where(tx, conds)
		if order != nil {
			tx = tx.Order(order)
		}
		if err := tx.Find(dest).Error; err != nil {
			return fmt.Errorf("find records: %w", err)
		}
		return nil
	})
}

func (f *GormDB) DeleteWhere(ctx context.Context, model any, conds ...any) (int64, error) {
	var affected int64
	err := f.Conn(ctx, func(tx *gorm.DB) error {
		res := where(tx, conds).Delete(model)
		if res.Error != nil {
			return fmt.Errorf("delete records: %w", res.Error)
		}
		affected = res.RowsAffected
		return nil
	})
	return affected, err
}

func (f *GormDB) CountWhere(ctx context.Context, model any, conds ...any) (int64, error) {
	var count int64
	err := f.Conn(ctx, func(tx *gorm.DB) error {
		if err := where(tx.Model(model), conds).Count(&count).Error; err != nil {
			return fmt.Errorf("count records: %w", err)
		}
		return nil
	})
	return count, err
}

func where(tx *gorm.DB, conds []any) *gorm.DB {
	for _, c := range conds {
		tx = tx.Where(c)
	}
	return tx
}
