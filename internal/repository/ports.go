package repository

import (
	"context"

	"billest/internal/db"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	Migrate(ctx context.Context, migrations ...db.Migration) ([]int, error)
	Insert(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	FindWhere(ctx context.Context, dest any, order any, conds ...any) error
	DeleteWhere(ctx context.Context, model any, conds ...any) (int64, error)
	CountWhere(ctx context.Context, model any, conds ...any) (int64, error)
}
