package core

import (
	"context"

	"billest/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user repository.User) (repository.User, error)
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	GetUserByID(ctx context.Context, id int64) (repository.User, error)
	SaveHistory(ctx context.Context, entry repository.HistoryEntry) (repository.HistoryEntry, error)
	ListHistory(ctx context.Context, userID *int64) ([]repository.HistoryEntry, error)
	DeleteHistoryEntry(ctx context.Context, id int64) (int64, error)
	ClearHistory(ctx context.Context, userID *int64) (int64, error)
	CountGuestHistoryOn(ctx context.Context, day string) (int64, error)
}

//counterfeiter:generate -o fake -fake-name PasswordHasher . PasswordHasher
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

//counterfeiter:generate -o fake -fake-name Estimator . Estimator
type Estimator interface {
	Estimate(units float64) float64
}
