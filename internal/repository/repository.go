package repository

import (
	"context"
	"errors"
	"fmt"

	"billest/internal/db"

	"gorm.io/gorm/clause"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrUserExists error = errors.New("user already exists")

var newestFirst = clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true}

type BillRepository struct {
	db Storage
}

func NewBillRepository(db Storage) *BillRepository {
	return &BillRepository{
		db: db,
	}
}

// MigrateSchema brings the schema up to date and returns the versions applied by this call.
func (r *BillRepository) MigrateSchema(ctx context.Context) ([]int, error) {
	applied, err := r.db.Migrate(ctx, Migrations()...)
	if err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return applied, nil
}

func (r *BillRepository) CreateUser(ctx context.Context, user User) (User, error) {
	err := r.db.Insert(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return User{}, ErrUserExists
		}
		return User{}, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

func (r *BillRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	return r.getUserBy(ctx, "username", username)
}

func (r *BillRepository) GetUserByID(ctx context.Context, id int64) (User, error) {
	return r.getUserBy(ctx, "id", id)
}

func (r *BillRepository) getUserBy(ctx context.Context, column string, value any) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, column, value, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by %s: %w", column, err)
	}

	return user, nil
}

func (r *BillRepository) SaveHistory(ctx context.Context, entry HistoryEntry) (HistoryEntry, error) {
	if err := r.db.Insert(ctx, &entry); err != nil {
		return HistoryEntry{}, fmt.Errorf("insert history entry: %w", err)
	}

	return entry, nil
}

// ListHistory returns the entries owned by userID, or the guest entries when userID is
// nil, newest first.
func (r *BillRepository) ListHistory(ctx context.Context, userID *int64) ([]HistoryEntry, error) {
	entries := []HistoryEntry{}
	err := r.db.FindWhere(ctx, &entries, newestFirst, ownedBy(userID))
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	return entries, nil
}

// DeleteHistoryEntry removes the entry with the given id whoever owns it.
func (r *BillRepository) DeleteHistoryEntry(ctx context.Context, id int64) (int64, error) {
	deleted, err := r.db.DeleteWhere(ctx, &HistoryEntry{}, map[string]any{"id": id})
	if err != nil {
		return 0, fmt.Errorf("delete history entry: %w", err)
	}

	return deleted, nil
}

func (r *BillRepository) ClearHistory(ctx context.Context, userID *int64) (int64, error) {
	deleted, err := r.db.DeleteWhere(ctx, &HistoryEntry{}, ownedBy(userID))
	if err != nil {
		return 0, fmt.Errorf("clear history: %w", err)
	}

	return deleted, nil
}

// CountGuestHistoryOn counts guest entries whose timestamp starts with day (YYYY-MM-DD).
func (r *BillRepository) CountGuestHistoryOn(ctx context.Context, day string) (int64, error) {
	count, err := r.db.CountWhere(ctx, &HistoryEntry{},
		ownedBy(nil),
		clause.Like{Column: clause.Column{Name: "timestamp"}, Value: day + "%"},
	)
	if err != nil {
		return 0, fmt.Errorf("count guest history: %w", err)
	}

	return count, nil
}

func ownedBy(userID *int64) map[string]any {
	if userID == nil {
		// untyped nil so the condition renders as IS NULL
		return map[string]any{"user_id": nil}
	}
	return map[string]any{"user_id": *userID}
}
