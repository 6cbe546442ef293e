package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"billest/internal/repository"

	"go.uber.org/zap"
)

// Biller estimates electricity bills and keeps the prediction history and user accounts.
type Biller struct {
	logs      *zap.SugaredLogger
	repo      Repository
	hasher    PasswordHasher
	estimator Estimator
	now       func() time.Time
}

// NewBiller is a constructor function for the Biller type. A nil clock means time.Now.
func NewBiller(logger *zap.SugaredLogger, repo Repository, hasher PasswordHasher, estimator Estimator, clock func() time.Time) *Biller {
	if clock == nil {
		clock = time.Now
	}
	return &Biller{
		logs:      logger,
		repo:      repo,
		hasher:    hasher,
		estimator: estimator,
		now:       clock,
	}
}

// Register creates a user account. A username or email already in use yields ErrUserExists.
func (b *Biller) Register(ctx context.Context, msg RegisterMessage) (UserProfile, error) {
	hash, err := b.hasher.Hash(msg.Password)
	if err != nil {
		return UserProfile{}, internal(fmt.Errorf("hash password: %w", err))
	}

	user, err := b.repo.CreateUser(ctx, repository.User{
		Username:     msg.Username,
		Email:        msg.Email,
		PasswordHash: hash,
		FullName:     msg.FullName,
		CreatedAt:    formatTimestamp(b.now()),
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return UserProfile{}, ErrUserExists
		}
		return UserProfile{}, internal(fmt.Errorf("create user: %w", err))
	}

	b.logs.Infow("user registered", "user_id", user.ID, "username", user.Username)
	return toProfile(user), nil
}

// Login checks the credentials. An unknown username and a wrong password are reported the
// same way.
func (b *Biller) Login(ctx context.Context, msg LoginMessage) (UserProfile, error) {
	user, err := b.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserProfile{}, ErrInvalidCredentials
		}
		return UserProfile{}, internal(fmt.Errorf("get user: %w", err))
	}

	if err := b.hasher.Compare(user.PasswordHash, msg.Password); err != nil {
		b.logs.Infow("password rejected", "user_id", user.ID, "error", err)
		return UserProfile{}, ErrInvalidCredentials
	}

	return toProfile(user), nil
}

func (b *Biller) GetUser(ctx context.Context, id int64) (UserProfile, error) {
	user, err := b.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserProfile{}, ErrUserNotFound
		}
		return UserProfile{}, internal(fmt.Errorf("get user: %w", err))
	}

	return toProfile(user), nil
}

// Predict estimates the bill for the given units and records it in the history of
// msg.UserID, or as a guest prediction when it is nil. The owner is not checked.
func (b *Biller) Predict(ctx context.Context, msg PredictMessage) (float64, error) {
	bill := b.estimator.Estimate(msg.Units)

	entry, err := b.repo.SaveHistory(ctx, repository.HistoryEntry{
		UserID:        msg.UserID,
		Units:         msg.Units,
		PredictedBill: bill,
		Timestamp:     formatTimestamp(b.now()),
	})
	if err != nil {
		return 0, internal(fmt.Errorf("save history: %w", err))
	}

	b.logs.Infow("prediction stored", "history_id", entry.ID, "units", msg.Units, "predicted_bill", bill)
	return bill, nil
}

// ListHistory returns the predictions of userID, or the guest predictions when it is nil,
// newest first.
func (b *Biller) ListHistory(ctx context.Context, userID *int64) ([]HistoryItem, error) {
	entries, err := b.repo.ListHistory(ctx, userID)
	if err != nil {
		return nil, internal(fmt.Errorf("list history: %w", err))
	}

	return toHistoryItems(entries), nil
}

// DeleteHistoryItem removes a single prediction. It succeeds whether or not the item exists
// and does not check who owns it.
func (b *Biller) DeleteHistoryItem(ctx context.Context, id int64) error {
	deleted, err := b.repo.DeleteHistoryEntry(ctx, id)
	if err != nil {
		return internal(fmt.Errorf("delete history item: %w", err))
	}

	b.logs.Infow("history item deleted", "history_id", id, "rows", deleted)
	return nil
}

func (b *Biller) ClearHistory(ctx context.Context, userID *int64) error {
	deleted, err := b.repo.ClearHistory(ctx, userID)
	if err != nil {
		return internal(fmt.Errorf("clear history: %w", err))
	}

	b.logs.Infow("history cleared", "user_id", userID, "rows", deleted)
	return nil
}

// GuestPredictionsToday counts the guest predictions made on the current local date.
func (b *Biller) GuestPredictionsToday(ctx context.Context) (int64, error) {
	count, err := b.repo.CountGuestHistoryOn(ctx, b.now().Format(DayLayout))
	if err != nil {
		return 0, internal(fmt.Errorf("count guest predictions: %w", err))
	}

	return count, nil
}
