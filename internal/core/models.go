package core

import (
	"time"

	"billest/internal/repository"
)

const (
	TimestampLayout = "2006-01-02T15:04:05.000000"
	DayLayout       = "2006-01-02"
)

type RegisterMessage struct {
	Username string
	Email    string
	Password string
	FullName *string
}

type LoginMessage struct {
	Username string
	Password string
}

type PredictMessage struct {
	Units  float64
	UserID *int64
}

// UserProfile holds the fields of a user that may leave the service.
type UserProfile struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FullName  *string `json:"full_name"`
	CreatedAt string  `json:"created_at"`
}

type HistoryItem struct {
	ID            int64   `json:"id"`
	Units         float64 `json:"units"`
	PredictedBill float64 `json:"predicted_bill"`
	Timestamp     string  `json:"timestamp"`
}

func toProfile(u repository.User) UserProfile {
	return UserProfile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
	}
}

func toHistoryItems(entries []repository.HistoryEntry) []HistoryItem {
	items := make([]HistoryItem, len(entries))
	for i, e := range entries {
		items[i] = HistoryItem{
			ID:            e.ID,
			Units:         e.Units,
			PredictedBill: e.PredictedBill,
			Timestamp:     e.Timestamp,
		}
	}
	return items
}

func formatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
