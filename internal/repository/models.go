package repository

// User is a registered account. CreatedAt holds an ISO-8601 string written by the service.
type User struct {
	ID           int64   `gorm:"primaryKey"`
	Username     string  `gorm:"uniqueIndex;not null"`
	Email        string  `gorm:"uniqueIndex;not null"`
	PasswordHash string  `gorm:"not null"`
	FullName     *string
	CreatedAt    string
}

func (User) TableName() string {
	return "users"
}

// HistoryEntry is one stored prediction. A nil UserID marks a guest prediction; the
// reference to users is not enforced by a constraint.
type HistoryEntry struct {
	ID            int64  `gorm:"primaryKey"`
	UserID        *int64 `gorm:"index"`
	Units         float64
	PredictedBill float64
	Timestamp     string
}

func (HistoryEntry) TableName() string {
	return "history"
}

// GuestPrediction is part of the schema but nothing writes to it; guest counts are
// computed from history.
type GuestPrediction struct {
	ID    int64  `gorm:"primaryKey"`
	Date  string `gorm:"uniqueIndex"`
	Count int64  `gorm:"not null;default:0"`
}

func (GuestPrediction) TableName() string {
	return "guest_predictions"
}
