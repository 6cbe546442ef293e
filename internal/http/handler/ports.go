package handler

import (
	"context"
	"net/http"

	"billest/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name BillService . BillService
type BillService interface {
	Register(ctx context.Context, msg core.RegisterMessage) (core.UserProfile, error)
	Login(ctx context.Context, msg core.LoginMessage) (core.UserProfile, error)
	GetUser(ctx context.Context, id int64) (core.UserProfile, error)
	Predict(ctx context.Context, msg core.PredictMessage) (float64, error)
	ListHistory(ctx context.Context, userID *int64) ([]core.HistoryItem, error)
	DeleteHistoryItem(ctx context.Context, id int64) error
	ClearHistory(ctx context.Context, userID *int64) error
	GuestPredictionsToday(ctx context.Context) (int64, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}
