package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"billest/internal/core"
	"billest/internal/http/middleware"
	"billest/internal/http/payload"

	"go.uber.org/zap"
)

var (
	Register              = "POST /api/register"
	Login                 = "POST /api/login"
	GetUser               = "GET /api/user/{user_id}"
	GetHistory            = "GET /api/history"
	ClearHistory          = "DELETE /api/history/clear"
	DeleteHistoryItem     = "DELETE /api/history/{item_id}"
	Predict               = "POST /api/predict"
	GuestPredictionsToday = "GET /api/guest-predictions-today"
)

type BillHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	biller           BillService
}

func NewBillHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, billService BillService) *BillHandler {
	return &BillHandler{
		logs:             logger,
		requestValidator: requestValidator,
		biller:           billService,
	}
}

// RegisterRoutes mounts every endpoint on mux.
func (h *BillHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc(Register, h.HandleRegister)
	mux.HandleFunc(Login, h.HandleLogin)
	mux.HandleFunc(GetUser, h.HandleGetUser)
	mux.HandleFunc(GetHistory, h.HandleGetHistory)
	mux.HandleFunc(ClearHistory, h.HandleClearHistory)
	mux.HandleFunc(DeleteHistoryItem, h.HandleDeleteHistoryItem)
	mux.HandleFunc(Predict, h.HandlePredict)
	mux.HandleFunc(GuestPredictionsToday, h.HandleGuestPredictionsToday)
}

func (h *BillHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.RegisterRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.badRequest(w, err, Register, requestId)
		return
	}

	profile, err := h.biller.Register(r.Context(), req.ToMessage())
	if err != nil {
		h.fail(w, err, Register, requestId)
		return
	}

	h.respond(w, RegisterResponse{
		ID:       profile.ID,
		Username: profile.Username,
		Email:    profile.Email,
		FullName: profile.FullName,
		Message:  msgRegistered,
	}, http.StatusOK, requestId)
}

func (h *BillHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.LoginRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.badRequest(w, err, Login, requestId)
		return
	}

	profile, err := h.biller.Login(r.Context(), req.ToMessage())
	if err != nil {
		h.fail(w, err, Login, requestId)
		return
	}

	h.logs.Infow("user logged in",
		"user_id", profile.ID,
		"handler", Login,
		"request_id", requestId)
	h.respond(w, profile, http.StatusOK, requestId)
}

func (h *BillHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	id, err := payload.ParseID(r.PathValue("user_id"))
	if err != nil {
		h.badRequest(w, err, GetUser, requestId)
		return
	}

	profile, err := h.biller.GetUser(r.Context(), id)
	if err != nil {
		h.fail(w, err, GetUser, requestId)
		return
	}

	h.respond(w, profile, http.StatusOK, requestId)
}

func (h *BillHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	userID, err := payload.OptionalID(r.URL.Query(), "user_id")
	if err != nil {
		h.badRequest(w, err, GetHistory, requestId)
		return
	}

	items, err := h.biller.ListHistory(r.Context(), userID)
	if err != nil {
		h.fail(w, err, GetHistory, requestId)
		return
	}

	h.respond(w, items, http.StatusOK, requestId)
}

func (h *BillHandler) HandleClearHistory(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	userID, err := payload.OptionalID(r.URL.Query(), "user_id")
	if err != nil {
		h.badRequest(w, err, ClearHistory, requestId)
		return
	}

	if err := h.biller.ClearHistory(r.Context(), userID); err != nil {
		h.fail(w, err, ClearHistory, requestId)
		return
	}

	h.respond(w, Response{Message: msgHistoryCleared}, http.StatusOK, requestId)
}

func (h *BillHandler) HandleDeleteHistoryItem(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	id, err := payload.ParseID(r.PathValue("item_id"))
	if err != nil {
		h.badRequest(w, err, DeleteHistoryItem, requestId)
		return
	}

	if err := h.biller.DeleteHistoryItem(r.Context(), id); err != nil {
		h.fail(w, err, DeleteHistoryItem, requestId)
		return
	}

	h.respond(w, Response{Message: msgItemDeleted}, http.StatusOK, requestId)
}

func (h *BillHandler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.PredictRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.badRequest(w, err, Predict, requestId)
		return
	}

	bill, err := h.biller.Predict(r.Context(), req.ToMessage())
	if err != nil {
		h.fail(w, err, Predict, requestId)
		return
	}

	h.respond(w, PredictResponse{PredictedBill: bill}, http.StatusOK, requestId)
}

func (h *BillHandler) HandleGuestPredictionsToday(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	count, err := h.biller.GuestPredictionsToday(r.Context())
	if err != nil {
		h.fail(w, err, GuestPredictionsToday, requestId)
		return
	}

	h.respond(w, CountResponse{Count: count}, http.StatusOK, requestId)
}

func (h *BillHandler) badRequest(w http.ResponseWriter, err error, route string, requestId string) {
	h.respond(w, Response{
		Detail: fmt.Errorf("invalid request: %w", err).Error(),
	}, http.StatusBadRequest, requestId)
	h.logs.Errorw("failed to read request",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

func (h *BillHandler) fail(w http.ResponseWriter, err error, route string, requestId string) {
	code := statusFor(err)
	h.respond(w, Response{Detail: err.Error()}, code, requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"status", code,
		"handler", route,
		"request_id", requestId)
}

// statusFor is the single place service errors become HTTP status codes.
func statusFor(err error) int {
	switch core.KindOf(err) {
	case core.KindConflict:
		return http.StatusBadRequest
	case core.KindUnauthorized:
		return http.StatusUnauthorized
	case core.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (h *BillHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
