package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

const (
	msgRegistered     = "User registered successfully"
	msgItemDeleted    = "Item deleted successfully"
	msgHistoryCleared = "History cleared successfully"
)

// Response is the body of every message or error reply.
type Response struct {
	Message string `json:"message,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

type RegisterResponse struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
	Message  string  `json:"message"`
}

type PredictResponse struct {
	PredictedBill float64 `json:"predicted_bill"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}
