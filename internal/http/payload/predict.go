package payload

import (
	"billest/internal/core"

	"github.com/jellydator/validation"
)

// PredictRequest carries units as a pointer so an explicit 0 is told apart from a missing
// field.
type PredictRequest struct {
	Units  *float64 `json:"units"`
	UserID *int64   `json:"user_id"`
}

func (p PredictRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Units, validation.NotNil),
	)
}

func (p PredictRequest) ToMessage() core.PredictMessage {
	msg := core.PredictMessage{UserID: p.UserID}
	if p.Units != nil {
		msg.Units = *p.Units
	}
	return msg
}
