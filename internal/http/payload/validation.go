package payload

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jellydator/validation"
)

// DecodeValidator turns a JSON request body into a request struct.
type DecodeValidator struct{}

// DecodeAndValidateJSONPayload rejects unknown fields and trailing data, closes the body,
// and runs object's Validate method when it has one.
func (DecodeValidator) DecodeAndValidateJSONPayload(r *http.Request, object any) (err error) {
	defer func() {
		if errClose := r.Body.Close(); err == nil && errClose != nil {
			err = fmt.Errorf("closing request body: %w", errClose)
		}
	}()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err = decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}
	if decoder.More() {
		return fmt.Errorf("decoding json payload: unexpected data after the object")
	}

	v, ok := object.(validation.Validatable)
	if !ok {
		return nil
	}
	if err = v.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}
	return nil
}
