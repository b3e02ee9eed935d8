package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jellydator/validation"
)

var ErrContentTypeNotJSON = errors.New("content type must be application/json")

type DecodeValidator struct{}

// DecodeAndValidateJSONPayload decodes the request body into object, rejecting
// non-JSON content types and unknown fields, then runs the payload's own
// validation rules if it has any.
func (dv DecodeValidator) DecodeAndValidateJSONPayload(r *http.Request, object any) error {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		return ErrContentTypeNotJSON
	}

	decoder := json.NewDecoder(r.Body)
	defer r.Body.Close()
	decoder.DisallowUnknownFields()
	err := decoder.Decode(object)
	if err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}
	return dv.validatePayload(object)
}

func (dv DecodeValidator) validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
