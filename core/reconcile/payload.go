package reconcile

import (
	"encoding/json"
	"errors"

	"gameframe/core/registry"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Decode unmarshals a provider payload into schema and validates it against
// the schema's validate tags. Any failure is a *MalformedPayloadError.
func Decode(provider registry.Provider, kind registry.Kind, payload json.RawMessage, schema any) error {
	if len(payload) == 0 {
		return &MalformedPayloadError{Provider: provider, Kind: kind, Err: ErrMissingPayload}
	}
	if err := json.Unmarshal(payload, schema); err != nil {
		return &MalformedPayloadError{Provider: provider, Kind: kind, Err: err}
	}
	if err := validate.Struct(schema); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Namespace())
			}
			return &MalformedPayloadError{Provider: provider, Kind: kind, Fields: fields, Err: err}
		}
		return &MalformedPayloadError{Provider: provider, Kind: kind, Err: err}
	}
	return nil
}

// Validate checks a value against its validate tags.
func Validate(v any) error {
	return validate.Struct(v)
}
