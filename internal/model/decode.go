package model

import (
	"encoding/json"
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeMetricsJSON parses a CustomerMetrics from JSON. A field with a
// value of the wrong type (e.g. a string where has_recent_upgrade
// expects a boolean) is reported as a TYPE_ERROR tagged with the
// offending category; any other malformed payload is INVALID_INPUT.
// This is the only place wrong-typed input can surface — past the
// decode boundary the type system holds.
func DecodeMetricsJSON(data []byte) (*CustomerMetrics, error) {
	var m CustomerMetrics
	if err := json.Unmarshal(data, &m); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &ValidationError{
				Code:    ErrCodeTypeError,
				Factor:  factorFromFieldPath(typeErr.Field),
				Message: "field " + typeErr.Field + " must be of type " + typeErr.Type.String(),
			}
		}
		return nil, NewValidationError(ErrCodeInvalidInput, "", "malformed metrics payload: %v", err)
	}
	return &m, nil
}

// DecodeMetricsYAML parses a CustomerMetrics from YAML.
func DecodeMetricsYAML(data []byte) (*CustomerMetrics, error) {
	var m CustomerMetrics
	if err := yaml.Unmarshal(data, &m); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return nil, NewValidationError(ErrCodeTypeError, "", "metrics payload: %s", strings.Join(typeErr.Errors, "; "))
		}
		return nil, NewValidationError(ErrCodeInvalidInput, "", "malformed metrics payload: %v", err)
	}
	return &m, nil
}

// factorFromFieldPath maps a decoder field path like
// "contract.has_recent_upgrade" to its category.
func factorFromFieldPath(path string) Factor {
	head, _, _ := strings.Cut(path, ".")
	for _, f := range Factors {
		if head == string(f) {
			return f
		}
	}
	return ""
}
