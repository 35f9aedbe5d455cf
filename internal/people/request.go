package people

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"sort"

	"swapi-server/internal/shared/errors"
)

const (
	msgInvalidPayload   = "Provided payload is not valid"
	msgInvalidJSON      = "Provide a valid JSON payload"
	msgIncompleteUpdate = "Missing field in full update"
)

// CreateRequest is a decoded POST body. Pointers distinguish absent keys.
type CreateRequest struct {
	Name      *string `json:"name" validate:"required,max=255"`
	Homeworld *string `json:"homeworld" validate:"required"`
	Height    *int    `json:"height" validate:"required"`
	Mass      *int    `json:"mass" validate:"required"`
	HairColor *string `json:"hair_color" validate:"required,max=64"`
	Created   *string `json:"created" validate:"omitempty,max=64"`
}

// UpdateRequest is a decoded PUT or PATCH body.
type UpdateRequest struct {
	Name      *string `json:"name" validate:"omitempty,max=255"`
	Homeworld *string `json:"homeworld"`
	Height    *int    `json:"height"`
	Mass      *int    `json:"mass"`
	HairColor *string `json:"hair_color" validate:"omitempty,max=64"`

	fields []Field
}

// Fields lists the keys present in the payload, in UpdatableFields order.
func (r *UpdateRequest) Fields() []Field {
	return r.fields
}

type UpdateMode int

const (
	// Partial updates only the supplied fields (PATCH).
	Partial UpdateMode = iota
	// Full replaces every updatable field (PUT).
	Full
)

// DecodeCreate parses a POST body. Syntax errors and non-integer height or
// mass are both reported as an invalid payload.
func DecodeCreate(body []byte) (*CreateRequest, error) {
	if _, err := decodeObject(body); err != nil {
		return nil, errors.WrapValidation(msgInvalidPayload, err)
	}

	var req CreateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, typeError(err)
	}

	return &req, nil
}

// DecodeUpdate parses a PUT or PATCH body. Unknown keys and explicit nulls
// are rejected; a Full update must carry exactly UpdatableFields.
func DecodeUpdate(body []byte, mode UpdateMode) (*UpdateRequest, error) {
	raw, err := decodeObject(body)
	if err != nil {
		return nil, errors.WrapValidation(msgInvalidJSON, err)
	}

	if mode == Full && !hasExactly(raw, UpdatableFields) {
		return nil, errors.WrapValidation(msgIncompleteUpdate, fmt.Errorf("got keys %v", keys(raw)))
	}

	for _, k := range keys(raw) {
		if !isUpdatable(k) {
			return nil, errors.Validationf("Unknown field: %s", k)
		}
		if string(raw[k]) == "null" {
			return nil, errors.Validationf("Field %s cannot be null", k)
		}
	}

	var req UpdateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, typeError(err)
	}

	for _, f := range UpdatableFields {
		if _, ok := raw[string(f)]; ok {
			req.fields = append(req.fields, f)
		}
	}

	return &req, nil
}

func decodeObject(body []byte) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, stderrors.New("payload must be a JSON object")
	}
	return raw, nil
}

func typeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		return errors.ValidationFields(msgInvalidPayload, []errors.FieldError{{
			Field: typeErr.Field,
			Error: fmt.Sprintf("must be of type %s", typeErr.Type),
		}})
	}
	return errors.WrapValidation(msgInvalidPayload, err)
}

func hasExactly(raw map[string]json.RawMessage, fields []Field) bool {
	if len(raw) != len(fields) {
		return false
	}
	for _, f := range fields {
		if _, ok := raw[string(f)]; !ok {
			return false
		}
	}
	return true
}

func keys(raw map[string]json.RawMessage) []string {
	out := make([]string, 0, len(raw))
	for k := range raw {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
