package validation

import (
	"testing"

	"swapi-server/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type droid struct {
	Name   string `json:"name" validate:"required,max=8"`
	Height *int   `json:"height" validate:"required,min=0"`
	Model  string `json:"model,omitempty" validate:"omitempty,min=2"`
}

func TestStructValid(t *testing.T) {
	height := 96

	assert.NoError(t, Struct(droid{Name: "R2-D2", Height: &height}, "invalid droid"))
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	err := Struct(droid{Model: "x"}, "invalid droid")
	require.Error(t, err)

	assert.Equal(t, errors.ErrorTypeValidation, errors.GetType(err))
	assert.Equal(t, "invalid droid", errors.ClientMessage(err))
	assert.ElementsMatch(t, []errors.FieldError{
		{Field: "name", Error: "is required"},
		{Field: "height", Error: "is required"},
		{Field: "model", Error: "must be at least 2 characters"},
	}, errors.GetFields(err))
}

func TestStructNumericBounds(t *testing.T) {
	height := -1

	err := Struct(droid{Name: "BB-8", Height: &height}, "invalid droid")

	assert.Equal(t, []errors.FieldError{{Field: "height", Error: "must be at least 0"}}, errors.GetFields(err))
}

func TestStructStringMax(t *testing.T) {
	height := 167

	err := Struct(droid{Name: "C-3PO the protocol droid", Height: &height}, "invalid droid")

	assert.Equal(t, []errors.FieldError{{Field: "name", Error: "must not exceed 8 characters"}}, errors.GetFields(err))
}
