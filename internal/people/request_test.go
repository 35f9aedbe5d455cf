package people

import (
	"testing"

	"swapi-server/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCreate(t *testing.T) {
	req, err := DecodeCreate([]byte(`{"name":"Luke Skywalker","homeworld":"/planets/1/","height":172,"mass":77,"hair_color":"blond"}`))
	require.NoError(t, err)

	assert.Equal(t, "Luke Skywalker", *req.Name)
	assert.Equal(t, "/planets/1/", *req.Homeworld)
	assert.Equal(t, 172, *req.Height)
	assert.Equal(t, 77, *req.Mass)
	assert.Nil(t, req.Created)
}

func TestDecodeCreateRejectsInvalidPayloads(t *testing.T) {
	tests := map[string]string{
		"malformed":     `{"name":`,
		"not an object": `["Luke"]`,
		"null":          `null`,
		"empty":         ``,
		"string height": `{"height":"172"}`,
		"float mass":    `{"mass":77.5}`,
		"trailing data": `{"name":"Luke"} {}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeCreate([]byte(body))

			require.Error(t, err)
			assert.Equal(t, errors.ErrorTypeValidation, errors.GetType(err))
			assert.Equal(t, "Provided payload is not valid", errors.ClientMessage(err))
		})
	}
}

func TestDecodeCreateNamesMistypedField(t *testing.T) {
	_, err := DecodeCreate([]byte(`{"height":"tall"}`))

	require.Error(t, err)
	require.Len(t, errors.GetFields(err), 1)
	assert.Equal(t, "height", errors.GetFields(err)[0].Field)
}

func TestDecodeUpdatePartial(t *testing.T) {
	req, err := DecodeUpdate([]byte(`{"mass":80,"name":"Luke"}`), Partial)
	require.NoError(t, err)

	assert.Equal(t, []Field{FieldName, FieldMass}, req.Fields())
	assert.Equal(t, 80, *req.Mass)
	assert.Nil(t, req.Height)
}

func TestDecodeUpdateFull(t *testing.T) {
	body := `{"name":"Luke","homeworld":"/planets/2/","height":172,"mass":77,"hair_color":"blond"}`

	req, err := DecodeUpdate([]byte(body), Full)
	require.NoError(t, err)
	assert.Equal(t, UpdatableFields, req.Fields())
}

func TestDecodeUpdateErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		mode UpdateMode
		msg  string
	}{
		{"malformed", `{"name"`, Partial, "Provide a valid JSON payload"},
		{"array", `[]`, Partial, "Provide a valid JSON payload"},
		{"unknown field", `{"eye_color":"blue"}`, Partial, "Unknown field: eye_color"},
		{"created is immutable", `{"created":"2020-01-01"}`, Partial, "Unknown field: created"},
		{"null value", `{"name":null}`, Partial, "Field name cannot be null"},
		{"mistyped", `{"height":"tall"}`, Partial, "Provided payload is not valid"},
		{"full missing key", `{"name":"Luke","height":1,"mass":1,"hair_color":"x"}`, Full, "Missing field in full update"},
		{"full extra key", `{"name":"Luke","homeworld":"/planets/1/","height":1,"mass":1,"hair_color":"x","created":"now"}`, Full, "Missing field in full update"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeUpdate([]byte(tt.body), tt.mode)

			require.Error(t, err)
			assert.Equal(t, errors.ErrorTypeValidation, errors.GetType(err))
			assert.Equal(t, tt.msg, errors.ClientMessage(err))
		})
	}
}
