package errors

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetType(t *testing.T) {
	assert.Equal(t, ErrorTypeNotFound, GetType(NotFoundf("planet %d", 3)))
	assert.Equal(t, ErrorTypeValidation, GetType(Validation("bad")))
	assert.Equal(t, ErrorTypeMethodNotAllowed, GetType(MethodNotAllowed("TRACE")))
	assert.Equal(t, ErrorTypeInternal, GetType(errors.New("plain")))
}

func TestGetTypeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("service: %w", Forbidden("nope"))

	assert.Equal(t, ErrorTypeForbidden, GetType(err))
}

func TestWrapKeepsCause(t *testing.T) {
	err := WrapInternal("failed to get people", sql.ErrConnDone)

	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.Equal(t, "failed to get people: sql: connection is already closed", err.Error())
}

func TestClientMessage(t *testing.T) {
	assert.Equal(t, "Could not find planet with id: 9", ClientMessage(NotFoundf("Could not find planet with id: %d", 9)))
	assert.Equal(t, "Provided payload is not valid", ClientMessage(WrapValidation("Provided payload is not valid", errors.New("json: cannot unmarshal"))))
	assert.Equal(t, "Invalid HTTP method", ClientMessage(MethodNotAllowed("TRACE")))
	assert.Equal(t, "Internal server error", ClientMessage(WrapInternal("query failed", errors.New("conn reset"))))
	assert.Equal(t, "Internal server error", ClientMessage(errors.New("boom")))
}

func TestGetFields(t *testing.T) {
	fields := []FieldError{{Field: "name", Error: "is required"}}

	assert.Equal(t, fields, GetFields(ValidationFields("Provided payload is not valid", fields)))
	assert.Nil(t, GetFields(Validation("bad")))
	assert.Nil(t, GetFields(errors.New("plain")))
}
