package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	err := ValidationError("order must contain items")
	assert.Equal(t, "validation: order must contain items", err.Error())

	wrapped := InternalError("encode frame", fmt.Errorf("boom"))
	assert.Equal(t, "internal: encode frame: boom", wrapped.Error())
}

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := InternalError("encode frame", cause)
	require.ErrorIs(t, err, cause)
}

func TestError_HTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ValidationError("x").HTTPStatus())
	assert.Equal(t, http.StatusNotFound, NotFoundError("x").HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, InternalError("x", nil).HTTPStatus())
}

func TestError_WithContext(t *testing.T) {
	err := NotFoundError("order not found").WithContext("order_id", "42")
	assert.Equal(t, "42", err.Context["order_id"])
}

func TestIsType(t *testing.T) {
	err := ValidationError("bad item")
	assert.True(t, IsType(err, TypeValidation))
	assert.False(t, IsType(err, TypeNotFound))

	wrapped := fmt.Errorf("handler: %w", err)
	assert.True(t, IsType(wrapped, TypeValidation))

	assert.False(t, IsType(errors.New("plain"), TypeValidation))
}
