package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromErrorPassesThroughTypedErrors(t *testing.T) {
	err := Clone(ErrNotFound, "Doubt not found")

	got := FromError(fmt.Errorf("service: %w", err))

	assert.Equal(t, http.StatusNotFound, got.Status)
	assert.Equal(t, "Doubt not found", got.Message)
}

func TestFromErrorWrapsUnknownErrors(t *testing.T) {
	got := FromError(fmt.Errorf("disk full"))

	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.Equal(t, "disk full", got.Message)
}

func TestFromErrorNil(t *testing.T) {
	assert.Nil(t, FromError(nil))
}

func TestCloneDoesNotMutateOriginal(t *testing.T) {
	clone := Clone(ErrConflict, "Email already exists")

	assert.Equal(t, "Email already exists", clone.Message)
	assert.Equal(t, "conflict", ErrConflict.Message)
	assert.Equal(t, ErrConflict.Status, clone.Status)
}

func TestErrorStringIncludesWrapped(t *testing.T) {
	err := Wrap(fmt.Errorf("no such table"), ErrInternal.Code, ErrInternal.Status, "query doubts")

	assert.Equal(t, "query doubts: no such table", err.Error())
	assert.EqualError(t, err.Unwrap(), "no such table")
}
