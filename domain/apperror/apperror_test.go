package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"streamhub/domain/apperror"
)

func TestKindOf(t *testing.T) {
	err := apperror.New(apperror.NotFound, "video does not exist")
	assert.Equal(t, apperror.NotFound, apperror.KindOf(err))

	wrapped := apperror.Wrap(apperror.Conflict, "username taken", errors.New("duplicate key"))
	assert.Equal(t, apperror.Conflict, apperror.KindOf(wrapped))

	assert.Equal(t, apperror.Internal, apperror.KindOf(errors.New("driver exploded")))
}

func TestMessageOf_HidesInternals(t *testing.T) {
	assert.Equal(t, "video does not exist",
		apperror.MessageOf(apperror.New(apperror.NotFound, "video does not exist")))

	// Unclassified errors must not leak store details to clients.
	assert.Equal(t, "Internal server error",
		apperror.MessageOf(errors.New("connection refused to 10.0.0.5:27017")))
}

func TestStatus(t *testing.T) {
	tests := []struct {
		kind   apperror.Kind
		status int
	}{
		{apperror.NotFound, http.StatusNotFound},
		{apperror.Unauthorized, http.StatusUnauthorized},
		{apperror.Forbidden, http.StatusForbidden},
		{apperror.InvalidInput, http.StatusBadRequest},
		{apperror.Conflict, http.StatusConflict},
		{apperror.Internal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.kind.Status())
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := apperror.Wrap(apperror.Internal, "wrapped", cause)
	assert.True(t, errors.Is(err, cause))
}
