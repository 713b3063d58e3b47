package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, IsDuplicateKey(gorm.ErrDuplicatedKey))
	assert.True(t, IsDuplicateKey(errors.New(`duplicate key value violates unique constraint "idx_badges_name"`)))
	assert.True(t, IsDuplicateKey(errors.New("UNIQUE constraint failed: badges.name")))
	assert.False(t, IsDuplicateKey(errors.New("connection refused")))
	assert.False(t, IsDuplicateKey(nil))
}

func TestNewDatabaseError_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		cause  error
		status int
	}{
		{"duplicate", gorm.ErrDuplicatedKey, http.StatusConflict},
		{"not found", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"connection", errors.New("dial tcp: connection refused"), http.StatusServiceUnavailable},
		{"generic", errors.New("something broke"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			apiErr := NewDatabaseError("create", "badge", tc.cause)
			assert.Equal(t, tc.status, apiErr.StatusCode)
			assert.ErrorIs(t, apiErr.Cause, tc.cause)
		})
	}
}

func TestApiErrUnwrap(t *testing.T) {
	err := NewAlreadyExists("badge")
	assert.True(t, errors.Is(err, ErrAlreadyExists))
	assert.Equal(t, http.StatusConflict, err.StatusCode)

	notFound := NewNotFound("project")
	assert.True(t, errors.Is(notFound, ErrNotFound))
}
