package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyError_Error(t *testing.T) {
	err := newKeyError("DB_HOST", ErrMissingConfig, nil)
	assert.Equal(t, "DB_HOST environment variable does not set", err.Error())

	cause := newKeyError("ENABLE_ORM_LOGS", ErrMissingConfig, nil)
	err = newKeyError("ENABLE_ORM_LOGS", ErrInvalidBoolean, cause)
	assert.Equal(t,
		"ENABLE_ORM_LOGS environment variable is not a boolean: ENABLE_ORM_LOGS environment variable does not set",
		err.Error())
}

func TestKeyError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := newKeyError("DB_PORT", ErrInvalidNumber, cause)

	assert.ErrorIs(t, err, ErrInvalidNumber)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrMissingConfig)
	assert.Len(t, err.Unwrap(), 2)
	assert.Len(t, newKeyError("DB_PORT", ErrInvalidNumber, nil).Unwrap(), 1)
}
