package flow

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_Success(t *testing.T) {
	r := Success("uid-1")

	assert.False(t, r.Failed())
	assert.Equal(t, "uid-1", r.Value())
	assert.NoError(t, r.Cause())
	assert.Empty(t, r.Description())
}

func TestResult_Failure(t *testing.T) {
	r := Failure[string](ErrInvalidCredentials)

	assert.True(t, r.Failed())
	assert.Empty(t, r.Value())
	assert.ErrorIs(t, r.Cause(), ErrInvalidCredentials)
	assert.Equal(t, ErrInvalidCredentials.Error(), r.Description())
}

func TestResult_WrappedCauseMatchesSentinel(t *testing.T) {
	wrapped := fmt.Errorf("sign in: %w", ErrNetworkFailure)
	r := Failure[string](wrapped)

	assert.True(t, errors.Is(r.Cause(), ErrNetworkFailure))
	assert.Equal(t, wrapped.Error(), r.Description())
}

func TestResult_SuccessWithZeroValue(t *testing.T) {
	// Пустая строка успеха — легальный вариант (авто-верификация).
	r := Success("")

	assert.False(t, r.Failed())
	assert.Empty(t, r.Value())
}
