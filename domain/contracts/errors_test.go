package contracts

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_MessageRendering(t *testing.T) {
	plain := NewPermissionError("not permitted")
	assert.Equal(t, "not permitted", plain.Error())

	detailed := NewValidationError("at least one target identifier is required", "a reason is required")
	assert.Equal(t, "validation failed: at least one target identifier is required; a reason is required", detailed.Error())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, ErrorKindValidation, KindOf(NewValidationError("bad")))
	assert.Equal(t, ErrorKindTransport, KindOf(NewTransportError("down", false)))
	assert.Equal(t, ErrorKindServer, KindOf(NewServerError(500, "boom")))
	assert.Equal(t, ErrorKind(""), KindOf(fmt.Errorf("plain")))
	assert.Equal(t, ErrorKind(""), KindOf(nil))
}

func TestKindOf_UnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("refresh stopped at page 2: %w", NewTransportError("connection reset", false))
	assert.Equal(t, ErrorKindTransport, KindOf(wrapped))
}

func TestIsTimeout(t *testing.T) {
	assert.True(t, IsTimeout(NewTransportError("deadline exceeded", true)))
	assert.False(t, IsTimeout(NewTransportError("connection refused", false)))
	assert.False(t, IsTimeout(NewServerError(504, "gateway timeout")))
	assert.False(t, IsTimeout(nil))
}
