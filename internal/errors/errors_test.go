package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := NewEntityError("catalog.find-product", "product", "vpc", ErrNotFound)
	assert.Contains(t, err.Error(), "catalog.find-product")
	assert.Contains(t, err.Error(), "vpc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoteWrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Remote("storage.put", cause)
	require.Error(t, err)
	assert.True(t, IsRemoteFailure(err))
	assert.ErrorIs(t, err, cause)
}

func TestClassifiers(t *testing.T) {
	invalid := NewError("op", fmt.Errorf("%w: bad", ErrInvalidInput))
	assert.True(t, IsInvalidInput(invalid))
	assert.False(t, IsNotFound(invalid))

	drift := NewError("op", fmt.Errorf("%w: drift", ErrConfigInconsistent))
	assert.True(t, IsConfigInconsistent(drift))
	assert.False(t, IsRemoteFailure(drift))
}

func TestWithEntityPreservesChain(t *testing.T) {
	err := Remote("catalog.delete-product", errors.New("denied")).WithEntity("product", "vpc")
	assert.True(t, IsRemoteFailure(err))
	assert.Contains(t, err.Error(), "vpc")
}
