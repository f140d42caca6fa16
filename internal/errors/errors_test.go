package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrNotFound, CodeOf(NotFound("missing %s", "thing")))
	assert.Equal(t, ErrConflict, CodeOf(Conflict("dup")))
	assert.Equal(t, ErrValidation, CodeOf(Validation("bad")))
	assert.Equal(t, ErrInternal, CodeOf(Internal("boom", nil)))
	assert.Equal(t, ErrInternal, CodeOf(errors.New("plain")))
	assert.Equal(t, ErrInternal, CodeOf(nil))
}

func TestCodeOfWrapped(t *testing.T) {
	wrapped := fmt.Errorf("list projects: %w", NotFound("project gone"))
	assert.Equal(t, ErrNotFound, CodeOf(wrapped))
	assert.True(t, IsNotFound(wrapped))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("query failed", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "query failed")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsConflict(Conflict("dup")))
	assert.False(t, IsConflict(NotFound("missing")))
	assert.True(t, IsValidation(Validation("bad")))
}
