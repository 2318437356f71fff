package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/semmap/pkg/errors"
)

func TestParseError(t *testing.T) {
	err := errors.NewParseError("SEMMAP.md", 1, "missing project title")
	assert.Contains(t, err.Error(), "SEMMAP.md")
	assert.Contains(t, err.Error(), "line 1")
	assert.Contains(t, err.Error(), "missing project title")
	assert.True(t, errors.IsParseError(err))
	assert.False(t, errors.IsIOError(err))
}

func TestParseErrorWithoutFile(t *testing.T) {
	err := errors.NewParseError("", 3, "bad header")
	assert.Equal(t, "parse error at line 3: bad header", err.Error())
}

func TestIOError(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := errors.NewIOError("write", "SEMMAP.md", cause)
	assert.Contains(t, err.Error(), "write")
	assert.Contains(t, err.Error(), "SEMMAP.md")
	assert.True(t, errors.IsIOError(err))
	assert.ErrorIs(t, err, cause)
}

func TestNotFoundError(t *testing.T) {
	err := errors.NewNotFoundError("entry", "src/lib.rs")
	assert.True(t, errors.IsNotFound(err))
	assert.Contains(t, err.Error(), "src/lib.rs")
}

func TestValidationError(t *testing.T) {
	err := errors.NewValidationError("project_name", "", "must not be empty")
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "project_name")
}

func TestWrapIONil(t *testing.T) {
	assert.NoError(t, errors.WrapIO("read", "x", nil))
}

func TestWrapValidation(t *testing.T) {
	err := errors.WrapValidation("output", stderrors.New("unknown format: xml"))
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "output")
	assert.Contains(t, err.Error(), "unknown format: xml")

	assert.NoError(t, errors.WrapValidation("output", nil))
}
