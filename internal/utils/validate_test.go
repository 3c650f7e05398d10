package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"gitlab.com/codeduel-2025.net/internal/static/errs"
)

func TestValidateCode(t *testing.T) {
	assert.ErrorIs(t, ValidateCode("", 100), errs.CodeRequired)
	assert.ErrorIs(t, ValidateCode(strings.Repeat("a", 101), 100), errs.CodeTooLarge)
	assert.NoError(t, ValidateCode(strings.Repeat("a", 100), 100))
	assert.NoError(t, ValidateCode("print(1)", 100))
}

func TestValidateLanguage(t *testing.T) {
	assert.NoError(t, ValidateLanguage("python"))
	assert.NoError(t, ValidateLanguage("javascript"))
	assert.NoError(t, ValidateLanguage("java"))
	assert.ErrorIs(t, ValidateLanguage("cobol"), errs.UnsupportedLanguage)
	assert.ErrorIs(t, ValidateLanguage(""), errs.UnsupportedLanguage)
}

func TestValidRoomCode(t *testing.T) {
	assert.True(t, ValidRoomCode("ABC123"))
	assert.True(t, ValidRoomCode("ZZZZZZ"))
	assert.False(t, ValidRoomCode("abc123"))
	assert.False(t, ValidRoomCode("ABC12"))
	assert.False(t, ValidRoomCode("ABC1234"))
	assert.False(t, ValidRoomCode("ABC-12"))
	assert.False(t, ValidRoomCode(""))
}
