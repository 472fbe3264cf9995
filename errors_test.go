package enumeration_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/broady/enumeration"
	"github.com/broady/enumeration/internal/testfixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyError(t *testing.T) {
	err := &enumeration.KeyError{Type: "Level", Key: "7", Err: enumeration.ErrUnknownKey}

	assert.Equal(t, `enumeration Level: key "7": unknown key`, err.Error())
	assert.ErrorIs(t, err, enumeration.ErrUnknownKey)
	assert.NotErrorIs(t, err, enumeration.ErrInvalidKey)
}

func TestKeyError_WrappedCause(t *testing.T) {
	_, err := testfixtures.Permissions.Parse("many")
	require.Error(t, err)

	var ke *enumeration.KeyError
	require.ErrorAs(t, err, &ke)
	assert.Equal(t, "many", ke.Key)
	assert.ErrorIs(t, err, enumeration.ErrInvalidKey)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
	assert.False(t, errors.Is(err, enumeration.ErrUnknownKey))
}
