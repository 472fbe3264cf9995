package enumeration_test

import (
	"strconv"
	"testing"

	"github.com/broady/enumeration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainOf(t *testing.T) {
	assert.Equal(t, enumeration.DomainInteger, enumeration.DomainOf[int]())
	assert.Equal(t, enumeration.DomainInteger, enumeration.DomainOf[uint16]())
	assert.Equal(t, enumeration.DomainInteger, enumeration.DomainOf[level]())
	assert.Equal(t, enumeration.DomainText, enumeration.DomainOf[string]())
	assert.Equal(t, enumeration.DomainText, enumeration.DomainOf[hexCode]())

	assert.Equal(t, "integer", enumeration.DomainInteger.String())
	assert.Equal(t, "text", enumeration.DomainText.String())
	assert.Equal(t, "unknown", enumeration.Domain(9).String())
}

func TestParseKey(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		k, err := enumeration.ParseKey[int]("-42")
		require.NoError(t, err)
		assert.Equal(t, -42, k)
	})

	t.Run("named uint", func(t *testing.T) {
		k, err := enumeration.ParseKey[level]("200")
		require.NoError(t, err)
		assert.Equal(t, level(200), k)
	})

	t.Run("uint overflow", func(t *testing.T) {
		_, err := enumeration.ParseKey[level]("300")
		assert.ErrorIs(t, err, strconv.ErrRange)
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := enumeration.ParseKey[int64]("three")
		assert.ErrorIs(t, err, strconv.ErrSyntax)
	})

	t.Run("text", func(t *testing.T) {
		k, err := enumeration.ParseKey[hexCode]("#ABCDEF")
		require.NoError(t, err)
		assert.Equal(t, hexCode("#ABCDEF"), k)
	})
}
