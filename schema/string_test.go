package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itayankri/gojsonschema/schema"
)

func TestValidateStringLength(t *testing.T) {
	s, err := schema.Compile([]byte(`{"minLength": 2, "maxLength": 4}`))
	require.NoError(t, err)

	assert.NoError(t, s.Validate("ab"))
	assert.NoError(t, s.Validate("abcd"))
	assert.Error(t, s.Validate("a"))
	assert.Error(t, s.Validate("abcde"))
}

func TestValidateStringLengthCountsCodePoints(t *testing.T) {
	s, err := schema.Compile([]byte(`{"minLength": 3, "maxLength": 3}`))
	require.NoError(t, err)

	assert.NoError(t, s.Validate("日本語"))
}

func TestValidateStringPattern(t *testing.T) {
	s, err := schema.Compile([]byte(`{"pattern": "^[a-z]+$"}`))
	require.NoError(t, err)

	assert.NoError(t, s.Validate("hello"))
	assert.Error(t, s.Validate("Hello"))
}

func TestValidateStringFormatDateTime(t *testing.T) {
	s, err := schema.Compile([]byte(`{"format": "date-time"}`))
	require.NoError(t, err)

	assert.NoError(t, s.Validate("2018-11-13T20:20:39Z"))
	assert.Error(t, s.Validate("not-a-date"))
}

func TestValidateStringFormatUnsupportedIsIgnored(t *testing.T) {
	s, err := schema.Compile([]byte(`{"format": "email"}`))
	require.NoError(t, err)

	assert.NoError(t, s.Validate("not-an-email-but-passes-anyway"))
}
