package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itayankri/gojsonschema/schema"
)

func TestValidateBasicType(t *testing.T) {
	s, err := schema.Compile([]byte(`{"type": "string"}`))
	require.NoError(t, err)

	assert.NoError(t, s.Validate("hello"))

	err = s.Validate(float64(1))
	require.Error(t, err)

	verr, ok := err.(*schema.ValidationError)
	require.True(t, ok)
	assert.Equal(t, schema.ErrWrongType, verr.Kind())
}

func TestValidateTypeArray(t *testing.T) {
	s, err := schema.Compile([]byte(`{"type": ["string", "null"]}`))
	require.NoError(t, err)

	assert.NoError(t, s.Validate("hello"))
	assert.NoError(t, s.Validate(nil))
	assert.Error(t, s.Validate(float64(3)))
}

func TestValidateEnum(t *testing.T) {
	s, err := schema.Compile([]byte(`{"enum": ["red", "green", "blue"]}`))
	require.NoError(t, err)

	assert.NoError(t, s.Validate("red"))

	err = s.Validate("purple")
	require.Error(t, err)
	assert.Equal(t, schema.ErrInvalidEnumValue, err.(*schema.ValidationError).Kind())
}

func TestValidateConst(t *testing.T) {
	s, err := schema.Compile([]byte(`{"const": 7}`))
	require.NoError(t, err)

	assert.NoError(t, s.Validate(float64(7)))
	assert.Error(t, s.Validate(float64(8)))
}

func TestDispatchOrderNotBeforeType(t *testing.T) {
	// "not" runs ahead of "type" in the fixed order, so a value that both
	// "not" forbids and "type" rejects (true here) is reported as "not".
	s, err := schema.Compile([]byte(`{"type": "string", "not": {"enum": ["blocked", true]}}`))
	require.NoError(t, err)

	err = s.Validate("blocked")
	require.Error(t, err)
	assert.Equal(t, schema.ErrShouldNotMatch, err.(*schema.ValidationError).Kind())

	err = s.Validate(true)
	require.Error(t, err)
	assert.Equal(t, schema.ErrShouldNotMatch, err.(*schema.ValidationError).Kind())

	err = s.Validate(float64(1))
	require.Error(t, err)
	assert.Equal(t, schema.ErrWrongType, err.(*schema.ValidationError).Kind())
}
