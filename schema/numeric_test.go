package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itayankri/gojsonschema/schema"
)

func TestValidateNumericBounds(t *testing.T) {
	s, err := schema.Compile([]byte(`{"minimum": 0, "maximum": 10}`))
	require.NoError(t, err)

	assert.NoError(t, s.Validate(float64(0)))
	assert.NoError(t, s.Validate(float64(10)))
	assert.Error(t, s.Validate(float64(-1)))
	assert.Error(t, s.Validate(float64(11)))
}

func TestValidateExclusiveBounds(t *testing.T) {
	s, err := schema.Compile([]byte(`{"minimum": 0, "exclusiveMinimum": true}`))
	require.NoError(t, err)

	assert.Error(t, s.Validate(float64(0)))
	assert.NoError(t, s.Validate(float64(0.0001)))
}

func TestValidateMultipleOf(t *testing.T) {
	s, err := schema.Compile([]byte(`{"multipleOf": 2.5}`))
	require.NoError(t, err)

	assert.NoError(t, s.Validate(float64(5)))
	assert.NoError(t, s.Validate(float64(0)))
	assert.Error(t, s.Validate(float64(6)))
}

func TestValidateNumericBoundsSkipsNonNumbers(t *testing.T) {
	s, err := schema.Compile([]byte(`{"minimum": 5}`))
	require.NoError(t, err)

	assert.NoError(t, s.Validate("not a number"))
}
