package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itayankri/gojsonschema/schema"
)

func TestValidateArrayItems(t *testing.T) {
	s, err := schema.Compile([]byte(`{"type": "array", "items": {"type": "number"}}`))
	require.NoError(t, err)

	assert.NoError(t, s.Validate([]interface{}{float64(1), float64(2)}))

	err = s.Validate([]interface{}{float64(1), "two"})
	require.Error(t, err)
	assert.Equal(t, schema.ErrArrayItems, err.(*schema.ValidationError).Kind())

	items := err.(*schema.ValidationError).Fields()["items"].([]interface{})
	require.Len(t, items, 1)
	entry := items[0].(map[string]interface{})
	assert.Equal(t, 1, entry["position"])
}

func TestValidateArrayItemCount(t *testing.T) {
	s, err := schema.Compile([]byte(`{"type": "array", "minItems": 1, "maxItems": 2}`))
	require.NoError(t, err)

	assert.Error(t, s.Validate([]interface{}{}))
	assert.NoError(t, s.Validate([]interface{}{float64(1)}))
	assert.Error(t, s.Validate([]interface{}{float64(1), float64(2), float64(3)}))
}

func TestValidateArrayUniqueItems(t *testing.T) {
	s, err := schema.Compile([]byte(`{"type": "array", "uniqueItems": true}`))
	require.NoError(t, err)

	assert.NoError(t, s.Validate([]interface{}{float64(1), float64(2), float64(3)}))

	err = s.Validate([]interface{}{float64(1), float64(2), float64(1)})
	require.Error(t, err)
	assert.Equal(t, schema.ErrDuplicateItemsNotAllowed, err.(*schema.ValidationError).Kind())
}

func TestValidateArrayUniqueItemsStructural(t *testing.T) {
	s, err := schema.Compile([]byte(`{"uniqueItems": true}`))
	require.NoError(t, err)

	dup := map[string]interface{}{"a": float64(1)}
	err = s.Validate([]interface{}{dup, map[string]interface{}{"a": float64(1)}})
	assert.Error(t, err)
}

func TestCompileItemsRejectsTupleForm(t *testing.T) {
	_, err := schema.Compile([]byte(`{"items": [{"type": "string"}, {"type": "number"}]}`))
	assert.Error(t, err)
}
