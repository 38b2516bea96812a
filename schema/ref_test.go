package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itayankri/gojsonschema/schema"
)

func TestValidateSelfRef(t *testing.T) {
	// A recursive "linked list" shape: every "next" is either null or
	// another node of the same shape, referenced back to the document root.
	s, err := schema.Compile([]byte(`{
		"type": "object",
		"properties": {
			"value": {"type": "number"},
			"next": {"type": ["object", "null"], "$ref": "#"}
		}
	}`))
	require.NoError(t, err)

	valid := map[string]interface{}{
		"value": float64(1),
		"next": map[string]interface{}{
			"value": float64(2),
			"next":  nil,
		},
	}
	assert.NoError(t, s.Validate(valid))

	invalid := map[string]interface{}{
		"value": float64(1),
		"next": map[string]interface{}{
			"value": "not a number",
		},
	}
	assert.Error(t, s.Validate(invalid))
}

func TestValidatePointerRef(t *testing.T) {
	s, err := schema.Compile([]byte(`{
		"definitions": {
			"positiveInteger": {"type": "integer", "minimum": 0}
		},
		"type": "object",
		"properties": {
			"age": {"$ref": "#/definitions/positiveInteger"}
		}
	}`))
	require.NoError(t, err)

	assert.NoError(t, s.Validate(map[string]interface{}{"age": float64(30)}))

	err = s.Validate(map[string]interface{}{"age": float64(-1)})
	require.Error(t, err)
}

func TestValidateExternalRef(t *testing.T) {
	target, err := schema.Compile([]byte(`{"type": "string"}`))
	require.NoError(t, err)

	s, err := schema.Compile([]byte(`{"$ref": "external.json"}`))
	require.NoError(t, err)

	resolver := func(uri string) (*schema.Schema, bool) {
		if uri == "external.json" {
			return target, true
		}
		return nil, false
	}

	assert.NoError(t, s.Validate("hello", schema.WithRefResolver(resolver)))

	err = s.Validate(float64(1), schema.WithRefResolver(resolver))
	assert.Error(t, err)
}

func TestValidateUnresolvableRef(t *testing.T) {
	s, err := schema.Compile([]byte(`{"$ref": "missing.json"}`))
	require.NoError(t, err)

	resolver := func(uri string) (*schema.Schema, bool) { return nil, false }

	err = s.Validate("anything", schema.WithRefResolver(resolver))
	require.Error(t, err)
	assert.Equal(t, schema.ErrUnresolvableRef, err.(*schema.ValidationError).Kind())
}
