// Package schema compiles a JSON Schema (drafts 3/4 subset) into an
// in-memory tree and validates parsed JSON instances against it, producing
// structured error reports on failure instead of a bare boolean.
package schema

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Schema is a compiled schema node: a read-only view over a parsed JSON
// mapping, plus the already-parsed keyword validators recognized keys were
// turned into. Unrecognized keys are ignored at compile time. A Schema is
// built once (by Compile) and never mutated afterwards, so a single
// compiled Schema may be shared across concurrent Validate calls.
type Schema struct {
	// raw is the decoded JSON value this node was compiled from. It is kept
	// around for two reasons: resolving "#/..." pointers needs to walk the
	// generic document shape, and a schema reached through a "$ref" to an
	// external document becomes the new root for pointers inside it, so it
	// must carry its own raw form too.
	raw interface{}

	ref *string

	typ   *typeKeyword
	enum  *enumKeyword
	cnst  *constKeyword

	minLength *minLengthKeyword
	maxLength *maxLengthKeyword
	pattern   *patternKeyword
	format    *formatKeyword

	multipleOf       *multipleOfKeyword
	minimum          *minimumKeyword
	maximum          *maximumKeyword
	exclusiveMinimum bool
	exclusiveMaximum bool

	properties           propertiesKeyword
	patternProperties    patternPropertiesKeyword
	additionalProperties *additionalPropertiesKeyword
	propertyNames        *Schema
	required             requiredKeyword
	requiredDraft3       *bool
	dependencies         dependenciesKeyword
	minProperties        *minPropertiesKeyword
	maxProperties        *maxPropertiesKeyword

	items       *itemsKeyword
	minItems    *minItemsKeyword
	maxItems    *maxItemsKeyword
	uniqueItems bool

	allOf allOfKeyword
	anyOf anyOfKeyword
	not   *Schema
}

// Compile parses bytes as a JSON Schema document and builds its compiled
// form. The returned Schema is immutable and ready for Validate.
func Compile(bytes []byte) (*Schema, error) {
	var raw interface{}
	if err := json.Unmarshal(bytes, &raw); err != nil {
		return nil, errors.Wrap(err, "schema is not valid json")
	}

	return compileNode(raw)
}

// compileNode builds a Schema from an already-decoded JSON value. It is the
// compilation primitive every keyword that embeds a sub-schema (properties,
// items, allOf, ...) calls to compile its children, and it is also what
// resolveRef calls on the node a "$ref" points at.
func compileNode(raw interface{}) (*Schema, error) {
	object, ok := raw.(map[string]interface{})
	if !ok {
		return nil, &SchemaCompilationError{Reason: "a schema must be a json object"}
	}

	s := &Schema{raw: raw}

	if err := s.compileAnnotationAndType(object); err != nil {
		return nil, err
	}
	if err := s.compileStringKeywords(object); err != nil {
		return nil, err
	}
	if err := s.compileNumericKeywords(object); err != nil {
		return nil, err
	}
	if err := s.compileObjectKeywords(object); err != nil {
		return nil, err
	}
	if err := s.compileArrayKeywords(object); err != nil {
		return nil, err
	}
	if err := s.compileCombinatorKeywords(object); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Schema) compileAnnotationAndType(object map[string]interface{}) error {
	if v, ok := object["$ref"]; ok {
		refString, ok := v.(string)
		if !ok {
			return &SchemaCompilationError{Path: "$ref", Reason: "\"$ref\" must be a string"}
		}
		s.ref = &refString
	}

	if v, ok := object["type"]; ok {
		typ, err := compileTypeKeyword(v)
		if err != nil {
			return err
		}
		s.typ = typ
	}

	if v, ok := object["enum"]; ok {
		values, ok := v.([]interface{})
		if !ok {
			return &SchemaCompilationError{Path: "enum", Reason: "\"enum\" must be an array"}
		}
		s.enum = &enumKeyword{values: values}
	}

	if v, ok := object["const"]; ok {
		s.cnst = &constKeyword{value: v}
	}

	return nil
}

// fixedOrderValidators returns the slice of object/array/generic validators
// the dispatcher runs, in the order fixed by the dispatcher contract. Checks
// that recurse into sub-schemas order their own sub-checks internally (e.g.
// "properties" iterates its own map).
func (s *Schema) fixedOrderValidators() []func(interface{}, *Options) *ValidationError {
	return []func(interface{}, *Options) *ValidationError{
		s.validateNot,
		s.validateAllOf,
		s.validateAnyOf,
		s.validateDependencies,
		s.validateType,
		s.validateConst,
		s.validateEnum,
		s.validateNumericBounds,
		s.validateStringLength,
		s.validateStringPattern,
		s.validateStringFormat,
		s.validateProperties,
		s.validatePropertyCount,
		s.validatePropertyNames,
		s.validateArrayItems,
		s.validateArrayItemCount,
		s.validateArrayUniqueItems,
	}
}

// Validate checks instance against the schema. On success it returns nil;
// on failure it returns a *ValidationError describing the first check (in
// the fixed dispatcher order) that failed. An unresolvable "$ref" aborts
// validation the same way, since the engine cannot proceed without knowing
// the effective schema.
func (s *Schema) Validate(instance interface{}, opts ...Option) error {
	options := newOptions(s, opts)
	if err := dispatch(s, instance, options); err != nil {
		return err
	}
	return nil
}

// dispatch resolves s's "$ref" chain and then runs the fixed validator
// battery against instance, short-circuiting on the first error.
func dispatch(s *Schema, instance interface{}, opts *Options) *ValidationError {
	effective, resolved, err := resolveRef(s, *opts)
	if err != nil {
		return err
	}

	for _, validate := range effective.fixedOrderValidators() {
		if verr := validate(instance, &resolved); verr != nil {
			return verr
		}
	}

	return nil
}
