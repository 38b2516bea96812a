package schema

import (
	"encoding/json"
	"reflect"
)

// enumKeyword is the parsed "enum" array: equality against it is
// structural, so values are compared with structurallyEqual rather than Go's
// native equality (which panics/mismatches on maps and slices).
type enumKeyword struct {
	values []interface{}
}

func (s *Schema) validateEnum(instance interface{}, opts *Options) *ValidationError {
	if s.enum == nil {
		return nil
	}

	for _, allowed := range s.enum.values {
		if structurallyEqual(allowed, instance) {
			return nil
		}
	}

	return newError(ErrInvalidEnumValue, map[string]interface{}{
		"allowed": s.enum.values,
		"data":    instance,
	})
}

// constKeyword is a single-value shorthand for "enum": structural equality
// against one value instead of a set.
type constKeyword struct {
	value interface{}
}

func (s *Schema) validateConst(instance interface{}, opts *Options) *ValidationError {
	if s.cnst == nil {
		return nil
	}

	if structurallyEqual(s.cnst.value, instance) {
		return nil
	}

	return newError(ErrInvalidEnumValue, map[string]interface{}{
		"allowed": []interface{}{s.cnst.value},
		"data":    instance,
	})
}

// structurallyEqual compares two decoded JSON values for equality as JSON
// Schema defines it: object key order and whitespace do not matter, but
// types and contents must match (1 is not equal to "1"). Numbers are
// compared by value as decoded float64s, so 1 and 1.0 are equal. The
// comparison is a recursive deep-equal over the decoded values.
func structurallyEqual(a, b interface{}) bool {
	switch av := a.(type) {
	case map[string]interface{}:
		bv, ok := b.(map[string]interface{})
		if !ok || len(av) != len(bv) {
			return false
		}
		for key, aItem := range av {
			bItem, ok := bv[key]
			if !ok || !structurallyEqual(aItem, bItem) {
				return false
			}
		}
		return true
	case []interface{}:
		bv, ok := b.([]interface{})
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !structurallyEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(a, b)
	}
}

// marshalCanonical is kept for callers (uniqueItems) that need a hashable
// representation of an arbitrary decoded value rather than a pairwise
// comparison.
func marshalCanonical(v interface{}) (string, error) {
	bytes, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}
