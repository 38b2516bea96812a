package schema

// Recognized JSON Schema type tags.
const (
	TypeObject  = "object"
	TypeArray   = "array"
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
	TypeNull    = "null"
)

// typeKeyword holds the normalized set of tags "type" named, whether the
// schema wrote a single string or an array of strings.
type typeKeyword struct {
	tags []string
}

func compileTypeKeyword(raw interface{}) (*typeKeyword, error) {
	switch v := raw.(type) {
	case string:
		return &typeKeyword{tags: []string{v}}, nil
	case []interface{}:
		tags := make([]string, 0, len(v))
		for _, item := range v {
			tag, ok := item.(string)
			if !ok {
				return nil, &SchemaCompilationError{Path: "type", Reason: "\"type\" array entries must be strings"}
			}
			tags = append(tags, tag)
		}
		return &typeKeyword{tags: tags}, nil
	default:
		return nil, &SchemaCompilationError{Path: "type", Reason: "\"type\" must be a string or an array of strings"}
	}
}

// validateType checks the instance against "type". The value passes if it
// matches any of the named tags.
func (s *Schema) validateType(instance interface{}, opts *Options) *ValidationError {
	if s.typ == nil {
		return nil
	}

	for _, tag := range s.typ.tags {
		if matchesType(tag, instance) {
			return nil
		}
	}

	var expected interface{}
	if len(s.typ.tags) == 1 {
		expected = s.typ.tags[0]
	} else {
		expected = s.typ.tags
	}

	return newError(ErrWrongType, map[string]interface{}{
		"expected": expected,
		"data":     instance,
	})
}

func matchesType(tag string, instance interface{}) bool {
	switch tag {
	case TypeObject:
		_, ok := instance.(map[string]interface{})
		return ok
	case TypeArray:
		_, ok := instance.([]interface{})
		return ok
	case TypeString:
		_, ok := instance.(string)
		return ok
	case TypeBoolean:
		_, ok := instance.(bool)
		return ok
	case TypeNull:
		return instance == nil
	case TypeNumber:
		_, ok := instance.(float64)
		return ok
	case TypeInteger:
		v, ok := instance.(float64)
		return ok && v == float64(int64(v))
	default:
		return false
	}
}
