package schema

type allOfKeyword []*Schema
type anyOfKeyword []*Schema

func (s *Schema) compileCombinatorKeywords(object map[string]interface{}) error {
	if v, ok := object["allOf"]; ok {
		schemas, err := compileSchemaList(v, "allOf")
		if err != nil {
			return err
		}
		s.allOf = schemas
	}

	if v, ok := object["anyOf"]; ok {
		schemas, err := compileSchemaList(v, "anyOf")
		if err != nil {
			return err
		}
		s.anyOf = schemas
	}

	if v, ok := object["not"]; ok {
		sub, err := compileNode(v)
		if err != nil {
			return err
		}
		s.not = sub
	}

	return nil
}

func compileSchemaList(v interface{}, path string) ([]*Schema, error) {
	arr, ok := v.([]interface{})
	if !ok {
		return nil, &SchemaCompilationError{Path: path, Reason: "\"" + path + "\" must be an array of schemas"}
	}

	schemas := make([]*Schema, 0, len(arr))
	for _, rawSub := range arr {
		sub, err := compileNode(rawSub)
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, sub)
	}
	return schemas, nil
}

func rawForms(schemas []*Schema) []interface{} {
	raw := make([]interface{}, len(schemas))
	for i, sub := range schemas {
		raw[i] = sub.raw
	}
	return raw
}

// validateNot succeeds exactly when the sub-schema fails.
func (s *Schema) validateNot(instance interface{}, opts *Options) *ValidationError {
	if s.not == nil {
		return nil
	}
	if err := dispatch(s.not, instance, opts); err != nil {
		return nil
	}
	return newError(ErrShouldNotMatch, map[string]interface{}{
		"data":   instance,
		"schema": s.not.raw,
	})
}

// validateAllOf fails on the first branch that fails; it does not aggregate
// per-branch errors.
func (s *Schema) validateAllOf(instance interface{}, opts *Options) *ValidationError {
	if len(s.allOf) == 0 {
		return nil
	}
	for _, sub := range s.allOf {
		if err := dispatch(sub, instance, opts); err != nil {
			return newError(ErrDoesNotMatchAllOf, map[string]interface{}{
				"data":    instance,
				"schemas": rawForms(s.allOf),
			})
		}
	}
	return nil
}

// validateAnyOf succeeds as soon as one branch matches.
func (s *Schema) validateAnyOf(instance interface{}, opts *Options) *ValidationError {
	if len(s.anyOf) == 0 {
		return nil
	}
	for _, sub := range s.anyOf {
		if err := dispatch(sub, instance, opts); err == nil {
			return nil
		}
	}
	return newError(ErrDoesNotMatchAnyOf, map[string]interface{}{
		"data":    instance,
		"schemas": rawForms(s.anyOf),
	})
}
