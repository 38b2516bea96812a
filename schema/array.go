package schema

type itemsKeyword struct {
	schema *Schema
}

type minItemsKeyword int
type maxItemsKeyword int

func (s *Schema) compileArrayKeywords(object map[string]interface{}) error {
	if v, ok := object["items"]; ok {
		sub, ok := v.(map[string]interface{})
		if !ok {
			return &SchemaCompilationError{
				Path:   "items",
				Reason: "\"items\" must be a single schema; the tuple (array-of-schemas) form is not supported",
			}
		}
		compiled, err := compileNode(sub)
		if err != nil {
			return err
		}
		s.items = &itemsKeyword{schema: compiled}
	}

	if v, ok := object["minItems"]; ok {
		n, ok := v.(float64)
		if !ok || n < 0 {
			return &SchemaCompilationError{Path: "minItems", Reason: "\"minItems\" must be a non-negative integer"}
		}
		mi := minItemsKeyword(int(n))
		s.minItems = &mi
	}

	if v, ok := object["maxItems"]; ok {
		n, ok := v.(float64)
		if !ok || n < 0 {
			return &SchemaCompilationError{Path: "maxItems", Reason: "\"maxItems\" must be a non-negative integer"}
		}
		mi := maxItemsKeyword(int(n))
		s.maxItems = &mi
	}

	if v, ok := object["uniqueItems"]; ok {
		b, ok := v.(bool)
		if !ok {
			return &SchemaCompilationError{Path: "uniqueItems", Reason: "\"uniqueItems\" must be a boolean"}
		}
		s.uniqueItems = b
	}

	return nil
}

// validateArrayItems checks every element against the single "items"
// schema, collecting per-index failures with an added "position" field.
func (s *Schema) validateArrayItems(instance interface{}, opts *Options) *ValidationError {
	if s.items == nil {
		return nil
	}

	array, ok := instance.([]interface{})
	if !ok {
		return nil
	}

	var itemErrors []interface{}
	for index, elem := range array {
		if err := dispatch(s.items.schema, elem, opts); err != nil {
			itemErrors = append(itemErrors, map[string]interface{}{
				"position": index,
				"error":    err,
			})
		}
	}

	if len(itemErrors) > 0 {
		return newError(ErrArrayItems, map[string]interface{}{
			"data":  instance,
			"items": itemErrors,
		})
	}

	return nil
}

func (s *Schema) validateArrayItemCount(instance interface{}, opts *Options) *ValidationError {
	array, ok := instance.([]interface{})
	if !ok {
		return nil
	}

	if s.minItems != nil && len(array) < int(*s.minItems) {
		return newError(ErrWrongNumberOfElements, map[string]interface{}{
			"data":    instance,
			"minimum": int(*s.minItems),
			"actual":  len(array),
		})
	}

	if s.maxItems != nil && len(array) > int(*s.maxItems) {
		return newError(ErrWrongNumberOfElements, map[string]interface{}{
			"data":    instance,
			"maximum": int(*s.maxItems),
			"actual":  len(array),
		})
	}

	return nil
}

// validateArrayUniqueItems reports every element equal to an earlier one
// (by structural equality), once per duplicate value.
func (s *Schema) validateArrayUniqueItems(instance interface{}, opts *Options) *ValidationError {
	if !s.uniqueItems {
		return nil
	}

	array, ok := instance.([]interface{})
	if !ok {
		return nil
	}

	seen := make(map[string]bool, len(array))
	reported := make(map[string]bool)
	var duplicates []interface{}

	for _, item := range array {
		key, err := marshalCanonical(item)
		if err != nil {
			continue
		}

		if seen[key] {
			if !reported[key] {
				reported[key] = true
				duplicates = append(duplicates, item)
			}
			continue
		}

		seen[key] = true
	}

	if len(duplicates) > 0 {
		return newError(ErrDuplicateItemsNotAllowed, map[string]interface{}{
			"duplicates": duplicates,
		})
	}

	return nil
}
