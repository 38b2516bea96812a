package schema

import "math"

type minimumKeyword float64
type maximumKeyword float64
type multipleOfKeyword float64

func (s *Schema) compileNumericKeywords(object map[string]interface{}) error {
	if v, ok := object["minimum"]; ok {
		n, ok := v.(float64)
		if !ok {
			return &SchemaCompilationError{Path: "minimum", Reason: "\"minimum\" must be a number"}
		}
		m := minimumKeyword(n)
		s.minimum = &m
	}

	if v, ok := object["maximum"]; ok {
		n, ok := v.(float64)
		if !ok {
			return &SchemaCompilationError{Path: "maximum", Reason: "\"maximum\" must be a number"}
		}
		m := maximumKeyword(n)
		s.maximum = &m
	}

	if v, ok := object["exclusiveMinimum"]; ok {
		b, ok := v.(bool)
		if !ok {
			return &SchemaCompilationError{Path: "exclusiveMinimum", Reason: "\"exclusiveMinimum\" must be a boolean"}
		}
		s.exclusiveMinimum = b
	}

	if v, ok := object["exclusiveMaximum"]; ok {
		b, ok := v.(bool)
		if !ok {
			return &SchemaCompilationError{Path: "exclusiveMaximum", Reason: "\"exclusiveMaximum\" must be a boolean"}
		}
		s.exclusiveMaximum = b
	}

	if v, ok := object["multipleOf"]; ok {
		n, ok := v.(float64)
		if !ok || n <= 0 {
			return &SchemaCompilationError{Path: "multipleOf", Reason: "\"multipleOf\" must be a positive number"}
		}
		m := multipleOfKeyword(n)
		s.multipleOf = &m
	}

	return nil
}

// validateNumericBounds covers "minimum"/"maximum" (with their exclusive
// flags) and "multipleOf". Per the skip-on-wrong-type policy, it succeeds
// silently for non-numeric instances - those are only rejected when "type"
// says the value must be numeric, and that check has already run.
func (s *Schema) validateNumericBounds(instance interface{}, opts *Options) *ValidationError {
	value, ok := instance.(float64)
	if !ok {
		return nil
	}

	if s.minimum != nil {
		min := float64(*s.minimum)
		if s.exclusiveMinimum {
			if !(value > min) {
				return outOfBoundsError(instance, "minimum", min, true)
			}
		} else if !(value >= min) {
			return outOfBoundsError(instance, "minimum", min, false)
		}
	}

	if s.maximum != nil {
		max := float64(*s.maximum)
		if s.exclusiveMaximum {
			if !(value < max) {
				return outOfBoundsError(instance, "maximum", max, true)
			}
		} else if value > max {
			return outOfBoundsError(instance, "maximum", max, false)
		}
	}

	if s.multipleOf != nil {
		divisor := float64(*s.multipleOf)
		if value != 0 {
			quotient := value / divisor
			if math.Abs(quotient-math.Round(quotient)) > 1e-9 {
				return newError(ErrNotMultipleOf, map[string]interface{}{
					"data":                  instance,
					"expected-multiple-of": divisor,
				})
			}
		}
	}

	return nil
}

func outOfBoundsError(instance interface{}, bound string, limit float64, exclusive bool) *ValidationError {
	return newError(ErrOutOfBounds, map[string]interface{}{
		"data":    instance,
		bound:     limit,
		"exclusive": exclusive,
	})
}
