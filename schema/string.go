package schema

import (
	"regexp"
	"unicode/utf8"

	"github.com/itayankri/gojsonschema/schema/formatchecker"
)

type minLengthKeyword int
type maxLengthKeyword int

type patternKeyword struct {
	raw      string
	compiled *regexp.Regexp
}

type formatKeyword string

func (s *Schema) compileStringKeywords(object map[string]interface{}) error {
	if v, ok := object["minLength"]; ok {
		n, ok := v.(float64)
		if !ok || n < 0 {
			return &SchemaCompilationError{Path: "minLength", Reason: "\"minLength\" must be a non-negative integer"}
		}
		ml := minLengthKeyword(int(n))
		s.minLength = &ml
	}

	if v, ok := object["maxLength"]; ok {
		n, ok := v.(float64)
		if !ok || n < 0 {
			return &SchemaCompilationError{Path: "maxLength", Reason: "\"maxLength\" must be a non-negative integer"}
		}
		ml := maxLengthKeyword(int(n))
		s.maxLength = &ml
	}

	if v, ok := object["pattern"]; ok {
		raw, ok := v.(string)
		if !ok {
			return &SchemaCompilationError{Path: "pattern", Reason: "\"pattern\" must be a string"}
		}
		compiled, err := regexp.Compile(raw)
		if err != nil {
			return &SchemaCompilationError{Path: "pattern", Reason: err.Error()}
		}
		s.pattern = &patternKeyword{raw: raw, compiled: compiled}
	}

	if v, ok := object["format"]; ok {
		raw, ok := v.(string)
		if !ok {
			return &SchemaCompilationError{Path: "format", Reason: "\"format\" must be a string"}
		}
		f := formatKeyword(raw)
		s.format = &f
	}

	return nil
}

// validateStringLength covers "minLength"/"maxLength", counted in Unicode
// code points rather than bytes.
func (s *Schema) validateStringLength(instance interface{}, opts *Options) *ValidationError {
	str, ok := instance.(string)
	if !ok {
		return nil
	}

	length := utf8.RuneCountInString(str)

	if s.minLength != nil && length < int(*s.minLength) {
		return newError(ErrStringTooShort, map[string]interface{}{
			"data":    instance,
			"minimum": int(*s.minLength),
		})
	}

	if s.maxLength != nil && length > int(*s.maxLength) {
		return newError(ErrStringTooLong, map[string]interface{}{
			"data":    instance,
			"maximum": int(*s.maxLength),
		})
	}

	return nil
}

// validateStringPattern runs "pattern" in unanchored ("find") mode.
func (s *Schema) validateStringPattern(instance interface{}, opts *Options) *ValidationError {
	if s.pattern == nil {
		return nil
	}

	str, ok := instance.(string)
	if !ok {
		return nil
	}

	if s.pattern.compiled.MatchString(str) {
		return nil
	}

	return newError(ErrStringDoesNotMatchPattern, map[string]interface{}{
		"data":    instance,
		"pattern": s.pattern.raw,
	})
}

// validateStringFormat validates "format". Only "date-time" affects the
// verdict; any other format name is reported to the diagnostic sink and
// otherwise ignored.
func (s *Schema) validateStringFormat(instance interface{}, opts *Options) *ValidationError {
	if s.format == nil {
		return nil
	}

	str, ok := instance.(string)
	if !ok {
		return nil
	}

	switch string(*s.format) {
	case "date-time":
		if err := formatchecker.IsValidDateTime(str); err != nil {
			return newError(ErrWrongFormat, map[string]interface{}{
				"data":   instance,
				"format": "date-time",
				"reason": err.Error(),
			})
		}
	default:
		if opts != nil && opts.Logger != nil {
			opts.Logger.Printf("jsonschema: unsupported format %q, ignoring", string(*s.format))
		}
	}

	return nil
}
