package schema

import "regexp"

type propertiesKeyword map[string]*Schema

type patternPropertyEntry struct {
	pattern  string
	compiled *regexp.Regexp
	schema   *Schema
}

type patternPropertiesKeyword []patternPropertyEntry

type additionalPropertiesKeyword struct {
	forbidden bool
	schema    *Schema
}

type minPropertiesKeyword int
type maxPropertiesKeyword int

type dependencyEntry struct {
	names  []string
	schema *Schema
}

type dependenciesKeyword map[string]dependencyEntry

type requiredKeyword []string

func (s *Schema) compileObjectKeywords(object map[string]interface{}) error {
	if v, ok := object["properties"]; ok {
		props, ok := v.(map[string]interface{})
		if !ok {
			return &SchemaCompilationError{Path: "properties", Reason: "\"properties\" must be an object"}
		}
		compiled := make(propertiesKeyword, len(props))
		for name, rawSub := range props {
			sub, err := compileNode(rawSub)
			if err != nil {
				return err
			}
			compiled[name] = sub
		}
		s.properties = compiled
	}

	if v, ok := object["patternProperties"]; ok {
		patterns, ok := v.(map[string]interface{})
		if !ok {
			return &SchemaCompilationError{Path: "patternProperties", Reason: "\"patternProperties\" must be an object"}
		}
		compiled := make(patternPropertiesKeyword, 0, len(patterns))
		for pattern, rawSub := range patterns {
			re, err := regexp.Compile(pattern)
			if err != nil {
				return &SchemaCompilationError{Path: "patternProperties/" + pattern, Reason: err.Error()}
			}
			sub, err := compileNode(rawSub)
			if err != nil {
				return err
			}
			compiled = append(compiled, patternPropertyEntry{pattern: pattern, compiled: re, schema: sub})
		}
		s.patternProperties = compiled
	}

	if v, ok := object["additionalProperties"]; ok {
		switch val := v.(type) {
		case bool:
			if !val {
				s.additionalProperties = &additionalPropertiesKeyword{forbidden: true}
			}
		case map[string]interface{}:
			sub, err := compileNode(val)
			if err != nil {
				return err
			}
			s.additionalProperties = &additionalPropertiesKeyword{schema: sub}
		default:
			return &SchemaCompilationError{Path: "additionalProperties", Reason: "\"additionalProperties\" must be a boolean or a schema"}
		}
	}

	if v, ok := object["propertyNames"]; ok {
		sub, err := compileNode(v)
		if err != nil {
			return err
		}
		s.propertyNames = sub
	}

	if v, ok := object["required"]; ok {
		switch val := v.(type) {
		case []interface{}:
			names := make([]string, 0, len(val))
			for _, item := range val {
				name, ok := item.(string)
				if !ok {
					return &SchemaCompilationError{Path: "required", Reason: "\"required\" array entries must be strings"}
				}
				names = append(names, name)
			}
			s.required = names
		case bool:
			marker := val
			s.requiredDraft3 = &marker
		default:
			return &SchemaCompilationError{Path: "required", Reason: "\"required\" must be an array of strings (draft 4) or a boolean (draft 3)"}
		}
	}

	if v, ok := object["minProperties"]; ok {
		n, ok := v.(float64)
		if !ok || n < 0 {
			return &SchemaCompilationError{Path: "minProperties", Reason: "\"minProperties\" must be a non-negative integer"}
		}
		mp := minPropertiesKeyword(int(n))
		s.minProperties = &mp
	}

	if v, ok := object["maxProperties"]; ok {
		n, ok := v.(float64)
		if !ok || n < 0 {
			return &SchemaCompilationError{Path: "maxProperties", Reason: "\"maxProperties\" must be a non-negative integer"}
		}
		mp := maxPropertiesKeyword(int(n))
		s.maxProperties = &mp
	}

	if v, ok := object["dependencies"]; ok {
		deps, ok := v.(map[string]interface{})
		if !ok {
			return &SchemaCompilationError{Path: "dependencies", Reason: "\"dependencies\" must be an object"}
		}
		compiled := make(dependenciesKeyword, len(deps))
		for property, rawDep := range deps {
			switch dep := rawDep.(type) {
			case []interface{}:
				names := make([]string, 0, len(dep))
				for _, item := range dep {
					name, ok := item.(string)
					if !ok {
						return &SchemaCompilationError{Path: "dependencies/" + property, Reason: "dependency array entries must be strings"}
					}
					names = append(names, name)
				}
				compiled[property] = dependencyEntry{names: names}
			case map[string]interface{}:
				sub, err := compileNode(dep)
				if err != nil {
					return err
				}
				compiled[property] = dependencyEntry{schema: sub}
			default:
				return &SchemaCompilationError{Path: "dependencies/" + property, Reason: "dependency value must be an array of strings or a schema"}
			}
		}
		s.dependencies = compiled
	}

	return nil
}

// requiredNames resolves the required-property set per the active draft:
// a top-level "required" array (draft 4), or the union of property schemas
// marked "required": true (draft 3).
func (s *Schema) requiredNames(opts *Options) []string {
	if opts != nil && opts.Draft3Required {
		var names []string
		for name, sub := range s.properties {
			if sub.requiredDraft3 != nil && *sub.requiredDraft3 {
				names = append(names, name)
			}
		}
		return names
	}
	return s.required
}

// extraPropertyNames computes keys(instance) minus the declared property
// names and any name matched by a patternProperties regex.
func (s *Schema) extraPropertyNames(object map[string]interface{}) []string {
	var extra []string
	for name := range object {
		if _, declared := s.properties[name]; declared {
			continue
		}

		matched := false
		for _, entry := range s.patternProperties {
			if entry.compiled.MatchString(name) {
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		extra = append(extra, name)
	}
	return extra
}

// validateProperties implements object steps 1-5: required presence,
// declared properties, pattern properties (all aggregated into a single
// "properties" error if any fail), then - only once those all pass -
// additionalProperties.
func (s *Schema) validateProperties(instance interface{}, opts *Options) *ValidationError {
	object, ok := instance.(map[string]interface{})
	if !ok {
		return nil
	}

	propertyErrors := map[string]interface{}{}

	for _, name := range s.requiredNames(opts) {
		if _, present := object[name]; !present {
			propertyErrors[name] = newError(ErrMissingProperty, map[string]interface{}{"property": name})
		}
	}

	for name, sub := range s.properties {
		value, present := object[name]
		if !present || value == nil {
			continue
		}
		if err := dispatch(sub, value, opts); err != nil {
			propertyErrors[name] = err
		}
	}

	for _, entry := range s.patternProperties {
		var failing []string
		for name, value := range object {
			if !entry.compiled.MatchString(name) {
				continue
			}
			if err := dispatch(entry.schema, value, opts); err != nil {
				failing = append(failing, name)
			}
		}
		if len(failing) > 0 {
			propertyErrors[entry.pattern] = newError(ErrInvalidPatternProperties, map[string]interface{}{
				"pattern":    entry.pattern,
				"properties": failing,
			})
		}
	}

	if len(propertyErrors) > 0 {
		return newError(ErrProperties, map[string]interface{}{
			"data":       instance,
			"properties": propertyErrors,
		})
	}

	if s.additionalProperties == nil {
		return nil
	}

	extra := s.extraPropertyNames(object)

	if s.additionalProperties.forbidden {
		if len(extra) > 0 {
			return newError(ErrAdditionalProperties, map[string]interface{}{"property-names": extra})
		}
		return nil
	}

	if s.additionalProperties.schema != nil {
		invalid := map[string]interface{}{}
		for _, name := range extra {
			if err := dispatch(s.additionalProperties.schema, object[name], opts); err != nil {
				invalid[name] = err
			}
		}
		if len(invalid) > 0 {
			return newError(ErrInvalidAdditionalProperties, map[string]interface{}{
				"invalid-additional-properties": invalid,
				"data":                          instance,
			})
		}
	}

	return nil
}

// validatePropertyCount is object step 6: minProperties/maxProperties.
func (s *Schema) validatePropertyCount(instance interface{}, opts *Options) *ValidationError {
	object, ok := instance.(map[string]interface{})
	if !ok {
		return nil
	}

	if s.minProperties != nil && len(object) < int(*s.minProperties) {
		return newError(ErrTooFewProperties, map[string]interface{}{
			"data":    instance,
			"minimum": int(*s.minProperties),
		})
	}

	if s.maxProperties != nil && len(object) > int(*s.maxProperties) {
		return newError(ErrTooManyProperties, map[string]interface{}{
			"data":    instance,
			"maximum": int(*s.maxProperties),
		})
	}

	return nil
}

// validatePropertyNames is a supplemental check, outside the core error
// taxonomy: every instance key must itself validate against the
// "propertyNames" schema.
func (s *Schema) validatePropertyNames(instance interface{}, opts *Options) *ValidationError {
	if s.propertyNames == nil {
		return nil
	}

	object, ok := instance.(map[string]interface{})
	if !ok {
		return nil
	}

	for name := range object {
		if err := dispatch(s.propertyNames, name, opts); err != nil {
			return newError(ErrInvalidPropertyName, map[string]interface{}{
				"property-name": name,
				"error":         err,
			})
		}
	}

	return nil
}

// validateDependencies checks the "dependencies" keyword: non-object
// instances skip the check silently.
func (s *Schema) validateDependencies(instance interface{}, opts *Options) *ValidationError {
	if len(s.dependencies) == 0 {
		return nil
	}

	object, ok := instance.(map[string]interface{})
	if !ok {
		return nil
	}

	for property, entry := range s.dependencies {
		if _, present := object[property]; !present {
			continue
		}

		if entry.schema != nil {
			if err := dispatch(entry.schema, instance, opts); err != nil {
				return newError(ErrDependencyMismatch, map[string]interface{}{
					"dependency": map[string]interface{}{property: entry.schema.raw},
					"data":       instance,
				})
			}
			continue
		}

		for _, name := range entry.names {
			if _, present := object[name]; !present {
				return newError(ErrDependencyMismatch, map[string]interface{}{
					"dependency": map[string]interface{}{property: entry.names},
					"data":       instance,
				})
			}
		}
	}

	return nil
}
