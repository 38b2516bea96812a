package schema

import (
	"io/ioutil"
	"strings"

	"github.com/itayankri/gojsonschema/jsonpointer"
)

// defaultFileRefResolver treats the uri as a filesystem path, reads the
// file and compiles it as a schema. It returns ok=false if the file cannot
// be read or parsed, which the caller reports as an unresolvable-ref.
func defaultFileRefResolver(uri string) (*Schema, bool) {
	bytes, err := ioutil.ReadFile(uri)
	if err != nil {
		return nil, false
	}

	schema, err := Compile(bytes)
	if err != nil {
		return nil, false
	}

	return schema, true
}

// resolveRef follows a schema's "$ref" chain until it reaches a schema with
// no "$ref" of its own, per the four cases of the reference resolver
// contract: absent, "#", a JSON Pointer ("#/..."), or a URI reference.
// Returns the effective schema together with the Options a validator
// further down should use - unchanged, except that following a URI ref
// rebinds RootSchema to the loaded document.
func resolveRef(s *Schema, opts Options) (*Schema, Options, *ValidationError) {
	return resolveRefChain(s, opts, map[string]bool{})
}

func resolveRefChain(s *Schema, opts Options, seen map[string]bool) (*Schema, Options, *ValidationError) {
	if s.ref == nil {
		return s, opts, nil
	}

	ref := *s.ref

	switch {
	case ref == "#":
		if opts.RootSchema == nil {
			return nil, opts, unresolvableRef(ref, "no root schema bound for \"#\"")
		}
		return opts.RootSchema, opts, nil

	case strings.HasPrefix(ref, "#/"):
		return resolvePointerRef(ref, opts, seen)

	default:
		return resolveURIRef(ref, opts, seen)
	}
}

func resolvePointerRef(ref string, opts Options, seen map[string]bool) (*Schema, Options, *ValidationError) {
	if seen[ref] {
		return nil, opts, unresolvableRef(ref, "cyclic pointer reference")
	}
	seen[ref] = true

	if opts.RootSchema == nil {
		return nil, opts, unresolvableRef(ref, "no root schema bound for pointer reference")
	}

	node, err := jsonpointer.Evaluate(opts.RootSchema.raw, ref[1:])
	if err != nil {
		return nil, opts, unresolvableRef(ref, err.Error())
	}

	sub, cerr := compileNode(node)
	if cerr != nil {
		return nil, opts, unresolvableRef(ref, cerr.Error())
	}

	return resolveRefChain(sub, opts, seen)
}

func resolveURIRef(ref string, opts Options, seen map[string]bool) (*Schema, Options, *ValidationError) {
	if seen[ref] {
		return nil, opts, unresolvableRef(ref, "cyclic reference")
	}
	seen[ref] = true

	resolver := opts.RefResolver
	if resolver == nil {
		resolver = defaultFileRefResolver
	}

	loaded, ok := resolver(ref)
	if !ok {
		return nil, opts, unresolvableRef(ref, "external schema could not be loaded")
	}

	// The loaded document becomes the new root: pointer refs encountered
	// inside it resolve relative to it, not to the schema that referenced it.
	opts.RootSchema = loaded

	return resolveRefChain(loaded, opts, seen)
}
