package schema

import (
	"log"
	"os"
)

// RefResolver loads the schema an external ("$ref": "some-uri#/...") points
// at. It returns ok=false when the schema could not be found or read; the
// dispatcher turns that into an unresolvable-ref error.
type RefResolver func(uri string) (*Schema, bool)

// Logger is the diagnostic sink an unsupported "format" string is reported
// to. It is never used for anything that affects the validation verdict.
type Logger interface {
	Printf(format string, args ...interface{})
}

func defaultLogger() Logger {
	return log.New(os.Stderr, "", 0)
}

// Options configures a single Validate call: where "#" and "#/..." refs are
// rooted, how a "some-uri#/..." ref is fetched, and which "required"
// semantics (draft 3 or draft 4) apply. A Schema is built once and is
// read-only; Options is what lets the same compiled Schema be validated
// against under different resolvers/roots without recompiling it.
type Options struct {
	RootSchema     *Schema
	RefResolver    RefResolver
	Draft3Required bool
	Logger         Logger
}

// Option configures Options when calling Schema.Validate. Mirrors the
// With*-chain idiom used to configure compilers/encoders elsewhere in the
// ecosystem, just expressed as functional options instead of chained setter
// methods, since Options here is a per-call value, not a long-lived object.
type Option func(*Options)

// WithRefResolver overrides the default file-based external schema fetcher.
func WithRefResolver(resolver RefResolver) Option {
	return func(o *Options) { o.RefResolver = resolver }
}

// WithDraft3Required switches "required" collection to draft 3 semantics:
// a property schema carrying "required": true, rather than a top-level
// "required" array on the enclosing object schema.
func WithDraft3Required() Option {
	return func(o *Options) { o.Draft3Required = true }
}

// WithRootSchema overrides the schema "#"-anchored pointers resolve
// against. Rarely needed directly - Validate sets this to the schema being
// validated unless the caller supplies one, e.g. to validate a detached
// sub-schema as if it were still part of its original document.
func WithRootSchema(root *Schema) Option {
	return func(o *Options) { o.RootSchema = root }
}

// WithLogger overrides the diagnostic sink unsupported "format" strings are
// reported to. Defaults to a logger writing to stderr.
func WithLogger(logger Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

func newOptions(root *Schema, opts []Option) *Options {
	options := &Options{
		RootSchema:  root,
		RefResolver: defaultFileRefResolver,
		Logger:      defaultLogger(),
	}

	for _, apply := range opts {
		apply(options)
	}

	if options.RootSchema == nil {
		options.RootSchema = root
	}
	if options.RefResolver == nil {
		options.RefResolver = defaultFileRefResolver
	}
	if options.Logger == nil {
		options.Logger = defaultLogger()
	}

	return options
}
