package recording

import "context"

// Parser decodes a recording Document into the Header and ordered action
// events downstream packages consume.
type Parser interface {
	Parse(ctx context.Context, doc Document) (Recording, error)
}

// ParserOptions exposes toggles for parsing behaviour.
type ParserOptions struct {
	// AllowUnknownFields keeps decoding lenient when the recorder adds fields
	// this schema does not know about. Defaults to true to tolerate upstream
	// schema drift in non-critical fields.
	AllowUnknownFields bool
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithUnknownFields toggles tolerance for unrecognised record fields.
func WithUnknownFields(allowed bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.AllowUnknownFields = allowed
	}
}

// NewParserOptions applies ParserOption functions and returns the resulting
// configuration. Implementations under internal/recording call this helper to
// remain consistent.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{
		AllowUnknownFields: true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}
