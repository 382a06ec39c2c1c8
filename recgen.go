// Package recgen converts captured browser-interaction recordings into source
// code in one of three output shapes: the bare statement body, a standalone
// runnable script, or a named test case.
package recgen

import (
	"context"

	"github.com/goliatone/go-recgen/pkg/orchestrator"
	pkgrecording "github.com/goliatone/go-recgen/pkg/recording"
	"github.com/goliatone/go-recgen/pkg/render"
)

// Output format names understood by the default renderer registry.
const (
	FormatBody   = "body"
	FormatScript = "script"
	FormatTest   = "test"
)

// RenderOptions describes per-request overrides renderers can use, re-exported
// via the root package for convenience.
type RenderOptions = render.RenderOptions

// Request mirrors the orchestrator request shape.
type Request = orchestrator.Request

// FailureMode selects error-value or process-exit failure reporting.
type FailureMode = orchestrator.FailureMode

const (
	FailureModeReturn = orchestrator.FailureModeReturn
	FailureModeExit   = orchestrator.FailureModeExit
)

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate loads the recording source, translates it, and renders it in the
// requested format. It is the simplest entry point for callers that just want
// generated text.
func Generate(ctx context.Context, source pkgrecording.Source, format string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source: source,
		Format: format,
	})
}

// GenerateFromDocument renders a pre-loaded recording document, bypassing the
// loader stage while still delegating to the orchestrator.
func GenerateFromDocument(ctx context.Context, doc pkgrecording.Document, format string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document: &doc,
		Format:   format,
	})
}

// GenerateFromBytes renders an in-memory recording payload.
func GenerateFromBytes(ctx context.Context, raw []byte, format string, options ...orchestrator.Option) ([]byte, error) {
	return Generate(ctx, pkgrecording.SourceFromBytes(raw), format, options...)
}

// WithFailureMode re-exports the orchestrator option so CLI callers can opt
// into process-exit failure reporting from the facade.
func WithFailureMode(mode FailureMode) orchestrator.Option {
	return orchestrator.WithFailureMode(mode)
}
