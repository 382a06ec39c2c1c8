// Package orchestrator coordinates the full pipeline from captured recording
// to rendered output: loader → parser → builder → renderer.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	internalLoader "github.com/goliatone/go-recgen/internal/recording/loader"
	internalParser "github.com/goliatone/go-recgen/internal/recording/parser"
	"github.com/goliatone/go-recgen/internal/translate"
	"github.com/goliatone/go-recgen/pkg/model"
	pkgrecording "github.com/goliatone/go-recgen/pkg/recording"
	"github.com/goliatone/go-recgen/pkg/render"
	"github.com/goliatone/go-recgen/pkg/renderers/body"
	"github.com/goliatone/go-recgen/pkg/renderers/script"
	"github.com/goliatone/go-recgen/pkg/renderers/testcase"
)

const defaultRendererName = "script"

// FailureMode selects how Generate reports failures. The transformation
// semantics are unaffected; this exists so interactive CLI use can terminate
// while programmatic and test use receives normal error values.
type FailureMode int

const (
	// FailureModeReturn surfaces failures as error values. The default.
	FailureModeReturn FailureMode = iota

	// FailureModeExit prints the failure to stderr and exits the process.
	FailureModeExit
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom recording loader.
func WithLoader(loader pkgrecording.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithFileSystem configures the built-in loader to resolve paths against an
// fs.FS instead of the operating system.
func WithFileSystem(files fs.FS) Option {
	return func(o *Orchestrator) {
		o.loaderFS = files
	}
}

// WithParser injects a custom recording parser.
func WithParser(parser pkgrecording.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithBuilder injects a custom script builder.
func WithBuilder(builder model.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Format field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithFailureMode selects error-value or process-exit failure reporting.
func WithFailureMode(mode FailureMode) Option {
	return func(o *Orchestrator) {
		o.failureMode = mode
	}
}

// Orchestrator coordinates the generation pipeline. It applies sensible
// defaults (built-in parser and builder, all three renderers registered)
// while remaining open to dependency injection for advanced callers.
type Orchestrator struct {
	loader          pkgrecording.Loader
	loaderFS        fs.FS
	parser          pkgrecording.Parser
	builder         model.Builder
	registry        *render.Registry
	defaultRenderer string
	failureMode     FailureMode
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	o.defaultsApplied = true

	if o.loader == nil {
		o.loader = internalLoader.New(pkgrecording.NewLoaderOptions(
			pkgrecording.WithFileSystem(o.loaderFS),
		))
	}
	if o.parser == nil {
		o.parser = internalParser.New(pkgrecording.NewParserOptions())
	}
	if o.builder == nil {
		o.builder = translate.New()
	}
	if o.registry == nil {
		registry := render.NewRegistry()

		scriptRenderer, err := script.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: script renderer: %w", err)
			return
		}
		testRenderer, err := testcase.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: test renderer: %w", err)
			return
		}

		registry.MustRegister(body.New())
		registry.MustRegister(scriptRenderer)
		registry.MustRegister(testRenderer)
		o.registry = registry
	}
}

// Request describes the inputs required to generate code from a recording.
type Request struct {
	// Source identifies where the recording lives. Optional when Document is
	// supplied.
	Source pkgrecording.Source

	// Document allows callers to bypass the loader when they already have the
	// raw payload.
	Document *pkgrecording.Document

	// Format names the output shape: body, script, or test. Empty falls back
	// to the configured default renderer.
	Format string

	// RenderOptions carries per-request instructions renderers can use, such
	// as a test-case title override.
	RenderOptions render.RenderOptions
}

// Generate executes the loader → parser → builder → renderer sequence and
// returns the generated text. It is a pure function of its inputs: the same
// recording and format always produce identical output.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	out, err := o.generate(ctx, req)
	if err != nil && o.failureMode == FailureModeExit {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return out, err
}

func (o *Orchestrator) generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return nil, err
		}
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return nil, err
	}

	rec, err := o.parser.Parse(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: parse recording: %w", err)
	}

	scriptModel, err := o.builder.Build(rec)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: build script: %w", err)
	}

	renderer, err := o.rendererFor(req.Format)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, scriptModel, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}

	return output, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (pkgrecording.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return pkgrecording.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return pkgrecording.Document{}, fmt.Errorf("orchestrator: load recording: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	renderer, err := o.registry.Get(target)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", target, err)
	}
	return renderer, nil
}
