// Package testcase renders the test-suite form: the same lifecycle nesting as
// the script renderer, wrapped inside a namespace declaration with a fixed
// superset use-list and a named test-case declaration.
package testcase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-recgen/pkg/model"
	"github.com/goliatone/go-recgen/pkg/render"
	rendertemplate "github.com/goliatone/go-recgen/pkg/render/template"
	"github.com/goliatone/go-recgen/pkg/render/template/engine"
)

// bodyDepth is one level deeper than the script renderer: the lifecycle sits
// inside the test-case declaration.
const bodyDepth = 5

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer implements render.Renderer for the test format.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

// Ensure the implementation satisfies the public interface.
var _ render.Renderer = (*Renderer)(nil)

// New constructs the test renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		eng, err := engine.New(engine.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("test renderer: configure template renderer: %w", err)
		}
		renderer = eng
	}

	return &Renderer{templates: renderer}, nil
}

// MustNew panics on construction failure. Useful for init-time wiring.
func MustNew(options ...Option) *Renderer {
	renderer, err := New(options...)
	if err != nil {
		panic(err)
	}
	return renderer
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "test"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return "text/plain"
}

// Render assembles the full test text. The namespace use-list is a fixed
// superset and is not computed from fragment usage.
func (r *Renderer) Render(ctx context.Context, script model.Script, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("testcase: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out, err := r.templates.RenderTemplate("test", map[string]any{
		"title":           options.TestTitle(),
		"launcher":        render.Launcher(script.BrowserName),
		"headless":        render.BoolLiteral(script.Headless),
		"context_options": render.ContextArgs(script.ContextOptions),
		"body":            render.IndentBody(script.Lines(), bodyDepth),
	})
	if err != nil {
		return nil, fmt.Errorf("test renderer: %w", err)
	}
	return []byte(out), nil
}
