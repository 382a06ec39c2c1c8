// Package body renders the literal embeddable form: the translated fragments
// joined verbatim, with no banner, imports, or lifecycle wrapping.
package body

import (
	"context"
	"errors"
	"strings"

	"github.com/goliatone/go-recgen/pkg/model"
	"github.com/goliatone/go-recgen/pkg/render"
)

// Renderer implements render.Renderer for the body format.
type Renderer struct{}

// Ensure the implementation satisfies the public interface.
var _ render.Renderer = (*Renderer)(nil)

// New constructs the body renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "body"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return "text/plain"
}

// Render newline-joins the fragment lines verbatim.
func (r *Renderer) Render(ctx context.Context, script model.Script, _ render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("body: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []byte(strings.Join(script.Lines(), "\n")), nil
}
