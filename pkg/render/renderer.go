package render

import (
	"context"

	"github.com/goliatone/go-recgen/pkg/model"
)

// Renderer converts a translated Script into a byte representation. The three
// built-in strategies (body, script, test) share this contract.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, script model.Script, options RenderOptions) ([]byte, error)
}
