// Package template defines the seam renderers rely on for their output
// skeletons, decoupling them from the concrete template engine.
package template

// TemplateRenderer renders named templates or inline template content against
// a data context. The default pongo2-backed implementation lives in the
// engine subpackage.
type TemplateRenderer interface {
	RenderTemplate(name string, data map[string]any) (string, error)
	RenderString(content string, data map[string]any) (string, error)
}
