// Package model defines the intermediate representation renderers consume: an
// ordered list of translated code fragments plus the launch metadata from the
// recording header.
package model

import (
	"sort"

	"github.com/goliatone/go-recgen/pkg/recording"
)

// Output namespaces a fragment can reference. Renderers turn these into
// require lines (script) or a fixed use-list (test).
const (
	NamespaceCore   = "playwright"
	NamespaceAssert = "playwright.assert"
)

// Fragment is one or more lines of generated code. Requires names the output
// namespaces the fragment references so the script renderer can compute its
// import block from actual usage.
type Fragment struct {
	Lines    []string
	Requires []string
}

// Script is the fully translated recording handed to a renderer.
type Script struct {
	BrowserName    recording.BrowserName
	Headless       bool
	ContextOptions map[string]any
	Fragments      []Fragment
}

// Lines flattens the fragments in order, the literal embeddable body form.
func (s Script) Lines() []string {
	var out []string
	for _, fragment := range s.Fragments {
		out = append(out, fragment.Lines...)
	}
	return out
}

// Namespaces returns the sorted, deduplicated union of every fragment's
// required namespaces.
func (s Script) Namespaces() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, fragment := range s.Fragments {
		for _, ns := range fragment.Requires {
			if _, ok := seen[ns]; ok {
				continue
			}
			seen[ns] = struct{}{}
			out = append(out, ns)
		}
	}
	sort.Strings(out)
	return out
}

// Builder translates a parsed Recording into a Script. The default
// implementation lives under internal/translate.
type Builder interface {
	Build(rec recording.Recording) (Script, error)
}
