// Package translate implements the default model.Builder: it resolves each
// action event's locator, maps the event through a closed template table, and
// decorates the result with wrappers for any recorded signals.
package translate

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-recgen/pkg/locator"
	"github.com/goliatone/go-recgen/pkg/model"
	"github.com/goliatone/go-recgen/pkg/recording"
)

// PrimaryPage is the identifier the first page of a recording is bound to.
const PrimaryPage = "pg"

// Builder implements model.Builder.
type Builder struct{}

// Ensure the implementation satisfies the public interface.
var _ model.Builder = (*Builder)(nil)

// New constructs the default builder.
func New() *Builder {
	return &Builder{}
}

// Build translates the recording into a Script, preserving event order.
func (b *Builder) Build(rec recording.Recording) (model.Script, error) {
	fragments := make([]model.Fragment, 0, len(rec.Actions))
	for _, event := range rec.Actions {
		fragment, err := translate(event)
		if err != nil {
			return model.Script{}, err
		}
		for _, signal := range event.Signals {
			fragment, err = wrap(fragment, signal, pageExpr(event))
			if err != nil {
				return model.Script{}, err
			}
		}
		fragments = append(fragments, fragment)
	}

	return model.Script{
		BrowserName:    rec.Header.BrowserName,
		Headless:       rec.Header.LaunchOptions.Headless,
		ContextOptions: rec.Header.ContextOptions,
		Fragments:      fragments,
	}, nil
}

// pageExpr returns the expression generated statements address the event's
// page through: the page alias, wrapped in a frame form when the event was
// recorded inside a frame.
func pageExpr(event recording.ActionEvent) string {
	alias := event.PageAlias
	if alias == "" {
		alias = PrimaryPage
	}
	if len(event.FramePath) == 0 {
		return alias
	}
	parts := make([]string, 0, len(event.FramePath))
	for _, part := range event.FramePath {
		parts = append(parts, locator.Quote(part))
	}
	return fmt.Sprintf("(frame %s %s)", alias, strings.Join(parts, " "))
}

// locatorExpr resolves the event's target element expression.
func locatorExpr(event recording.ActionEvent) string {
	return locator.Resolve(pageExpr(event), event.Selector, event.Locator)
}
