package translate

import (
	"fmt"

	"github.com/goliatone/go-recgen/pkg/locator"
	"github.com/goliatone/go-recgen/pkg/model"
	"github.com/goliatone/go-recgen/pkg/recording"
)

type actionFunc func(event recording.ActionEvent) model.Fragment

// actions is the closed translation table. Every supported kind substitutes
// the resolved locator and the event's literal fields into a fixed template.
var actions = map[string]actionFunc{
	recording.ActionOpenPage:      openPage,
	recording.ActionClosePage:     statement("(close-page %s)", pageArg),
	recording.ActionNavigate:      statement("(navigate %s %s)", pageArg, quotedField(urlField)),
	recording.ActionClick:         click,
	recording.ActionFill:          statement("(fill %s %s)", locatorArg, quotedField(textField)),
	recording.ActionPress:         statement("(press %s %s)", locatorArg, quotedField(keyField)),
	recording.ActionCheck:         statement("(check %s)", locatorArg),
	recording.ActionUncheck:       statement("(uncheck %s)", locatorArg),
	recording.ActionSelect:        statement("(select-option %s %s)", locatorArg, quotedField(valueField)),
	recording.ActionAssertText:    assertText,
	recording.ActionAssertVisible: assertion("(assert-visible (assert-that %s))", locatorArg),
	recording.ActionAssertChecked: assertChecked,
	recording.ActionAssertValue:   assertion("(assert-has-value (assert-that %s) %s)", locatorArg, quotedField(valueField)),
}

// translate maps one event through the table; names outside the table abort
// generation.
func translate(event recording.ActionEvent) (model.Fragment, error) {
	fn, ok := actions[event.Name]
	if !ok {
		return model.Fragment{}, model.UnknownActionError{Name: event.Name}
	}
	return fn(event), nil
}

// Argument extractors shared by the statement templates.

type argFunc func(event recording.ActionEvent) string

func pageArg(event recording.ActionEvent) string {
	return pageExpr(event)
}

func locatorArg(event recording.ActionEvent) string {
	return locatorExpr(event)
}

func urlField(event recording.ActionEvent) string   { return event.URL }
func textField(event recording.ActionEvent) string  { return event.Text }
func keyField(event recording.ActionEvent) string   { return event.Key }
func valueField(event recording.ActionEvent) string { return event.Value }

func quotedField(field func(recording.ActionEvent) string) argFunc {
	return func(event recording.ActionEvent) string {
		return locator.Quote(field(event))
	}
}

// statement builds a single-line core fragment from a format template and its
// argument extractors.
func statement(format string, args ...argFunc) actionFunc {
	return func(event recording.ActionEvent) model.Fragment {
		return model.Fragment{
			Lines:    []string{render(format, event, args)},
			Requires: []string{model.NamespaceCore},
		}
	}
}

// assertion is the same shape with the assertion namespace added.
func assertion(format string, args ...argFunc) actionFunc {
	return func(event recording.ActionEvent) model.Fragment {
		return model.Fragment{
			Lines:    []string{render(format, event, args)},
			Requires: []string{model.NamespaceCore, model.NamespaceAssert},
		}
	}
}

func render(format string, event recording.ActionEvent, args []argFunc) string {
	values := make([]any, 0, len(args))
	for _, arg := range args {
		values = append(values, arg(event))
	}
	return fmt.Sprintf(format, values...)
}

// openPage emits a page-creation marker comment. When the recording carries a
// real destination the navigate statement follows with its historical extra
// indentation, preserved verbatim for byte-exact downstream consumers.
func openPage(event recording.ActionEvent) model.Fragment {
	alias := event.PageAlias
	if alias == "" {
		alias = PrimaryPage
	}
	lines := []string{fmt.Sprintf(";; New page: %s", alias)}
	requires := []string(nil)
	if event.URL != "" && event.URL != recording.BlankPage {
		lines = append(lines, fmt.Sprintf("    (navigate %s %s)", alias, locator.Quote(event.URL)))
		requires = []string{model.NamespaceCore}
	}
	return model.Fragment{Lines: lines, Requires: requires}
}

// click switches to the double-click variant when the recorder captured a
// clickCount of exactly 2.
func click(event recording.ActionEvent) model.Fragment {
	construct := "click"
	if event.ClickCount == 2 {
		construct = "dblclick"
	}
	return model.Fragment{
		Lines:    []string{fmt.Sprintf("(%s %s)", construct, locatorExpr(event))},
		Requires: []string{model.NamespaceCore},
	}
}

// assertText selects the substring-contains variant when the recorder marked
// the assertion as a partial match.
func assertText(event recording.ActionEvent) model.Fragment {
	construct := "assert-has-text"
	if event.Substring {
		construct = "assert-contains-text"
	}
	return model.Fragment{
		Lines: []string{fmt.Sprintf("(%s (assert-that %s) %s)",
			construct, locatorExpr(event), locator.Quote(event.Text))},
		Requires: []string{model.NamespaceCore, model.NamespaceAssert},
	}
}

// assertChecked flips to the unchecked predicate when the recorded state was
// false.
func assertChecked(event recording.ActionEvent) model.Fragment {
	construct := "assert-checked"
	if !event.Checked {
		construct = "assert-unchecked"
	}
	return model.Fragment{
		Lines:    []string{fmt.Sprintf("(%s (assert-that %s))", construct, locatorExpr(event))},
		Requires: []string{model.NamespaceCore, model.NamespaceAssert},
	}
}
