package translate

import (
	"fmt"

	"github.com/goliatone/go-recgen/pkg/model"
	"github.com/goliatone/go-recgen/pkg/recording"
)

// wrap decorates a translated fragment for one recorded signal. Multiple
// signals on an event apply in recorded list order, each wrap enclosing the
// previous result. The translator stays ignorant of these concerns.
func wrap(fragment model.Fragment, signal recording.Signal, pageExpr string) (model.Fragment, error) {
	switch signal.Name {
	case recording.SignalDialog:
		return wrapDialog(fragment, pageExpr), nil
	case recording.SignalPopup:
		return wrapExpect(fragment, pageExpr, "popup-pg", "expect-popup",
			";; popup-pg: page opened by this action"), nil
	case recording.SignalDownload:
		return wrapExpect(fragment, pageExpr, "download", "expect-download",
			";; download: (path download), (suggested-filename download)"), nil
	default:
		return model.Fragment{}, model.UnknownSignalError{Name: signal.Name}
	}
}

// wrapDialog registers the page-global dialog-dismiss handler on a preceding
// line; the action itself is untouched.
func wrapDialog(fragment model.Fragment, pageExpr string) model.Fragment {
	lines := make([]string, 0, len(fragment.Lines)+1)
	lines = append(lines, fmt.Sprintf("(on-dialog %s dismiss)", pageExpr))
	lines = append(lines, fragment.Lines...)
	return model.Fragment{
		Lines:    lines,
		Requires: requireCore(fragment.Requires),
	}
}

// wrapExpect nests the fragment inside a wait-while-running expression bound
// to the given identifier, with a trailing comment on the closing line.
func wrapExpect(fragment model.Fragment, pageExpr, binding, construct, comment string) model.Fragment {
	lines := make([]string, 0, len(fragment.Lines)+1)
	lines = append(lines, fmt.Sprintf("(bind %s (%s %s", binding, construct, pageExpr))
	for _, line := range fragment.Lines {
		lines = append(lines, "  "+line)
	}
	last := len(lines) - 1
	lines[last] = lines[last] + "))  " + comment
	return model.Fragment{
		Lines:    lines,
		Requires: requireCore(fragment.Requires),
	}
}

func requireCore(requires []string) []string {
	for _, ns := range requires {
		if ns == model.NamespaceCore {
			return requires
		}
	}
	return append([]string{model.NamespaceCore}, requires...)
}
