package render

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-recgen/pkg/locator"
	"github.com/goliatone/go-recgen/pkg/model"
	"github.com/goliatone/go-recgen/pkg/recording"
)

// Banner is the fixed comment the script and test renderers open with.
const Banner = ";;; Script generated from a recorded browser session"

// Indent is one nesting level in generated output.
const Indent = "  "

// launchers is the fixed 1:1 browser-to-launcher table.
var launchers = map[recording.BrowserName]string{
	recording.BrowserChromium: "launch-chromium",
	recording.BrowserFirefox:  "launch-firefox",
	recording.BrowserWebkit:   "launch-webkit",
}

// Launcher maps the header's browser identifier to its launcher construct.
// Unknown identifiers fall back to chromium rather than aborting, matching
// the pipeline's tolerance for upstream schema drift.
func Launcher(name recording.BrowserName) string {
	if launcher, ok := launchers[name]; ok {
		return launcher
	}
	return launchers[recording.BrowserChromium]
}

// BoolLiteral renders a boolean in the output dialect.
func BoolLiteral(v bool) string {
	if v {
		return "t"
	}
	return "nil"
}

// Requires renders one require line per namespace, in the order given. The
// lifecycle wrapper itself lives in the core namespace, so that one is always
// present regardless of fragment usage.
func Requires(namespaces []string) string {
	merged := namespaces
	if !contains(merged, model.NamespaceCore) {
		merged = append([]string{model.NamespaceCore}, merged...)
		sort.Strings(merged)
	}
	lines := make([]string, 0, len(merged))
	for _, ns := range merged {
		lines = append(lines, fmt.Sprintf("(require :%s)", ns))
	}
	return strings.Join(lines, "\n")
}

// IndentBody prefixes every line with depth nesting levels and joins them.
func IndentBody(lines []string, depth int) string {
	prefix := strings.Repeat(Indent, depth)
	indented := make([]string, 0, len(lines))
	for _, line := range lines {
		indented = append(indented, prefix+line)
	}
	return strings.Join(indented, "\n")
}

// ContextArgs serialises the header's pass-through context options onto the
// context-acquisition form as keyword pairs in sorted key order. Codegen
// displays these values without interpreting them.
func ContextArgs(options map[string]any) string {
	if len(options) == 0 {
		return ""
	}
	keys := make([]string, 0, len(options))
	for key := range options {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&b, " :%s %s", key, literal(options[key]))
	}
	return b.String()
}

func literal(value any) string {
	switch v := value.(type) {
	case string:
		return locator.Quote(v)
	case bool:
		return BoolLiteral(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case json.Number:
		return v.String()
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return locator.Quote(fmt.Sprintf("%v", v))
		}
		return locator.Quote(string(raw))
	}
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
