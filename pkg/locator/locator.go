// Package locator converts raw selectors and structured locator descriptions
// into canonical locator-construction expressions. It understands both schema
// eras the recorder has produced: the legacy {role, name, exact} shape and
// the versioned {kind, body, options} shape. A structured description always
// wins over the raw selector string.
package locator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-recgen/pkg/recording"
)

// kindFunc renders one versioned locator kind. Dispatch is table-driven so a
// future schema era is a new entry, never an edit to an existing branch.
type kindFunc func(pageExpr string, desc recording.LocatorDescription) string

var kinds = map[string]kindFunc{
	recording.LocatorKindDefault:     selectorKind,
	recording.LocatorKindCSS:         selectorKind,
	recording.LocatorKindText:        simpleKind("get-by-text"),
	recording.LocatorKindRole:        roleKind,
	recording.LocatorKindLabel:       simpleKind("get-by-label"),
	recording.LocatorKindPlaceholder: simpleKind("get-by-placeholder"),
	recording.LocatorKindTestID:      simpleKind("get-by-test-id"),
	recording.LocatorKindAlt:         simpleKind("get-by-alt-text"),
	recording.LocatorKindTitle:       simpleKind("get-by-title"),
}

// Resolve returns the locator-construction expression for the given selector
// and optional structured description, scoped to pageExpr.
func Resolve(pageExpr, selector string, desc *recording.LocatorDescription) string {
	if desc != nil {
		if desc.Legacy() {
			return roleExpr(pageExpr, desc.Role, desc.Name, desc.Exact)
		}
		if fn, ok := kinds[desc.Kind]; ok {
			return fn(pageExpr, *desc)
		}
		// Unknown kinds degrade to the generic selector form so minor
		// upstream schema drift does not abort generation.
		if desc.Body != "" {
			return selectorExpr(pageExpr, desc.Body)
		}
	}
	return parseSelector(pageExpr, selector)
}

func selectorKind(pageExpr string, desc recording.LocatorDescription) string {
	return selectorExpr(pageExpr, desc.Body)
}

func simpleKind(construct string) kindFunc {
	return func(pageExpr string, desc recording.LocatorDescription) string {
		return fmt.Sprintf("(%s %s %s)", construct, pageExpr, Quote(desc.Body))
	}
}

func roleKind(pageExpr string, desc recording.LocatorDescription) string {
	name := desc.Options.Name
	exact := desc.Options.Exact
	if name == nil && exact == nil {
		// Older versioned recordings carried the accessible name as a plain
		// attribute entry instead of a promoted option.
		for _, attr := range desc.Options.Attrs {
			if attr.Name == "name" {
				value := attr.Value
				name = &value
				break
			}
		}
	}
	return roleExpr(pageExpr, desc.Body, name, exact)
}

// roleExpr renders the role construction shared by both schema eras. The
// exact modifier appears only when exact is exactly true; `exact: false` is
// never emitted.
func roleExpr(pageExpr, role string, name *string, exact *bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "(get-by-role %s role-%s", pageExpr, role)
	if name != nil {
		fmt.Fprintf(&b, " :name %s", Quote(*name))
	}
	if exact != nil && *exact {
		b.WriteString(" :exact t")
	}
	b.WriteString(")")
	return b.String()
}

func selectorExpr(pageExpr, selector string) string {
	return fmt.Sprintf("(locator %s %s)", pageExpr, Quote(selector))
}

// Raw selector conventions emitted by the recorder before structured
// descriptions existed.
var (
	internalRole = regexp.MustCompile(`^internal:role=([^\[\]]+?)(?:\[name="((?:[^"\\]|\\.)*)"([is])?\])?$`)
	internalText = regexp.MustCompile(`^internal:text="((?:[^"\\]|\\.)*)"([is])?$`)
)

// parseSelector recognises the internal:role= and internal:text= selector
// conventions; anything else is treated as an opaque selector.
func parseSelector(pageExpr, selector string) string {
	if m := internalRole.FindStringSubmatch(selector); m != nil {
		role, name, flag := m[1], m[2], m[3]
		if name == "" && !strings.Contains(selector, "[") {
			return roleExpr(pageExpr, role, nil, nil)
		}
		exact := flag == "s"
		if exact {
			return roleExpr(pageExpr, role, &name, &exact)
		}
		return roleExpr(pageExpr, role, &name, nil)
	}
	if m := internalText.FindStringSubmatch(selector); m != nil {
		return fmt.Sprintf("(get-by-text %s %s)", pageExpr, Quote(m[1]))
	}
	return selectorExpr(pageExpr, selector)
}

var quoteReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Quote renders a string literal for generated code.
func Quote(s string) string {
	return `"` + quoteReplacer.Replace(s) + `"`
}
