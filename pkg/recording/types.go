package recording

// Wire types for the capture tool's line-delimited event log. Field names are
// a compatibility contract with the recorder and must not change.

// BrowserName enumerates the engines the capture tool records against.
type BrowserName string

const (
	BrowserChromium BrowserName = "chromium"
	BrowserFirefox  BrowserName = "firefox"
	BrowserWebkit   BrowserName = "webkit"
)

// Action kind names the translation table understands. The table is closed;
// any other name aborts generation.
const (
	ActionOpenPage      = "openPage"
	ActionClosePage     = "closePage"
	ActionNavigate      = "navigate"
	ActionClick         = "click"
	ActionFill          = "fill"
	ActionPress         = "press"
	ActionCheck         = "check"
	ActionUncheck       = "uncheck"
	ActionSelect        = "select"
	ActionAssertText    = "assertText"
	ActionAssertVisible = "assertVisible"
	ActionAssertChecked = "assertChecked"
	ActionAssertValue   = "assertValue"
)

// Signal names the wrap table understands.
const (
	SignalDialog   = "dialog"
	SignalPopup    = "popup"
	SignalDownload = "download"
)

// BlankPage is the sentinel URL the recorder emits for pages opened without a
// destination.
const BlankPage = "about:blank"

// LaunchOptions carries the subset of launch configuration codegen interprets.
type LaunchOptions struct {
	Headless bool `json:"headless"`
}

// Header is record 0 of a recording: browser identity plus launch and context
// configuration. Context options are pass-through; codegen displays them in
// generated output without interpreting them.
type Header struct {
	BrowserName    BrowserName    `json:"browserName"`
	LaunchOptions  LaunchOptions  `json:"launchOptions"`
	ContextOptions map[string]any `json:"contextOptions,omitempty"`
}

// LocatorAttr is a single attribute constraint from the older versioned
// locator schema. Modern recordings promote `name`/`exact` into options but
// the attrs path is still honoured for backward compatibility.
type LocatorAttr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// LocatorOptions refines a versioned locator description. Name and Exact are
// pointers because absence and the zero value mean different things: an
// absent exact never appears in generated code, and `exact: false` is never
// emitted either.
type LocatorOptions struct {
	Name  *string       `json:"name,omitempty"`
	Exact *bool         `json:"exact,omitempty"`
	Attrs []LocatorAttr `json:"attrs,omitempty"`
}

// LocatorDescription is the tagged union covering both schema eras the
// recorder has produced. The versioned era sets Kind/Body/Options; the legacy
// era sets Role (with optional Name/Exact) and leaves Kind empty.
type LocatorDescription struct {
	Kind    string         `json:"kind,omitempty"`
	Body    string         `json:"body,omitempty"`
	Options LocatorOptions `json:"options,omitempty"`

	// Legacy era fields.
	Role  string  `json:"role,omitempty"`
	Name  *string `json:"name,omitempty"`
	Exact *bool   `json:"exact,omitempty"`
}

// Legacy reports whether the description uses the pre-versioned role schema.
func (d LocatorDescription) Legacy() bool {
	return d.Kind == "" && d.Role != ""
}

// Locator kinds of the versioned schema era.
const (
	LocatorKindDefault     = "default"
	LocatorKindCSS         = "css"
	LocatorKindText        = "text"
	LocatorKindRole        = "role"
	LocatorKindLabel       = "label"
	LocatorKindPlaceholder = "placeholder"
	LocatorKindTestID      = "testid"
	LocatorKindAlt         = "alt"
	LocatorKindTitle       = "title"
)

// Signal marks a concurrent browser event (dialog/popup/download) triggered
// by the action it is attached to.
type Signal struct {
	Name string `json:"name"`
}

// ActionEvent is one recorded interaction or assertion. Literal fields are
// kind-specific; the translator reads only the ones its template needs.
type ActionEvent struct {
	Name       string              `json:"name"`
	Selector   string              `json:"selector,omitempty"`
	Locator    *LocatorDescription `json:"locator,omitempty"`
	URL        string              `json:"url,omitempty"`
	Text       string              `json:"text,omitempty"`
	Key        string              `json:"key,omitempty"`
	Value      string              `json:"value,omitempty"`
	Checked    bool                `json:"checked,omitempty"`
	ClickCount int                 `json:"clickCount,omitempty"`
	Substring  bool                `json:"substring,omitempty"`
	Signals    []Signal            `json:"signals,omitempty"`
	PageAlias  string              `json:"pageAlias,omitempty"`
	FramePath  []string            `json:"framePath,omitempty"`
}

// Recording is the parsed event log: header plus actions in emission order.
// Order is an invariant; the parser never reorders or deduplicates.
type Recording struct {
	Header  Header
	Actions []ActionEvent
}
