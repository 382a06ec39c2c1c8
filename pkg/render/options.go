package render

// DefaultTestTitle is the fixed title the test renderer gives the generated
// test case when the caller does not override it.
const DefaultTestTitle = "recorded test"

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the translation pipeline.
type RenderOptions struct {
	// Title overrides the generated test-case title. Only the test renderer
	// reads it; empty means DefaultTestTitle.
	Title string
}

// TestTitle resolves the effective test-case title.
func (o RenderOptions) TestTitle() string {
	if o.Title == "" {
		return DefaultTestTitle
	}
	return o.Title
}
