// Package testsupport provides fixture builders contract tests share:
// recordings assembled line by line and wrapped into documents without going
// through the loader.
package testsupport

import (
	"encoding/json"
	"strings"
	"testing"

	pkgrecording "github.com/goliatone/go-recgen/pkg/recording"
)

// RecordingBuilder assembles a line-delimited recording payload.
type RecordingBuilder struct {
	lines []string
}

// NewRecording starts a builder with the given header.
func NewRecording(t *testing.T, header pkgrecording.Header) *RecordingBuilder {
	t.Helper()
	b := &RecordingBuilder{}
	b.appendJSON(t, header)
	return b
}

// Action appends one action event record.
func (b *RecordingBuilder) Action(t *testing.T, event pkgrecording.ActionEvent) *RecordingBuilder {
	t.Helper()
	b.appendJSON(t, event)
	return b
}

// RawLine appends a record verbatim, useful for malformed-input tests.
func (b *RecordingBuilder) RawLine(line string) *RecordingBuilder {
	b.lines = append(b.lines, line)
	return b
}

// Bytes returns the payload with a trailing newline, as the capture tool
// writes it.
func (b *RecordingBuilder) Bytes() []byte {
	return []byte(strings.Join(b.lines, "\n") + "\n")
}

// Document wraps the payload in a recording document.
func (b *RecordingBuilder) Document(t *testing.T) pkgrecording.Document {
	t.Helper()
	doc, err := pkgrecording.NewDocument(pkgrecording.SourceFromBytes(b.Bytes()), b.Bytes())
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	return doc
}

func (b *RecordingBuilder) appendJSON(t *testing.T, record any) {
	t.Helper()
	data, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("marshal record: %v", err)
	}
	b.lines = append(b.lines, string(data))
}

// Ptr returns a pointer to v, for the optional locator name/exact fields.
func Ptr[T any](v T) *T {
	return &v
}

// CanonicalRecording is the three-action example the byte-exact renderer
// contracts are pinned against: blank-page open, navigate, substring
// assertText on a heading role, closePage.
func CanonicalRecording(t *testing.T) *RecordingBuilder {
	t.Helper()
	return NewRecording(t, pkgrecording.Header{
		BrowserName:   pkgrecording.BrowserChromium,
		LaunchOptions: pkgrecording.LaunchOptions{Headless: false},
	}).
		Action(t, pkgrecording.ActionEvent{
			Name: pkgrecording.ActionOpenPage,
			URL:  pkgrecording.BlankPage,
		}).
		Action(t, pkgrecording.ActionEvent{
			Name: pkgrecording.ActionNavigate,
			URL:  "https://example.com/",
		}).
		Action(t, pkgrecording.ActionEvent{
			Name:      pkgrecording.ActionAssertText,
			Substring: true,
			Text:      "Example Domain",
			Locator: &pkgrecording.LocatorDescription{
				Kind: pkgrecording.LocatorKindRole,
				Body: "heading",
			},
		}).
		Action(t, pkgrecording.ActionEvent{
			Name: pkgrecording.ActionClosePage,
		})
}
