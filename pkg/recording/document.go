package recording

import "errors"

// Source identifies where a recording originated so loaders can operate on
// files, fs.FS entries, or in-memory captures without leaking implementation
// details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile  SourceKind = "file"
	SourceKindFS    SourceKind = "fs"
	SourceKindBytes SourceKind = "bytes"
)

// PayloadSource is satisfied by sources that already carry the raw recording,
// letting loaders skip filesystem access entirely.
type PayloadSource interface {
	Payload() []byte
}

// Document wraps the raw line-delimited recording payload and its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("recording: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("recording: raw recording is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the recording.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a defensive copy of the recording payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}
