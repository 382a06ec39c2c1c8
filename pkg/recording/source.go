package recording

import "path/filepath"

// fileSource identifies on-disk recordings.
type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// fsSource references a path within an fs.FS.
type fsSource struct {
	name string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Kind() SourceKind {
	return SourceKindFS
}

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

// bytesSource wraps an in-memory recording, the common case when the capture
// tool hands its log straight to codegen.
type bytesSource struct {
	data []byte
}

func (s bytesSource) Location() string {
	return "<bytes>"
}

func (s bytesSource) Kind() SourceKind {
	return SourceKindBytes
}

// Payload returns a defensive copy of the in-memory recording.
func (s bytesSource) Payload() []byte {
	return append([]byte(nil), s.data...)
}

// SourceFromBytes returns a Source wrapping an in-memory recording.
func SourceFromBytes(data []byte) Source {
	return bytesSource{data: append([]byte(nil), data...)}
}
