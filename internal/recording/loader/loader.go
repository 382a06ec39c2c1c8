package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	pkgrecording "github.com/goliatone/go-recgen/pkg/recording"
)

// Loader implements pkgrecording.Loader by delegating to file, fs.FS, or
// in-memory strategies.
type Loader struct {
	fs fs.FS
}

// Ensure the implementation satisfies the public interface.
var _ pkgrecording.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgrecording.LoaderOptions) pkgrecording.Loader {
	return &Loader{fs: options.FileSystem}
}

// Load fetches a recording from the provided source and wraps it in a
// Document.
func (l *Loader) Load(ctx context.Context, src pkgrecording.Source) (pkgrecording.Document, error) {
	if src == nil {
		return pkgrecording.Document{}, errors.New("recording loader: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return pkgrecording.Document{}, err
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgrecording.SourceKindBytes:
		payload, ok := src.(pkgrecording.PayloadSource)
		if !ok {
			return pkgrecording.Document{}, fmt.Errorf("recording loader: source %q does not expose a payload", src.Location())
		}
		data = payload.Payload()
	case pkgrecording.SourceKindFS:
		if l.fs == nil {
			return pkgrecording.Document{}, errors.New("recording loader: fs source requires a configured filesystem")
		}
		data, err = fs.ReadFile(l.fs, src.Location())
	case pkgrecording.SourceKindFile:
		if l.fs != nil {
			data, err = fs.ReadFile(l.fs, src.Location())
		} else {
			data, err = os.ReadFile(src.Location())
		}
	default:
		return pkgrecording.Document{}, fmt.Errorf("recording loader: unsupported source kind %q", src.Kind())
	}

	if err != nil {
		return pkgrecording.Document{}, fmt.Errorf("recording loader: read %q: %w", src.Location(), err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return pkgrecording.Document{}, fmt.Errorf("recording loader: %q: %w", src.Location(), pkgrecording.ErrEmptyInput)
	}

	doc, err := pkgrecording.NewDocument(src, data)
	if err != nil {
		return pkgrecording.Document{}, fmt.Errorf("recording loader: wrap %q: %w", src.Location(), err)
	}
	return doc, nil
}
