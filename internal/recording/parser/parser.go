package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	pkgrecording "github.com/goliatone/go-recgen/pkg/recording"
)

// Parser implements pkgrecording.Parser over the capture tool's
// line-delimited JSON log: record 0 is the header, every following record is
// one action event. File order is preserved and malformed lines are hard
// failures rather than skips.
type Parser struct {
	options pkgrecording.ParserOptions
}

// Ensure the implementation satisfies the public interface.
var _ pkgrecording.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgrecording.ParserOptions) pkgrecording.Parser {
	return &Parser{options: options}
}

// Parse decodes the document into a Recording.
func (p *Parser) Parse(ctx context.Context, doc pkgrecording.Document) (pkgrecording.Recording, error) {
	if err := ctx.Err(); err != nil {
		return pkgrecording.Recording{}, err
	}

	lines := recordLines(doc.Raw())
	if len(lines) == 0 {
		return pkgrecording.Recording{}, pkgrecording.ErrEmptyInput
	}
	if len(lines) == 1 {
		return pkgrecording.Recording{}, pkgrecording.ErrHeaderOnly
	}

	var header pkgrecording.Header
	if err := p.decode(lines[0], &header); err != nil {
		return pkgrecording.Recording{}, fmt.Errorf("recording parser: header: %w", err)
	}

	actions := make([]pkgrecording.ActionEvent, 0, len(lines)-1)
	for i, line := range lines[1:] {
		var event pkgrecording.ActionEvent
		if err := p.decode(line, &event); err != nil {
			return pkgrecording.Recording{}, fmt.Errorf("recording parser: record %d: %w", i+1, err)
		}
		actions = append(actions, event)
	}

	return pkgrecording.Recording{Header: header, Actions: actions}, nil
}

func (p *Parser) decode(line string, target any) error {
	dec := json.NewDecoder(strings.NewReader(line))
	if !p.options.AllowUnknownFields {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	return nil
}

// recordLines splits the payload into non-blank records. Trailing newlines
// are common in captured logs and do not count as records.
func recordLines(raw []byte) []string {
	var lines []string
	for _, line := range bytes.Split(raw, []byte("\n")) {
		trimmed := strings.TrimSpace(string(line))
		if trimmed == "" {
			continue
		}
		lines = append(lines, trimmed)
	}
	return lines
}
