package orchestrator_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-recgen/pkg/orchestrator"
	pkgrecording "github.com/goliatone/go-recgen/pkg/recording"
	"github.com/goliatone/go-recgen/pkg/testsupport"
)

func TestGenerateBodyFromCanonicalRecording(t *testing.T) {
	doc := testsupport.CanonicalRecording(t).Document(t)
	gen := orchestrator.New()

	out, err := gen.Generate(context.Background(), orchestrator.Request{
		Document: &doc,
		Format:   "body",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	want := `;; New page: pg
(navigate pg "https://example.com/")
(assert-contains-text (assert-that (get-by-role pg role-heading)) "Example Domain")
(close-page pg)`
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("body output mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	doc := testsupport.CanonicalRecording(t).Document(t)
	gen := orchestrator.New()

	for _, format := range []string{"body", "script", "test"} {
		req := orchestrator.Request{Document: &doc, Format: format}
		first, err := gen.Generate(context.Background(), req)
		if err != nil {
			t.Fatalf("format %q: %v", format, err)
		}
		second, err := gen.Generate(context.Background(), req)
		if err != nil {
			t.Fatalf("format %q rerun: %v", format, err)
		}
		if !bytes.Equal(first, second) {
			t.Fatalf("format %q: repeated generation diverged", format)
		}
	}
}

func TestGenerateDefaultsToScriptRenderer(t *testing.T) {
	doc := testsupport.CanonicalRecording(t).Document(t)
	gen := orchestrator.New()

	out, err := gen.Generate(context.Background(), orchestrator.Request{Document: &doc})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(string(out), ";;; Script generated") {
		t.Fatalf("expected script output by default:\n%s", out)
	}
}

func TestGenerateFromSource(t *testing.T) {
	payload := testsupport.CanonicalRecording(t).Bytes()
	gen := orchestrator.New()

	out, err := gen.Generate(context.Background(), orchestrator.Request{
		Source: pkgrecording.SourceFromBytes(payload),
		Format: "test",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), `(deftest "recorded test"`) {
		t.Fatalf("expected test declaration in output:\n%s", out)
	}
}

func TestGenerateUnknownFormat(t *testing.T) {
	doc := testsupport.CanonicalRecording(t).Document(t)
	gen := orchestrator.New()

	_, err := gen.Generate(context.Background(), orchestrator.Request{
		Document: &doc,
		Format:   "markdown",
	})
	if err == nil || !strings.Contains(err.Error(), "markdown") {
		t.Fatalf("expected unknown renderer error, got %v", err)
	}
}

func TestGenerateEmptyRecording(t *testing.T) {
	gen := orchestrator.New()
	_, err := gen.Generate(context.Background(), orchestrator.Request{
		Source: pkgrecording.SourceFromBytes([]byte("\n")),
		Format: "body",
	})
	if err == nil || !strings.Contains(err.Error(), "Empty") {
		t.Fatalf("expected empty-input failure, got %v", err)
	}
}

func TestGenerateHeaderOnlyRecording(t *testing.T) {
	payload := testsupport.NewRecording(t, pkgrecording.Header{
		BrowserName: pkgrecording.BrowserChromium,
	}).Bytes()

	gen := orchestrator.New()
	_, err := gen.Generate(context.Background(), orchestrator.Request{
		Source: pkgrecording.SourceFromBytes(payload),
		Format: "body",
	})
	if err == nil || !strings.Contains(err.Error(), "no actions") {
		t.Fatalf("expected header-only failure, got %v", err)
	}
}

func TestGenerateUnknownActionCarriesTheName(t *testing.T) {
	payload := testsupport.NewRecording(t, pkgrecording.Header{
		BrowserName: pkgrecording.BrowserChromium,
	}).
		Action(t, pkgrecording.ActionEvent{Name: "magicAction"}).
		Bytes()

	gen := orchestrator.New()
	_, err := gen.Generate(context.Background(), orchestrator.Request{
		Source: pkgrecording.SourceFromBytes(payload),
		Format: "body",
	})
	if err == nil || !strings.Contains(err.Error(), "magicAction") {
		t.Fatalf("expected unknown action failure naming the action, got %v", err)
	}
}

func TestGenerateRequiresSourceOrDocument(t *testing.T) {
	gen := orchestrator.New()
	_, err := gen.Generate(context.Background(), orchestrator.Request{Format: "body"})
	if err == nil {
		t.Fatal("expected error without source or document")
	}
}

func TestGenerateNoPartialOutputOnFailure(t *testing.T) {
	payload := testsupport.NewRecording(t, pkgrecording.Header{
		BrowserName: pkgrecording.BrowserChromium,
	}).
		Action(t, pkgrecording.ActionEvent{Name: pkgrecording.ActionNavigate, URL: "https://example.com/"}).
		Action(t, pkgrecording.ActionEvent{Name: "magicAction"}).
		Bytes()

	gen := orchestrator.New()
	out, err := gen.Generate(context.Background(), orchestrator.Request{
		Source: pkgrecording.SourceFromBytes(payload),
		Format: "body",
	})
	if err == nil {
		t.Fatal("expected failure")
	}
	if len(out) != 0 {
		t.Fatalf("failure must not return partial output, got %q", out)
	}
}
