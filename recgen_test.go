package recgen_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	recgen "github.com/goliatone/go-recgen"
	pkgrecording "github.com/goliatone/go-recgen/pkg/recording"
	"github.com/goliatone/go-recgen/pkg/testsupport"
)

func TestGenerateFromBytesScript(t *testing.T) {
	payload := testsupport.CanonicalRecording(t).Bytes()

	out, err := recgen.GenerateFromBytes(context.Background(), payload, recgen.FormatScript)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	want := `;;; Script generated from a recorded browser session
(require :playwright)
(require :playwright.assert)

(with-playwright (pw)
  (with-browser (browser (launch-chromium pw :headless nil))
    (with-context (ctx browser)
      (with-page (pg ctx)
        ;; New page: pg
        (navigate pg "https://example.com/")
        (assert-contains-text (assert-that (get-by-role pg role-heading)) "Example Domain")
        (close-page pg)))))
`
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("script output mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateFromDocument(t *testing.T) {
	doc := testsupport.CanonicalRecording(t).Document(t)

	out, err := recgen.GenerateFromDocument(context.Background(), doc, recgen.FormatBody)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), `(navigate pg "https://example.com/")`) {
		t.Fatalf("expected navigate statement in body output:\n%s", out)
	}
}

func TestGenerateFromSource(t *testing.T) {
	payload := testsupport.CanonicalRecording(t).Bytes()

	out, err := recgen.Generate(context.Background(), pkgrecording.SourceFromBytes(payload), recgen.FormatTest)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), `(deftest "recorded test"`) {
		t.Fatalf("expected deftest declaration in test output:\n%s", out)
	}
}

func TestGeneratePropagatesParseFailures(t *testing.T) {
	_, err := recgen.GenerateFromBytes(context.Background(), []byte(" \n"), recgen.FormatBody)
	if err == nil || !strings.Contains(err.Error(), "Empty") {
		t.Fatalf("expected empty-input failure, got %v", err)
	}
}
