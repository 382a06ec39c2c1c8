package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-recgen/pkg/model"
	"github.com/goliatone/go-recgen/pkg/recording"
	"github.com/goliatone/go-recgen/pkg/render"
)

func TestLauncherTable(t *testing.T) {
	cases := []struct {
		browser recording.BrowserName
		want    string
	}{
		{recording.BrowserChromium, "launch-chromium"},
		{recording.BrowserFirefox, "launch-firefox"},
		{recording.BrowserWebkit, "launch-webkit"},
		{recording.BrowserName("netscape"), "launch-chromium"},
		{recording.BrowserName(""), "launch-chromium"},
	}
	for _, tc := range cases {
		if got := render.Launcher(tc.browser); got != tc.want {
			t.Fatalf("Launcher(%q) = %q, want %q", tc.browser, got, tc.want)
		}
	}
}

func TestRequiresAlwaysIncludesCore(t *testing.T) {
	got := render.Requires(nil)
	if got != "(require :playwright)" {
		t.Fatalf("Requires(nil) = %q", got)
	}

	got = render.Requires([]string{model.NamespaceAssert})
	want := "(require :playwright)\n(require :playwright.assert)"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("requires mismatch (-want +got):\n%s", diff)
	}

	got = render.Requires([]string{model.NamespaceCore, model.NamespaceAssert})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("requires mismatch (-want +got):\n%s", diff)
	}
}

func TestIndentBody(t *testing.T) {
	got := render.IndentBody([]string{"(close-page pg)", ";; done"}, 2)
	want := "    (close-page pg)\n    ;; done"
	if got != want {
		t.Fatalf("IndentBody() = %q, want %q", got, want)
	}
}

func TestContextArgsSortedAndTyped(t *testing.T) {
	got := render.ContextArgs(map[string]any{
		"viewport":    "1280x720",
		"hasTouch":    true,
		"deviceScale": float64(2),
		"offline":     false,
	})
	want := ` :deviceScale 2 :hasTouch t :offline nil :viewport "1280x720"`
	if got != want {
		t.Fatalf("ContextArgs() = %q, want %q", got, want)
	}
}

func TestContextArgsEmpty(t *testing.T) {
	if got := render.ContextArgs(nil); got != "" {
		t.Fatalf("ContextArgs(nil) = %q", got)
	}
}
