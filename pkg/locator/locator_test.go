package locator_test

import (
	"testing"

	"github.com/goliatone/go-recgen/pkg/locator"
	"github.com/goliatone/go-recgen/pkg/recording"
	"github.com/goliatone/go-recgen/pkg/testsupport"
)

func TestResolveVersionedDescriptions(t *testing.T) {
	cases := []struct {
		name string
		desc recording.LocatorDescription
		want string
	}{
		{
			name: "role",
			desc: recording.LocatorDescription{Kind: "role", Body: "button"},
			want: "(get-by-role pg role-button)",
		},
		{
			name: "role with name",
			desc: recording.LocatorDescription{
				Kind:    "role",
				Body:    "button",
				Options: recording.LocatorOptions{Name: testsupport.Ptr("Submit")},
			},
			want: `(get-by-role pg role-button :name "Submit")`,
		},
		{
			name: "role with exact name",
			desc: recording.LocatorDescription{
				Kind: "role",
				Body: "button",
				Options: recording.LocatorOptions{
					Name:  testsupport.Ptr("Submit"),
					Exact: testsupport.Ptr(true),
				},
			},
			want: `(get-by-role pg role-button :name "Submit" :exact t)`,
		},
		{
			name: "exact false is never emitted",
			desc: recording.LocatorDescription{
				Kind: "role",
				Body: "button",
				Options: recording.LocatorOptions{
					Name:  testsupport.Ptr("Submit"),
					Exact: testsupport.Ptr(false),
				},
			},
			want: `(get-by-role pg role-button :name "Submit")`,
		},
		{
			name: "role name from legacy attrs",
			desc: recording.LocatorDescription{
				Kind: "role",
				Body: "checkbox",
				Options: recording.LocatorOptions{
					Attrs: []recording.LocatorAttr{
						{Name: "checked", Value: "true"},
						{Name: "name", Value: "Accept terms"},
					},
				},
			},
			want: `(get-by-role pg role-checkbox :name "Accept terms")`,
		},
		{
			name: "attrs ignored when options are promoted",
			desc: recording.LocatorDescription{
				Kind: "role",
				Body: "checkbox",
				Options: recording.LocatorOptions{
					Name:  testsupport.Ptr("Accept"),
					Attrs: []recording.LocatorAttr{{Name: "name", Value: "stale"}},
				},
			},
			want: `(get-by-role pg role-checkbox :name "Accept")`,
		},
		{
			name: "default",
			desc: recording.LocatorDescription{Kind: "default", Body: "#login"},
			want: `(locator pg "#login")`,
		},
		{
			name: "css",
			desc: recording.LocatorDescription{Kind: "css", Body: "div.card > a"},
			want: `(locator pg "div.card > a")`,
		},
		{
			name: "text",
			desc: recording.LocatorDescription{Kind: "text", Body: "Sign in"},
			want: `(get-by-text pg "Sign in")`,
		},
		{
			name: "label",
			desc: recording.LocatorDescription{Kind: "label", Body: "Email"},
			want: `(get-by-label pg "Email")`,
		},
		{
			name: "placeholder",
			desc: recording.LocatorDescription{Kind: "placeholder", Body: "you@example.com"},
			want: `(get-by-placeholder pg "you@example.com")`,
		},
		{
			name: "testid",
			desc: recording.LocatorDescription{Kind: "testid", Body: "login-btn"},
			want: `(get-by-test-id pg "login-btn")`,
		},
		{
			name: "alt",
			desc: recording.LocatorDescription{Kind: "alt", Body: "Company logo"},
			want: `(get-by-alt-text pg "Company logo")`,
		},
		{
			name: "title",
			desc: recording.LocatorDescription{Kind: "title", Body: "Close dialog"},
			want: `(get-by-title pg "Close dialog")`,
		},
		{
			name: "unknown kind degrades to selector",
			desc: recording.LocatorDescription{Kind: "chapter", Body: "#intro"},
			want: `(locator pg "#intro")`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			desc := tc.desc
			got := locator.Resolve("pg", "ignored-raw-selector", &desc)
			if got != tc.want {
				t.Fatalf("Resolve() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResolveLegacyDescriptions(t *testing.T) {
	cases := []struct {
		name string
		desc recording.LocatorDescription
		want string
	}{
		{
			name: "role only",
			desc: recording.LocatorDescription{Role: "heading"},
			want: "(get-by-role pg role-heading)",
		},
		{
			name: "role with name",
			desc: recording.LocatorDescription{Role: "link", Name: testsupport.Ptr("Docs")},
			want: `(get-by-role pg role-link :name "Docs")`,
		},
		{
			name: "role with exact name",
			desc: recording.LocatorDescription{
				Role:  "link",
				Name:  testsupport.Ptr("Docs"),
				Exact: testsupport.Ptr(true),
			},
			want: `(get-by-role pg role-link :name "Docs" :exact t)`,
		},
		{
			name: "exact false is never emitted",
			desc: recording.LocatorDescription{
				Role:  "link",
				Name:  testsupport.Ptr("Docs"),
				Exact: testsupport.Ptr(false),
			},
			want: `(get-by-role pg role-link :name "Docs")`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			desc := tc.desc
			got := locator.Resolve("pg", "", &desc)
			if got != tc.want {
				t.Fatalf("Resolve() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResolveRawSelectors(t *testing.T) {
	cases := []struct {
		name     string
		selector string
		want     string
	}{
		{
			name:     "internal role",
			selector: "internal:role=button",
			want:     "(get-by-role pg role-button)",
		},
		{
			name:     "internal role with name",
			selector: `internal:role=button[name="Submit"i]`,
			want:     `(get-by-role pg role-button :name "Submit")`,
		},
		{
			name:     "internal role with exact name",
			selector: `internal:role=button[name="Submit"s]`,
			want:     `(get-by-role pg role-button :name "Submit" :exact t)`,
		},
		{
			name:     "internal text",
			selector: `internal:text="Welcome back"`,
			want:     `(get-by-text pg "Welcome back")`,
		},
		{
			name:     "opaque selector",
			selector: "#login >> nth=0",
			want:     `(locator pg "#login >> nth=0")`,
		},
		{
			name:     "empty selector",
			selector: "",
			want:     `(locator pg "")`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := locator.Resolve("pg", tc.selector, nil)
			if got != tc.want {
				t.Fatalf("Resolve() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDescriptionTakesPrecedenceOverSelector(t *testing.T) {
	desc := recording.LocatorDescription{Kind: "text", Body: "Sign in"}
	got := locator.Resolve("pg", "internal:role=button", &desc)
	if got != `(get-by-text pg "Sign in")` {
		t.Fatalf("structured description must win, got %q", got)
	}
}

func TestQuoteEscapesLiterals(t *testing.T) {
	got := locator.Quote("say \"hi\"\nback\\slash")
	want := `"say \"hi\"\nback\\slash"`
	if got != want {
		t.Fatalf("Quote() = %q, want %q", got, want)
	}
}
