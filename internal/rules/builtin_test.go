package rules

import (
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		text string
		sep  string
		want string
	}{
		{"url", "http://foo.bar/baz", "+", "http+foo+bar+baz"},
		{"spaces", "Hello World", "-", "hello-world"},
		{"leading and trailing junk", "  --Hello--  ", "-", "hello"},
		{"collapses runs", "a   b!!c", "_", "a_b_c"},
		{"already a slug", "hello-world", "-", "hello-world"},
		{"empty", "", "-", ""},
		{"only junk", "!!!", "-", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := slugify(tt.text, tt.sep); got != tt.want {
				t.Errorf("slugify(%q, %q) = %q, want %q", tt.text, tt.sep, got, tt.want)
			}
		})
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"hello world", "Hello World"},
		{"HELLO WORLD", "Hello World"},
		{"a.b c", "A.B C"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := titleCase(tt.text); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestUnescapeArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"newline", `\n`, "\n"},
		{"tab", `\t`, "\t"},
		{"carriage return", `\r`, "\r"},
		{"backslash", `\\`, `\`},
		{"quotes", `\'\"`, `'"`},
		{"unknown escape kept verbatim", `\x`, `\x`},
		{"trailing backslash kept", `a\`, `a\`},
		{"no escapes", "plain", "plain"},
		{"mixed", `a\tb\nc`, "a\tb\nc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := unescapeArg(tt.in); got != tt.want {
				t.Errorf("unescapeArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestReplaceRule_UnescapesItsArguments(t *testing.T) {
	// The parser hands the argument over verbatim; the replace rule is
	// responsible for turning \n into a newline.
	got := apply(t, `/r '\n' ' '`, "a\nb\nc")
	if got != "a b c" {
		t.Errorf("Expected %q, got %q", "a b c", got)
	}
}

func TestJSONRule(t *testing.T) {
	got := apply(t, "/j", `{"b":1,"a":[2,3]}`)
	want := "{\n  \"b\": 1,\n  \"a\": [\n    2,\n    3\n  ]\n}"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestBase64Rules_RoundTrip(t *testing.T) {
	original := "kākāpō & friends"
	encoded := apply(t, "/b64", original)
	decoded := apply(t, "/b64d", encoded)
	if decoded != original {
		t.Errorf("Round trip mismatch: %q -> %q -> %q", original, encoded, decoded)
	}
}

func TestBase64DecodeRule_Malformed(t *testing.T) {
	_, err := newTestExecutor().ApplyString("!!! not base64 !!!", "/b64d")
	if err == nil {
		t.Fatal("Expected error for malformed base64")
	}
}
