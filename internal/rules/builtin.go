package rules

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9]+`)

func builtinSpecs() []Spec {
	return []Spec{
		{
			ID:      "t",
			Summary: "trim leading and trailing whitespace",
			Fn: func(text string, _ []string) (string, error) {
				return strings.TrimSpace(text), nil
			},
		},
		{
			ID:      "l",
			Summary: "lowercase",
			Fn: func(text string, _ []string) (string, error) {
				return strings.ToLower(text), nil
			},
		},
		{
			ID:      "u",
			Summary: "uppercase",
			Fn: func(text string, _ []string) (string, error) {
				return strings.ToUpper(text), nil
			},
		},
		{
			ID:      "c",
			Summary: "title-case words",
			Fn: func(text string, _ []string) (string, error) {
				return titleCase(text), nil
			},
		},
		{
			ID:      "r",
			MinArgs: 2,
			MaxArgs: 2,
			Summary: "replace all occurrences of arg1 with arg2",
			Fn: func(text string, args []string) (string, error) {
				// Quoted arguments arrive verbatim from the parser;
				// this rule is the one that unescapes them.
				old := unescapeArg(args[0])
				repl := unescapeArg(args[1])
				return strings.ReplaceAll(text, old, repl), nil
			},
		},
		{
			ID:          "S",
			MaxArgs:     1,
			DefaultArgs: []string{"-"},
			Summary:     "slugify with the given separator",
			Fn: func(text string, args []string) (string, error) {
				return slugify(text, args[0]), nil
			},
		},
		{
			ID:      "j",
			Summary: "pretty-print JSON",
			Fn: func(text string, _ []string) (string, error) {
				var out bytes.Buffer
				if err := json.Indent(&out, []byte(text), "", "  "); err != nil {
					return "", fmt.Errorf("malformed JSON: %w", err)
				}
				return out.String(), nil
			},
		},
		{
			ID:      "b64",
			Summary: "base64-encode",
			Fn: func(text string, _ []string) (string, error) {
				return base64.StdEncoding.EncodeToString([]byte(text)), nil
			},
		},
		{
			ID:      "b64d",
			Summary: "base64-decode",
			Fn: func(text string, _ []string) (string, error) {
				raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(text))
				if err != nil {
					return "", fmt.Errorf("malformed base64: %w", err)
				}
				if !utf8.Valid(raw) {
					return "", fmt.Errorf("decoded data is not valid UTF-8")
				}
				return string(raw), nil
			},
		},
	}
}

// slugify lowercases the text, collapses every run of non-alphanumeric
// characters into a single separator, and drops leading/trailing runs:
// "http://foo.bar/baz" with "+" becomes "http+foo+bar+baz".
func slugify(text, sep string) string {
	parts := nonAlnumRe.Split(strings.ToLower(text), -1)
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// titleCase uppercases the first letter of each whitespace- or
// punctuation-separated word and lowercases the rest.
func titleCase(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	prevLetter := false
	for _, r := range text {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// unescapeArg interprets the backslash escapes \n, \t, \r, \\, \' and \"
// in a quoted rule argument. Unknown escapes are kept verbatim, backslash
// included.
func unescapeArg(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		switch s[i+1] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\', '\'', '"':
			b.WriteByte(s[i+1])
		default:
			b.WriteByte(s[i])
			b.WriteByte(s[i+1])
		}
		i++
	}
	return b.String()
}
