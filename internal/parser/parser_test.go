package parser

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, input string) Pipeline {
	t.Helper()
	p, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", input, err)
	}
	return p
}

func TestParse_SingleRule(t *testing.T) {
	p := mustParse(t, "/t")
	if len(p) != 1 {
		t.Fatalf("Expected 1 rule, got %d", len(p))
	}
	if p[0].ID != "t" {
		t.Errorf("Expected rule id %q, got %q", "t", p[0].ID)
	}
	if len(p[0].Args) != 0 {
		t.Errorf("Expected no args, got %v", p[0].Args)
	}
}

func TestParse_Chain(t *testing.T) {
	p := mustParse(t, "/t/l/u")
	want := []string{"t", "l", "u"}
	if len(p) != len(want) {
		t.Fatalf("Expected %d rules, got %d", len(want), len(p))
	}
	for i, id := range want {
		if p[i].ID != id {
			t.Errorf("Rule %d: expected id %q, got %q", i, id, p[i].ID)
		}
		if len(p[i].Args) != 0 {
			t.Errorf("Rule %d: expected no args, got %v", i, p[i].Args)
		}
	}
}

func TestParse_Deterministic(t *testing.T) {
	a := mustParse(t, "/t/l")
	b := mustParse(t, "/t/l")
	if len(a) != len(b) {
		t.Fatalf("Parse is not deterministic: %v vs %v", a, b)
	}
	for i := range a {
		if a[i].ID != b[i].ID || len(a[i].Args) != len(b[i].Args) {
			t.Errorf("Parse is not deterministic at rule %d", i)
		}
	}
}

func TestParse_QuotedArgs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		id    string
		args  []string
	}{
		{"single quotes", "/S '+'", "S", []string{"+"}},
		{"double quotes", `/S "+"`, "S", []string{"+"}},
		{"two args", "/r 'old' 'new'", "r", []string{"old", "new"}},
		{"empty arg", "/r 'x' ''", "r", []string{"x", ""}},
		{"arg with spaces", "/r 'hello world' '_'", "r", []string{"hello world", "_"}},
		{"mixed quotes", `/r 'it"s' "it's"`, "r", []string{`it"s`, "it's"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustParse(t, tt.input)
			if len(p) != 1 {
				t.Fatalf("Expected 1 rule, got %d", len(p))
			}
			if p[0].ID != tt.id {
				t.Errorf("Expected id %q, got %q", tt.id, p[0].ID)
			}
			if len(p[0].Args) != len(tt.args) {
				t.Fatalf("Expected args %v, got %v", tt.args, p[0].Args)
			}
			for i, a := range tt.args {
				if p[0].Args[i] != a {
					t.Errorf("Arg %d: expected %q, got %q", i, a, p[0].Args[i])
				}
			}
		})
	}
}

func TestParse_ArgsAttachToLastRuleOfChain(t *testing.T) {
	p := mustParse(t, "/t/S '+'")
	if len(p) != 2 {
		t.Fatalf("Expected 2 rules, got %d", len(p))
	}
	if len(p[0].Args) != 0 {
		t.Errorf("Expected first rule to have no args, got %v", p[0].Args)
	}
	if len(p[1].Args) != 1 || p[1].Args[0] != "+" {
		t.Errorf("Expected second rule args [+], got %v", p[1].Args)
	}
}

func TestParse_ChainContinuesAfterArgs(t *testing.T) {
	p := mustParse(t, "/r 'a' 'b' /l")
	if len(p) != 2 {
		t.Fatalf("Expected 2 rules, got %d", len(p))
	}
	if p[0].ID != "r" || len(p[0].Args) != 2 {
		t.Errorf("Unexpected first rule: %+v", p[0])
	}
	if p[1].ID != "l" || len(p[1].Args) != 0 {
		t.Errorf("Unexpected second rule: %+v", p[1])
	}
}

func TestParse_EscapesPassThroughVerbatim(t *testing.T) {
	// The parser does not interpret backslash escapes; a quoted \n stays
	// two characters. Unescaping is the consuming rule's business.
	p := mustParse(t, `/r '\n' ' '`)
	if p[0].Args[0] != `\n` {
		t.Errorf("Expected literal backslash-n, got %q", p[0].Args[0])
	}
}

func TestParse_UnknownIdIsNotAParseError(t *testing.T) {
	p := mustParse(t, "/zz")
	if p[0].ID != "zz" {
		t.Errorf("Expected id %q, got %q", "zz", p[0].ID)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"missing leading slash", "t/l"},
		{"leading whitespace", " /t"},
		{"unterminated single quote", "/r 'old"},
		{"unterminated double quote", `/r "old`},
		{"bare slash", "/"},
		{"bare text outside quotes", "/r old new"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, expected error", tt.input)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Errorf("Expected *ParseError, got %T: %v", err, err)
			}
		})
	}
}

func TestParse_NoDefaultSubstitution(t *testing.T) {
	// Default arguments are resolved by the executor, never the parser.
	p := mustParse(t, "/S")
	if len(p) != 1 || p[0].ID != "S" || len(p[0].Args) != 0 {
		t.Errorf("Expected [{S []}], got %v", p)
	}
}
