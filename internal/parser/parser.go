package parser

import (
	"fmt"
)

// Rule is a single parsed step: a rule identifier and its quoted arguments,
// in source order.
type Rule struct {
	ID   string
	Args []string
}

// Pipeline is the ordered sequence of rules parsed from one rule string.
// Application order equals left-to-right occurrence in the source.
type Pipeline []Rule

// ParseError describes a syntax error in a rule string. It carries the byte
// offset where scanning stopped.
type ParseError struct {
	Msg string
	Pos int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Pos, e.Msg)
}

func isIdentChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// Parse tokenizes a rule string like "/t/l" or "/r 'old' 'new'" into a
// Pipeline. A slash-delimited run of identifiers is a sequential chain:
// every identifier except the last becomes a zero-argument step, and the
// last becomes the current rule that collects any following quoted
// arguments. Parse is pure syntax; it does not know which identifiers are
// registered, and it does not interpret backslash escapes inside quoted
// arguments (quoted bytes pass through verbatim).
func Parse(input string) (Pipeline, error) {
	if len(input) == 0 || input[0] != '/' {
		return nil, &ParseError{Msg: "missing leading slash", Pos: 0}
	}

	var pipeline Pipeline
	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case c == '/':
			i++
			start := i
			for i < len(input) && isIdentChar(input[i]) {
				i++
			}
			// A bare or doubled slash contributes nothing; "/" alone
			// falls through to the no-rules check below.
			if i > start {
				pipeline = append(pipeline, Rule{ID: input[start:i]})
			}
		case c == '\'' || c == '"':
			quote := c
			i++
			start := i
			for i < len(input) && input[i] != quote {
				i++
			}
			if i == len(input) {
				return nil, &ParseError{Msg: "unterminated quote", Pos: start - 1}
			}
			if len(pipeline) == 0 {
				return nil, &ParseError{Msg: "argument before any rule", Pos: start - 1}
			}
			last := &pipeline[len(pipeline)-1]
			last.Args = append(last.Args, input[start:i])
			i++
		case isSpace(c):
			i++
		default:
			return nil, &ParseError{Msg: fmt.Sprintf("unexpected character %q", c), Pos: i}
		}
	}

	if len(pipeline) == 0 {
		return nil, &ParseError{Msg: "no rules found", Pos: len(input)}
	}
	return pipeline, nil
}
