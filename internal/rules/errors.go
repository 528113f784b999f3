package rules

import "fmt"

// UnknownRuleError reports a rule identifier that is not registered. It is
// a semantic error raised by the executor, never the parser.
type UnknownRuleError struct {
	ID string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("unknown rule %q", e.ID)
}

// MissingArgumentError reports a rule invoked with fewer arguments than it
// requires, after default-argument substitution.
type MissingArgumentError struct {
	ID   string
	Want int
	Got  int
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("rule %q requires %d argument(s), got %d", e.ID, e.Want, e.Got)
}

// RuleError wraps a failure from inside a rule's own transform, carrying
// the failing rule id.
type RuleError struct {
	ID  string
	Err error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("rule %q failed: %v", e.ID, e.Err)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}
