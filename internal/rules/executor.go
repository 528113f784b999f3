package rules

import (
	"fmt"

	"github.com/korimako/remold/internal/parser"
)

// Executor applies a parsed pipeline against a registry, threading the
// text through each step in order. It is stateless and safe to reuse.
type Executor struct {
	registry *Registry
}

// NewExecutor returns an Executor over the given registry.
func NewExecutor(registry *Registry) *Executor {
	return &Executor{registry: registry}
}

// Apply runs the pipeline left to right. The first failure aborts the
// whole pipeline; no partial result is returned.
func (e *Executor) Apply(text string, pipeline parser.Pipeline) (string, error) {
	for _, rule := range pipeline {
		spec, ok := e.registry.Lookup(rule.ID)
		if !ok {
			return "", &UnknownRuleError{ID: rule.ID}
		}

		args := rule.Args
		if len(args) == 0 && len(spec.DefaultArgs) > 0 {
			args = spec.DefaultArgs
		}
		if len(args) < spec.MinArgs {
			return "", &MissingArgumentError{ID: rule.ID, Want: spec.MinArgs, Got: len(args)}
		}
		if len(args) > spec.MaxArgs {
			return "", &RuleError{ID: rule.ID, Err: fmt.Errorf("too many arguments: got %d, max %d", len(args), spec.MaxArgs)}
		}

		out, err := spec.Fn(text, args)
		if err != nil {
			return "", &RuleError{ID: rule.ID, Err: err}
		}
		text = out
	}
	return text, nil
}

// ApplyString parses ruleString and applies the resulting pipeline to
// text. This is the single entry point used by the CLI commands.
func (e *Executor) ApplyString(text, ruleString string) (string, error) {
	pipeline, err := parser.Parse(ruleString)
	if err != nil {
		return "", err
	}
	return e.Apply(text, pipeline)
}
