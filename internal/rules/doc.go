// Package rules holds the rule registry, the builtin text transforms, and
// the executor that threads text through a parsed pipeline.
//
// The registry is built once and looked up by id; rules are plain data
// (Spec values) so the rule set can be listed and tested without running
// anything. The executor fails fast: the first error aborts the pipeline
// and earlier steps' output is discarded.
//
// The enc/dec rules are ordinary registry entries backed by an injected
// CryptoProvider; registries built without one treat those ids as unknown.
package rules
