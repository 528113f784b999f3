// Package parser turns rule strings like "/t/l" or "/S '+'" into an
// ordered pipeline of rule invocations. Parsing is pure syntax: unknown
// rule identifiers are not an error here, they are caught by the executor.
package parser
