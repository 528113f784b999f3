// Package errors defines sentinel error values shared across remold
// packages, so callers can match failure classes with errors.Is without
// importing the package that produced them.
package errors
