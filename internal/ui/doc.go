// Package ui provides semantic text formatting for CLI output.
//
// Formatters render appropriately based on terminal capabilities. When
// colors are available, content is colorized. When NO_COLOR is set or the
// terminal doesn't support colors, text-based decorations (backticks,
// quotes) are used instead.
package ui
