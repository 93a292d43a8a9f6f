// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

const (
	// Dataset operations
	OpDatasetLoad     Op = "load dataset"
	OpDatasetTypeLoad Op = "switch dataset type"

	// Selection operations
	OpCategorySelect Op = "select category"

	// Player
	OpPlayerOpen Op = "open player"

	// Initialization
	OpInitialize Op = "initialize application"
	OpServe      Op = "start web server"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message naming the subject of the operation.
func FormatWith(op Op, subject string, err error) string {
	if err == nil {
		return ""
	}
	if subject == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, subject, err)
}
