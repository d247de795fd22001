// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Search operations
	OpSearch Op = "search files"

	// Result operations
	OpOpenResult   Op = "open file"
	OpLaunchSearch Op = "open search application"

	// Shell integration
	OpRegister   Op = "register search provider"
	OpUnregister Op = "unregister search provider"
	OpInstall    Op = "install search provider files"

	// Initialization
	OpLoadConfig Op = "load configuration"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
