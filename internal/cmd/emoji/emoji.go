// Package emoji provides symbol constants for CLI output.
package emoji

// Status symbols shared by the check, fields and docs commands.
const (
	// Success marks agreement with the canonical value or a passing check.
	Success = "✓"

	// Error marks a disagreeing document type or a failed check.
	Error = "✗"

	// Warning marks a risk score at or above the configured threshold.
	Warning = "!"

	// Optional marks a field a document type did not supply.
	Optional = "-"

	// Important marks catalog fields that identify the vehicle.
	Important = "*"
)
