// Package domain contains the core types of the portable image builder.
package domain

// OperationResult is the outcome of a single pipeline run or entry point.
// It is immutable once constructed and serializes as a flat JSON record.
type OperationResult struct {
	Success     bool     `json:"success"`
	Message     string   `json:"message,omitempty"`
	Err         string   `json:"error,omitempty"`
	Diagnostics []string `json:"diagnostics,omitempty"`
}

// Succeeded constructs a success result carrying the diagnostics collected
// from earlier failed attempts.
func Succeeded(message string, diagnostics []string) OperationResult {
	return OperationResult{
		Success:     true,
		Message:     message,
		Diagnostics: diagnostics,
	}
}

// Failed constructs a failure result from an error and collected diagnostics.
func Failed(err error, diagnostics []string) OperationResult {
	r := OperationResult{
		Success:     false,
		Diagnostics: diagnostics,
	}
	if err != nil {
		r.Err = err.Error()
	}
	return r
}
