package errors

import "fmt"

// Startup phases reported by StartupError.
const (
	PhaseConfig   = "config"
	PhaseLogger   = "logger"
	PhaseDatabase = "database"
	PhaseRedis    = "redis"
)

// StartupError represents a failure that prevents the service from serving.
type StartupError struct {
	Phase string
	Err   error
}

// NewStartupError wraps err with the phase in which it happened.
func NewStartupError(phase string, err error) *StartupError {
	return &StartupError{
		Phase: phase,
		Err:   err,
	}
}

// Error implements the error interface
func (e *StartupError) Error() string {
	return fmt.Sprintf("%s: %v", e.Phase, e.Err)
}

// Unwrap returns the wrapped error
func (e *StartupError) Unwrap() error {
	return e.Err
}
