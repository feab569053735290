package focusbench

import "fmt"

// DomainError reports a physically out-of-range input: negative power,
// non-positive radius or thickness, a stiffness ratio outside [0, 1].
//
// Domain errors are raised at the point of violation and propagate to the
// caller unmodified. The core never retries and never recovers silently:
// every computation is deterministic, so repeating it without changed input
// reproduces the identical failure.
type DomainError struct {
	Quantity   string  // What was out of range ("power", "radius", ...)
	Value      float64 // The offending value
	Constraint string  // The violated constraint, human readable
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("domain error: %s = %g violates %s",
		e.Quantity, e.Value, e.Constraint)
}

// InsufficientDataError reports an empty trial collection or a required
// comparison group that carries no usable variability information.
type InsufficientDataError struct {
	Group  string // Which collection or group ("stable", "cliff", "outcomes")
	Reason string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data in %s group: %s", e.Group, e.Reason)
}

// ConfigurationError reports a machine profile that cannot be constructed:
// a missing required numeric field without a default, or a field outside its
// documented range (numerical aperture outside (0, 1], non-positive budget).
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("profile configuration error: field %q: %s", e.Field, e.Reason)
}
