package parsing

import "fmt"

// InternalError wraps a failure raised while extracting fields from a resume.
// Parse never returns it; it is logged and replaced by the default result.
type InternalError struct {
	Stage string
	Cause any
}

func (e *InternalError) Error() string {
	if e.Stage != "" {
		return fmt.Sprintf("resume parse failed in %s: %v", e.Stage, e.Cause)
	}
	return fmt.Sprintf("resume parse failed: %v", e.Cause)
}

// Unwrap returns the underlying error when the recovered value was one
func (e *InternalError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}
