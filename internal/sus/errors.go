package sus

import "fmt"

// ValidationError is returned for input that cannot produce a well formed
// document. Nothing is written when one is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid score: " + e.Reason
}

// ResourceExhaustedError is returned when one of the format's fixed
// identifier pools overflows. The pools cannot grow, the input has to
// shrink instead.
type ResourceExhaustedError struct {
	Resource string
	Limit    int
}

func (e *ResourceExhaustedError) Error() string {
	return fmt.Sprintf("no %v left, all %v in use", e.Resource, e.Limit)
}
