package offersRepo

import "fmt"

// NotFoundError reports an Offer Store miss. The orchestrator treats it as a
// signal to try the next tier, never as a failure.
type NotFoundError struct {
	What string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("notFound: %s", e.What)
}

func NewNotFoundError(format string, args ...any) error {
	return &NotFoundError{What: fmt.Sprintf(format, args...)}
}

// RateLimitError reports throttling from the store's backing service. The
// orchestrator retries the call once after a fixed delay, then treats it as a
// miss.
type RateLimitError struct {
	Op  string
	Err error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rateLimited: %s: %v", e.Op, e.Err)
}

func (e *RateLimitError) Unwrap() error { return e.Err }
