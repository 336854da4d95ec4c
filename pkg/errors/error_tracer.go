package errors

import "github.com/pkg/errors"

// ErrorTracer carries a message and the underlying error with its stack trace.
type ErrorTracer struct {
	Message string
	Err     error
}

// StackTracer is an interface that requires a StackTrace method.
type StackTracer interface {
	StackTrace() errors.StackTrace
}

// NewTracer creates a new ErrorTracer with the provided message.
func NewTracer(message string) *ErrorTracer {
	return &ErrorTracer{
		Message: message,
	}
}

// TracerFromError creates a new ErrorTracer from an existing error, preserving the stack trace.
// Returns nil when err is nil so it can wrap call results directly.
func TracerFromError(err error) error {
	if err == nil {
		return nil
	}

	if tracer, ok := err.(*ErrorTracer); ok {
		return tracer
	}

	tracer := NewTracer(err.Error())
	tracer.Err = err
	if _, ok := err.(StackTracer); !ok {
		tracer.Err = errors.WithStack(err)
	}
	return tracer
}

func (e *ErrorTracer) Error() string {
	return e.Message
}

func (e *ErrorTracer) Unwrap() error {
	return e.Err
}

// StackTrace returns the stack trace of the underlying error if it implements StackTracer.
func (e *ErrorTracer) StackTrace() errors.StackTrace {
	if errWithStack, ok := e.Err.(StackTracer); ok {
		return errWithStack.StackTrace()
	}
	return nil
}
