package lessons

import "errors"

// Sentinel errors.
var (
	// ErrNoBasePath is returned when the executable location is unknown.
	ErrNoBasePath = errors.New("lessons: base path unavailable")

	// ErrSubsystem is returned when an operation needs a subsystem
	// (image or font loading) that was not initialized.
	ErrSubsystem = errors.New("lessons: subsystem not initialized")

	// ErrClosed is returned when a device or texture is used after Close.
	ErrClosed = errors.New("lessons: use of closed resource")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("lessons: invalid config")
)

// OpError records a failed library call and the operation that made it.
// Its message mirrors the "<call> Error: <reason>" lines lessons print.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	if e.Err == nil {
		return e.Op + " Error"
	}
	return e.Op + " Error: " + e.Err.Error()
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// WrapOp wraps err as an *OpError unless err is nil.
func WrapOp(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Err: err}
}
