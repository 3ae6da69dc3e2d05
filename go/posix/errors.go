package posix

import (
	"fmt"
	"syscall"

	"github.com/pkg/errors"
)

// ErrUnimplemented matches every *UnimplementedError.
var ErrUnimplemented = errors.New("not implemented")

// Error is a native call that ran and failed. It unwraps to its Errno, so
// errors.Is(err, syscall.ENOENT) works.
type Error struct {
	Errno syscall.Errno
	Op    string
	Arg   string
}

func (e *Error) Error() string {
	if e.Arg == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Errno)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, e.Arg, e.Errno)
}

func (e *Error) Unwrap() error { return e.Errno }

// UnimplementedError is an operation this platform cannot perform, either
// because the native entry point is missing or because no stat generation
// was found.
type UnimplementedError struct {
	Op string
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("%s is not implemented on this platform", e.Op)
}

func (e *UnimplementedError) Is(target error) bool { return target == ErrUnimplemented }
