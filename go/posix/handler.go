package posix

import (
	"fmt"
	"syscall"

	log "github.com/sirupsen/logrus"
)

type WarningID int

const (
	WarnUnimplemented WarningID = iota
	WarnBadConfig
	WarnFallbackArch
)

var warningNames = map[WarningID]string{
	WarnUnimplemented: "unimplemented",
	WarnBadConfig:     "bad-config",
	WarnFallbackArch:  "fallback-arch",
}

func (w WarningID) String() string {
	if name, ok := warningNames[w]; ok {
		return name
	}
	return fmt.Sprintf("warning-%d", int(w))
}

// Handler turns native failures into errors. Error and Unimplemented must
// return a non-nil error.
type Handler interface {
	Error(errno syscall.Errno, op, arg string) error
	Unimplemented(op string) error
	Warn(id WarningID, msg string, args ...interface{})
	// IsVerbose enables a log line for every failed call.
	IsVerbose() bool
}

// DefaultHandler returns *Error and *UnimplementedError values and logs
// through logrus.
type DefaultHandler struct {
	Log     *log.Logger
	Verbose bool
}

func NewDefaultHandler(logger *log.Logger, verbose bool) *DefaultHandler {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &DefaultHandler{Log: logger, Verbose: verbose}
}

func (h *DefaultHandler) Error(errno syscall.Errno, op, arg string) error {
	return &Error{Errno: errno, Op: op, Arg: arg}
}

func (h *DefaultHandler) Unimplemented(op string) error {
	h.Warn(WarnUnimplemented, "%s is not implemented on this platform", op)
	return &UnimplementedError{Op: op}
}

func (h *DefaultHandler) Warn(id WarningID, msg string, args ...interface{}) {
	h.Log.WithField("warning", id.String()).Warnf(msg, args...)
}

func (h *DefaultHandler) IsVerbose() bool { return h.Verbose }
