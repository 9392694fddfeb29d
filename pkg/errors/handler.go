package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// slot boxes the installed handler so a nil interface can be told apart from
// an unset one.
type slot struct {
	handler ErrorHandler
}

var installed atomic.Pointer[slot]

func init() {
	installed.Store(&slot{handler: &LogHandler{}})
}

// Handler returns the handler that receives reported errors.
func Handler() ErrorHandler {
	return installed.Load().handler
}

// SetHandler installs h and returns the handler it replaced.
// Pass nil to restore a default LogHandler.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	return installed.Swap(&slot{handler: h}).handler
}

// Reportf reports an absorbed error for op with the given kind.
func Reportf(op string, kind ErrorKind, stack string, format string, args ...any) {
	Report(&ScrollError{
		Op:    op,
		Kind:  kind,
		Stack: stack,
		Err:   fmt.Errorf(format, args...),
	})
}

// Report sends err to the installed handler, stamping it with the current
// time if it has none.
func Report(err *ScrollError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportPanic sends a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandlePanic(err)
}

// Recover reports a panic in flight and swallows it. It only works when
// deferred directly:
//
//	defer errors.Recover("scroll.Stack.notify")
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
	})
}

// CaptureStack formats the caller's stack, one "function\n\tfile:line" entry
// per frame. Frames inside the runtime are left out.
func CaptureStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var sb strings.Builder
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !strings.HasPrefix(frame.Function, "runtime.") {
			fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	return sb.String()
}
