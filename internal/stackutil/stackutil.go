package stackutil

import (
	"fmt"
	"runtime"
)

// GetStack returns up to depth frames of the caller's stack, skipping skip
// frames above the caller.
func GetStack(depth, skip int) []runtime.Frame {
	pc := make([]uintptr, depth)

	// skip runtime.Callers and this function
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return []runtime.Frame{}
	}

	frames := runtime.CallersFrames(pc[:n])

	var a []runtime.Frame
	for {
		frame, more := frames.Next()
		a = append(a, frame)

		if !more {
			break
		}
	}

	return a
}

func FormatStackFrame(f runtime.Frame) string {
	return fmt.Sprintf("%s:%d: %s", f.File, f.Line, f.Function)
}
