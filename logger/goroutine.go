package logger

import (
	"bytes"
	"runtime"
)

var goroutinePrefix = []byte("goroutine ")

// goroutineName returns "goroutine N" for the calling goroutine, the
// closest thing Go has to a thread name.
func goroutineName() string {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := buf[:n]
	if !bytes.HasPrefix(b, goroutinePrefix) {
		return "goroutine"
	}
	b = b[len(goroutinePrefix):]
	if i := bytes.IndexByte(b, ' '); i > 0 {
		b = b[:i]
	}
	return "goroutine " + string(b)
}
