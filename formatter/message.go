package formatter

import (
	"errors"
	"fmt"
	"strings"
)

const (
	delimStart = '{'
	delimStr   = "{}"
	escapeChar = '\\'
)

// Tuple is the result of substituting arguments into a message pattern.
// Err holds a trailing error argument that no placeholder consumed.
type Tuple struct {
	Message string
	Err     error
}

// AmbiguousThrowableError is returned when a call supplies an explicit error
// and its argument list also ends with an unconsumed error.
type AmbiguousThrowableError struct {
	Explicit error
	Trailing error
}

func (e *AmbiguousThrowableError) Error() string {
	return fmt.Sprintf("ambiguous throwable: explicit error %q and trailing argument error %q",
		e.Explicit, e.Trailing)
}

// Unwrap exposes both errors to errors.Is and errors.As.
func (e *AmbiguousThrowableError) Unwrap() []error {
	return []error{e.Explicit, e.Trailing}
}

// Format substitutes a single argument into pattern.
func Format(pattern string, arg any) Tuple {
	return ArrayFormat(pattern, []any{arg})
}

// Format2 substitutes two arguments into pattern.
func Format2(pattern string, arg1, arg2 any) Tuple {
	return ArrayFormat(pattern, []any{arg1, arg2})
}

// ArrayFormat substitutes args, in order, for each "{}" in pattern.
//
// "\{}" renders a literal "{}" without consuming an argument and "\\{}"
// renders a single backslash followed by the argument. Extra arguments are
// ignored and extra placeholders are left as-is. If the final argument is an
// error and no placeholder consumed it, it is returned in Tuple.Err instead
// of being rendered.
func ArrayFormat(pattern string, args []any) Tuple {
	if len(args) == 0 {
		return Tuple{Message: pattern}
	}

	buf := getBuffer()
	defer putBuffer(buf)

	i, used := 0, 0
	for used < len(args) {
		j := strings.Index(pattern[i:], delimStr)
		if j < 0 {
			break
		}
		j += i

		switch {
		case !isEscaped(pattern, j):
			buf.WriteString(pattern[i:j])
			writeArg(buf, args[used])
			used++
			i = j + len(delimStr)
		case isDoubleEscaped(pattern, j):
			// keep one backslash, then substitute
			buf.WriteString(pattern[i : j-1])
			writeArg(buf, args[used])
			used++
			i = j + len(delimStr)
		default:
			buf.WriteString(pattern[i : j-1])
			buf.WriteByte(delimStart)
			i = j + 1
		}
	}
	buf.WriteString(pattern[i:])

	t := Tuple{Message: buf.String()}
	if used < len(args) {
		if err, ok := args[len(args)-1].(error); ok {
			t.Err = err
		}
	}
	return t
}

// FormatWithErr formats like ArrayFormat and attaches err as the tuple's error.
// It fails with *AmbiguousThrowableError when err is non-nil and args also
// end with an unconsumed error.
func FormatWithErr(pattern string, args []any, err error) (Tuple, error) {
	t := ArrayFormat(pattern, args)
	if err == nil {
		return t, nil
	}
	if t.Err != nil {
		return Tuple{}, &AmbiguousThrowableError{Explicit: err, Trailing: t.Err}
	}
	t.Err = err
	return t, nil
}

// IsAmbiguous reports whether err is an *AmbiguousThrowableError.
func IsAmbiguous(err error) bool {
	var target *AmbiguousThrowableError
	return errors.As(err, &target)
}

func isEscaped(pattern string, delimIndex int) bool {
	return delimIndex > 0 && pattern[delimIndex-1] == escapeChar
}

func isDoubleEscaped(pattern string, delimIndex int) bool {
	return delimIndex > 1 && pattern[delimIndex-2] == escapeChar
}

// failedRender replaces an argument whose formatting panicked
const failedRender = "[FAILED toString()]"

type stringWriter interface {
	WriteString(s string) (int, error)
}

func writeArg(w stringWriter, arg any) {
	defer func() {
		if r := recover(); r != nil {
			w.WriteString(failedRender)
		}
	}()

	switch v := arg.(type) {
	case nil:
		w.WriteString("null")
	case string:
		w.WriteString(v)
	case error:
		w.WriteString(v.Error())
	case fmt.Stringer:
		w.WriteString(v.String())
	default:
		w.WriteString(fmt.Sprint(v))
	}
}
