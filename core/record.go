package core

import (
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Record is a single decorated log line on its way to a sink
type Record struct {
	Time       time.Time
	Level      SinkLevel
	LoggerName string
	Message    string
	Err        error
	Caller     CallerInfo
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	PC        uintptr
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// Class returns the package-qualified receiver or package part of Function,
// e.g. "example.com/app/store.(*DB)" for "example.com/app/store.(*DB).Get".
func (c CallerInfo) Class() string {
	if !c.Defined {
		return ""
	}
	class, _ := splitFunction(c.Function)
	return class
}

// Method returns the bare function or method name of the caller.
func (c CallerInfo) Method() string {
	if !c.Defined {
		return ""
	}
	_, method := splitFunction(c.Function)
	return method
}

func splitFunction(fn string) (class, method string) {
	// The package path may itself contain dots, so look after the last slash.
	slash := strings.LastIndexByte(fn, '/')
	dot := strings.LastIndexByte(fn[slash+1:], '.')
	if dot < 0 {
		return "", fn
	}
	dot += slash + 1
	return fn[:dot], fn[dot+1:]
}

// recordPool is a pool of Record objects to reduce allocations
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{}
	},
}

// GetRecord retrieves a Record from the pool
func GetRecord() *Record {
	r := recordPool.Get().(*Record)
	r.Time = time.Now()
	return r
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	*r = Record{}
	recordPool.Put(r)
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		PC:        pc,
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}

// maxCallerDepth bounds the stack walk done by FindCaller
const maxCallerDepth = 32

// FindCaller walks the stack and returns the first frame whose function does
// not belong to any of the given package paths. An undefined CallerInfo is
// returned when no such frame exists.
func FindCaller(skip int, pkgs ...string) CallerInfo {
	var pcs [maxCallerDepth]uintptr
	n := runtime.Callers(skip+2, pcs[:])
	if n == 0 {
		return CallerInfo{}
	}

	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !inPackages(frame.Function, pkgs) {
			return CallerInfo{
				// CallersFrames expects return addresses, so undo its -1.
				PC:        frame.PC + 1,
				File:      frame.File,
				ShortFile: filepath.Base(frame.File),
				Line:      frame.Line,
				Function:  frame.Function,
				Defined:   true,
			}
		}
		if !more {
			return CallerInfo{}
		}
	}
}

func inPackages(fn string, pkgs []string) bool {
	for _, p := range pkgs {
		if strings.HasPrefix(fn, p) && len(fn) > len(p) && fn[len(p)] == '.' {
			return true
		}
	}
	return false
}
