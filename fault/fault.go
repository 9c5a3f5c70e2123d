// Package fault carries the unrecoverable faults of the boot-time extraction
// pass. Every fault records the failing operation and the caller that raised
// it, which results in something similar to a single-level stacktrace. The
// wrapped status or sentinel error can be checked by errors.Is and retrieved
// by errors.As.
package fault

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
)

// Kind classifies a fault. Every kind is fatal to the boot pipeline; the kind
// only states which contract was broken.
type Kind uint8

const (
	// Firmware marks a firmware call that returned a non-success status.
	Firmware Kind = iota + 1
	// Capacity marks an exhausted virtual file table.
	Capacity
	// MissingBootFile marks a full scan that found no boot file.
	MissingBootFile
)

func (k Kind) String() string {
	switch k {
	case Firmware:
		return "firmware fault"
	case Capacity:
		return "capacity exceeded"
	case MissingBootFile:
		return "missing boot file"
	default:
		return "unknown fault"
	}
}

// Fault is the error returned for every fatal condition of the extraction
// pass. The extraction itself never terminates the process; the top-level
// caller decides what to do with a Fault.
type Fault struct {
	kind Kind
	op   string
	err  error

	callerOk bool
	file     string
	line     int
}

// New builds a fault for the failing operation op wrapping err and decorates
// it with some caller information. err may be nil if the condition has no
// underlying status, for example a missing boot file after a full scan.
func New(kind Kind, op string, err error) *Fault {
	// Get the caller information.
	_, file, line, ok := runtime.Caller(1)

	return &Fault{
		kind: kind,
		op:   op,
		err:  err,

		callerOk: ok,
		file:     filepath.Base(file),
		line:     line,
	}
}

// Kind returns the fault classification.
func (f *Fault) Kind() Kind { return f.kind }

// Op returns the operation that raised the fault.
func (f *Fault) Op() string { return f.op }

func (f *Fault) Error() string {
	at := "unknown"
	if f.callerOk {
		at = fmt.Sprintf("%s:%d", f.file, f.line)
	}

	if f.err == nil {
		return fmt.Sprintf("%v: %s (%s)", f.kind, f.op, at)
	}
	return fmt.Sprintf("%v: %s: %v (%s)", f.kind, f.op, f.err, at)
}

func (f *Fault) Unwrap() error { return f.err }

// KindOf returns the kind of err if it is (or wraps) a Fault, zero otherwise.
func KindOf(err error) Kind {
	var f *Fault
	if errors.As(err, &f) {
		return f.kind
	}
	return 0
}
