package efifile

import (
	"fmt"
	"io"
)

// Status is a raw firmware status code in the EFI style: zero means success
// and the top bit marks an error. It is carried through the fatal-error path
// so diagnostics can show the original code.
type Status uintptr

// errBit is the top bit of a status word.
const errBit = ^Status(0) &^ (^Status(0) >> 1)

// Status codes used by the hosted backend. A real firmware backend may return
// any value, they are passed through without interpretation.
const (
	StatusSuccess     Status = 0
	StatusDeviceError Status = errBit | 7
	StatusNotFound    Status = errBit | 14
	StatusEndOfFile   Status = errBit | 31
)

func (s Status) Error() string {
	return fmt.Sprintf("status %#x", uintptr(s))
}

// DirEntry is one raw directory record as the firmware returns it: the entry
// name as UTF-16LE code units (optionally NUL-terminated) and the file size
// in bytes.
type DirEntry struct {
	RawName []byte
	Size    int64
}

// FileSystem is the firmware file-system boundary the extraction runs
// against. Implementations wrap whatever protocol exposes the boot volume.
// It mainly exists to keep the descriptor table polymorphic over backing
// stores and to be able to mock the firmware in tests.
// Generated mock using mockgen:
//  mockgen -source=firmware.go -destination=firmware_mock.go -package efifile
type FileSystem interface {
	OpenRoot() (Directory, error)
}

// Directory yields one raw entry per ReadEntry call and io.EOF at
// end-of-directory (the protocol's zero-size read). Entries come back in
// whatever order the firmware returns them, no ordering may be assumed.
type Directory interface {
	ReadEntry() (DirEntry, error)
	Open(name string) (File, error)
}

// File is an open read-only firmware file. The handle is owned by the
// surrounding boot process for its entire lifetime and is never closed by
// this package.
type File interface {
	io.ReadSeeker
}
