// File model contains the virtual file descriptors which are later served to
// the virtual disk builder.

package efifile

import "errors"

const (
	// MaxFiles bounds the virtual file table. The table is a fixed boot-time
	// resource, exceeding it is a fatal condition and never a silent
	// truncation.
	MaxFiles = 8

	// vdiskNameLen is the size of a descriptor name buffer including its
	// terminator. Names are truncated to vdiskNameLen-1 bytes when stored.
	vdiskNameLen = 32
)

// These errors may occur while populating the virtual file table.
var (
	ErrTooManyFiles = errors.New("too many files in the root directory")
	ErrNoBootFile   = errors.New("no boot file found")
)

// ReadFunc is the positioned-read strategy of a descriptor: it fills p with
// the bytes starting at offset. A short read is a fatal fault, not a partial
// result.
type ReadFunc func(p []byte, offset int64) error

// PatchFunc is the content transform applied to a descriptor's bytes after a
// read completes and before the content reaches the rest of the boot
// pipeline. data is patched in place; offset is the position of data within
// the whole file and is used for diagnostics only.
type PatchFunc func(data []byte, offset int64) error

// VFile describes one extracted file. Size is fixed at extraction time and
// never re-queried. Patch is nil for files without a content transform.
type VFile struct {
	Name  string
	Size  int64
	Read  ReadFunc
	Patch PatchFunc
}

// Table is the ordered, bounded collection of descriptors produced by a
// single extraction pass. Insertion order is directory enumeration order.
// After the scan returns the table is read-only.
type Table struct {
	files []VFile

	// BootName is the name of the chosen boot image, the first entry that
	// matched the architecture default boot file or bootmgfw.efi. Empty only
	// while a scan is still running.
	BootName string
}

// Files returns the descriptors in enumeration order.
func (t *Table) Files() []VFile { return t.files }

// Len returns the number of descriptors.
func (t *Table) Len() int { return len(t.files) }

// append adds a descriptor, failing with ErrTooManyFiles once MaxFiles is
// reached. There is intentionally no removal or eviction.
func (t *Table) append(f VFile) error {
	if len(t.files) >= MaxFiles {
		return ErrTooManyFiles
	}

	t.files = append(t.files, f)
	return nil
}

// boundName truncates name to the descriptor name capacity, excluding the
// terminator byte the fixed name buffer reserves.
func boundName(name string) string {
	if len(name) > vdiskNameLen-1 {
		return name[:vdiskNameLen-1]
	}
	return name
}
