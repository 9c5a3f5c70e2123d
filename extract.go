// Package efifile extracts the files of a firmware boot volume into a bounded
// table of virtual file descriptors. Each descriptor carries the strategies
// the rest of the boot pipeline needs: a positioned read bound to the open
// firmware handle and, for the BCD store and WIM images, a content patch.
package efifile

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/efikit/efifile/fault"
)

// Options configures a single extraction pass.
type Options struct {
	// RawBCD disables the .exe to .efi substitution on the BCD store, the
	// file then passes through unmodified.
	RawBCD bool

	// PatchWIM is attached verbatim as the patch strategy of .wim
	// descriptors. It is opaque to this package; nil leaves WIM files
	// unpatched.
	PatchWIM PatchFunc

	// Logger receives scan and patch diagnostics. nil discards them.
	Logger *slog.Logger
}

type extractor struct {
	opts Options
	log  *slog.Logger
}

func newExtractor(opts Options) *extractor {
	e := &extractor{opts: opts, log: opts.Logger}
	if e.log == nil {
		e.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return e
}

// Extract enumerates the root directory of fsys and builds the virtual file
// table for this boot. The scan runs once, single-threaded, and the returned
// table is read-only afterwards.
//
// Any firmware failure, a root directory with more than MaxFiles entries and
// a full scan without a boot file all abort the pass with a *fault.Fault;
// none of these conditions is recoverable at this layer.
func Extract(fsys FileSystem, opts Options) (*Table, error) {
	return newExtractor(opts).extract(fsys)
}

func (e *extractor) extract(fsys FileSystem) (*Table, error) {
	root, err := fsys.OpenRoot()
	if err != nil {
		return nil, fault.New(fault.Firmware, "open root directory", err)
	}

	table := &Table{}
	for {
		entry, err := root.ReadEntry()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fault.New(fault.Firmware, "read root directory", err)
		}

		if table.Len() >= MaxFiles {
			return nil, fault.New(fault.Capacity, "add file", ErrTooManyFiles)
		}

		name, err := decodeWideName(entry.RawName)
		if err != nil {
			return nil, fault.New(fault.Firmware, "decode entry name", err)
		}

		file, err := root.Open(name)
		if err != nil {
			return nil, fault.New(fault.Firmware, fmt.Sprintf("open %q", name), err)
		}

		vf := VFile{
			Name: boundName(name),
			Size: entry.Size,
			Read: readAdapter(file),
		}

		switch classify(name) {
		case roleBoot:
			// First match wins, later duplicates do not move the marker.
			if table.BootName == "" {
				table.BootName = vf.Name
			}
			e.log.Debug("found boot file", slog.String("name", name))
		case roleBCD:
			vf.Patch = e.patchBCD
			e.log.Debug("found BCD store", slog.String("name", name))
		case roleWIM:
			vf.Patch = e.opts.PatchWIM
			e.log.Debug("found WIM image", slog.String("name", name))
		}

		if err := table.append(vf); err != nil {
			return nil, fault.New(fault.Capacity, "add file", err)
		}
		e.log.Debug("using file",
			slog.String("name", vf.Name), slog.Int64("size", vf.Size))
	}

	// Check that we have a boot file.
	if table.BootName == "" {
		return nil, fault.New(fault.MissingBootFile,
			fmt.Sprintf("no %s or %s found", BootArchName(), bootmgfw),
			ErrNoBootFile)
	}
	return table, nil
}

// readAdapter binds file into the positioned-read strategy of a descriptor:
// seek to offset, then fill p completely. A failed seek, a failed read and a
// short read are all fatal, there is no retry and no partial-read recovery.
// The handle stays open, the firmware owns it for the rest of the boot.
func readAdapter(file File) ReadFunc {
	return func(p []byte, offset int64) error {
		if _, err := file.Seek(offset, io.SeekStart); err != nil {
			return fault.New(fault.Firmware, "set file position", err)
		}
		if _, err := io.ReadFull(file, p); err != nil {
			return fault.New(fault.Firmware, "read from file", err)
		}
		return nil
	}
}
