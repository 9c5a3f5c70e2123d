package efifile

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

// NewHostedFileSystem serves the root of fs through the firmware boundary.
// Entry names travel as UTF-16LE records exactly like a firmware directory
// read returns them, and host errors are mapped to firmware status codes.
// It backs cmd/efifile and the end-to-end tests; any afero.Fs works, from
// the OS filesystem to an in-memory one.
func NewHostedFileSystem(fs afero.Fs) FileSystem {
	return &hostedFS{fs: fs}
}

type hostedFS struct {
	fs afero.Fs
}

func (h *hostedFS) OpenRoot() (Directory, error) {
	infos, err := afero.ReadDir(h.fs, ".")
	if err != nil {
		return nil, StatusDeviceError
	}

	entries := make([]DirEntry, 0, len(infos))
	for _, info := range infos {
		// A boot volume root holds files; directories are not served.
		if info.IsDir() {
			continue
		}
		raw, err := encodeWideName(info.Name())
		if err != nil {
			return nil, StatusDeviceError
		}
		entries = append(entries, DirEntry{RawName: raw, Size: info.Size()})
	}
	return &hostedDir{fs: h.fs, entries: entries}, nil
}

type hostedDir struct {
	fs      afero.Fs
	entries []DirEntry
	next    int
}

func (d *hostedDir) ReadEntry() (DirEntry, error) {
	if d.next >= len(d.entries) {
		return DirEntry{}, io.EOF
	}

	entry := d.entries[d.next]
	d.next++
	return entry, nil
}

func (d *hostedDir) Open(name string) (File, error) {
	file, err := d.fs.Open(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, StatusNotFound
		}
		return nil, StatusDeviceError
	}
	return file, nil
}
