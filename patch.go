package efifile

import (
	"encoding/binary"
	"log/slog"
)

// The BCD search and replace tokens as UTF-16LE code units, including their
// terminators. The terminator takes part in the comparison, so a longer word
// that merely starts with ".exe" never matches.
var (
	bcdSearch  = [5]uint16{'.', 'e', 'x', 'e', 0}
	bcdReplace = [5]uint16{'.', 'e', 'f', 'i', 0}
)

// bcdTokenLen is the token width in bytes.
const bcdTokenLen = len(bcdSearch) * 2

// patchBCD replaces every case-insensitive occurrence of ".exe" in data with
// ".efi", in place and at fixed width. In the common simple cases this allows
// the same BCD store to be used for both BIOS and UEFI systems. offset is the
// position of data within the whole file and only feeds the diagnostics.
//
// The scan index stops bcdTokenLen bytes before the end of data, so reading a
// full comparison window never crosses the buffer boundary; buffers shorter
// than the token produce no iterations at all. The replacement text never
// re-matches the search token, advancing one byte at a time is safe.
func (e *extractor) patchBCD(data []byte, offset int64) error {
	// Do nothing if BCD patching is disabled.
	if e.opts.RawBCD {
		return nil
	}

	for i := 0; i < len(data)-bcdTokenLen; i++ {
		if !matchWideFold(data[i:], bcdSearch[:]) {
			continue
		}
		for k, cu := range bcdReplace {
			binary.LittleEndian.PutUint16(data[i+2*k:], cu)
		}
		e.log.Debug("patched BCD", slog.Int64("offset", offset+int64(i)))
	}
	return nil
}

// matchWideFold reports whether the UTF-16LE code units at the start of data
// equal tok under ASCII case folding. data must hold at least len(tok) units.
func matchWideFold(data []byte, tok []uint16) bool {
	for k, want := range tok {
		got := binary.LittleEndian.Uint16(data[2*k:])
		if got != want && foldWide(got) != foldWide(want) {
			return false
		}
	}
	return true
}

func foldWide(c uint16) uint16 {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
