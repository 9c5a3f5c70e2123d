package efifile

import (
	"encoding/binary"

	"golang.org/x/text/encoding/unicode"
)

// utf16le is the wire form of firmware entry names.
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// decodeWideName converts a raw UTF-16LE entry name to a string. The name
// ends at the first NUL code unit; a record without a terminator uses all of
// it. A trailing odd byte is dropped. Invalid sequences decode to the
// replacement character, a malformed name must classify as "no match" and
// never abort the scan.
func decodeWideName(raw []byte) (string, error) {
	n := len(raw) &^ 1

	end := n
	for i := 0; i < n; i += 2 {
		if binary.LittleEndian.Uint16(raw[i:]) == 0 {
			end = i
			break
		}
	}

	name, err := utf16le.NewDecoder().Bytes(raw[:end])
	if err != nil {
		return "", err
	}
	return string(name), nil
}

// encodeWideName converts a name to a NUL-terminated UTF-16LE record, the
// form a firmware directory read returns.
func encodeWideName(name string) ([]byte, error) {
	raw, err := utf16le.NewEncoder().Bytes([]byte(name))
	if err != nil {
		return nil, err
	}
	return append(raw, 0, 0), nil
}
