package efifile

import (
	"bytes"
	"testing"
)

func Test_patchBCD(t *testing.T) {
	tests := []struct {
		name   string
		rawBCD bool
		data   []byte
		want   []byte
	}{
		{
			name: "simple substitution",
			data: append(widez("bootmgr.exe"), widez("pad")...),
			want: append(widez("bootmgr.efi"), widez("pad")...),
		},
		{
			name: "upper case substitution",
			data: append(widez("BOOTMGR.EXE"), widez("pad")...),
			want: append(widez("BOOTMGR.efi"), widez("pad")...),
		},
		{
			name: "mixed case substitution",
			data: append(widez("winload.eXe"), widez("pad")...),
			want: append(widez("winload.efi"), widez("pad")...),
		},
		{
			name: "longer word does not match",
			data: append(widez("bootmgr.exec"), widez("pad")...),
			want: append(widez("bootmgr.exec"), widez("pad")...),
		},
		{
			name: "multiple occurrences",
			data: append(append(widez("a.exe"), widez("b.exe")...), widez("pad")...),
			want: append(append(widez("a.efi"), widez("b.efi")...), widez("pad")...),
		},
		{
			name: "match at odd byte offset",
			data: append([]byte{0xff}, append(widez(".exe"), widez("padding")...)...),
			want: append([]byte{0xff}, append(widez(".efi"), widez("padding")...)...),
		},
		{
			name: "token at the very end is out of scan range",
			data: append(wide("ab"), widez(".exe")...),
			want: append(wide("ab"), widez(".exe")...),
		},
		{
			name: "buffer shorter than the token",
			data: widez(".e"),
			want: widez(".e"),
		},
		{
			name: "tiny buffer",
			data: []byte{'.', 0, 'e'},
			want: []byte{'.', 0, 'e'},
		},
		{
			name: "empty buffer",
			data: nil,
			want: nil,
		},
		{
			name:   "raw BCD mode leaves the buffer unchanged",
			rawBCD: true,
			data:   append(widez("bootmgr.exe"), widez("pad")...),
			want:   append(widez("bootmgr.exe"), widez("pad")...),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newExtractor(Options{RawBCD: tt.rawBCD})

			data := append([]byte(nil), tt.data...)
			if err := e.patchBCD(data, 0x1000); err != nil {
				t.Fatalf("patchBCD() error = %v, want nil", err)
			}
			if !bytes.Equal(data, tt.want) {
				t.Errorf("patchBCD() = %v, want %v", data, tt.want)
			}
		})
	}
}
