package efifile

import "strings"

// role is the classification assigned to a directory entry name. It decides
// which strategies get attached to the descriptor.
type role uint8

const (
	roleNone role = iota
	roleBoot // architecture default boot file or the generic boot manager
	roleBCD  // boot configuration data store
	roleWIM  // Windows image file
)

// bootmgfw is the generic boot manager file name.
const bootmgfw = "bootmgfw.efi"

// BootArchName returns the architecture-specific default boot file name: the
// final path component of the compiled-in removable media boot path.
func BootArchName() string {
	name := removableMediaPath
	for i := 0; i < len(removableMediaPath); i++ {
		if c := removableMediaPath[i]; c == '\\' || c == '/' {
			name = removableMediaPath[i+1:]
		}
	}
	return name
}

// classify maps a file name to its role. All matching is case-insensitive
// and the first matching rule wins, later rules are not checked.
func classify(name string) role {
	switch {
	case strings.EqualFold(name, BootArchName()):
		return roleBoot
	case strings.EqualFold(name, bootmgfw):
		return roleBoot
	case strings.EqualFold(name, "BCD"):
		return roleBCD
	case len(name) >= 4 && strings.EqualFold(name[len(name)-4:], ".wim"):
		// The length guard keeps the suffix slice in bounds for short names.
		return roleWIM
	}
	return roleNone
}
