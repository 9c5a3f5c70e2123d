//go:build amd64

package efifile

// removableMediaPath is the default removable media boot path for x64
// firmware, per the UEFI specification.
const removableMediaPath = `\EFI\BOOT\BOOTX64.EFI`
