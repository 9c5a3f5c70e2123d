//go:build arm

package efifile

// removableMediaPath is the default removable media boot path for 32-bit ARM
// firmware, per the UEFI specification.
const removableMediaPath = `\EFI\BOOT\BOOTARM.EFI`
