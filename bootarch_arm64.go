//go:build arm64

package efifile

// removableMediaPath is the default removable media boot path for AArch64
// firmware, per the UEFI specification.
const removableMediaPath = `\EFI\BOOT\BOOTAA64.EFI`
