//go:build 386

package efifile

// removableMediaPath is the default removable media boot path for IA-32
// firmware, per the UEFI specification.
const removableMediaPath = `\EFI\BOOT\BOOTIA32.EFI`
