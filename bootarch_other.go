//go:build !amd64 && !386 && !arm64 && !arm

package efifile

// Architectures without a dedicated boot path fall back to the x64 name so
// the package still builds, for example for host-side tooling.
const removableMediaPath = `\EFI\BOOT\BOOTX64.EFI`
