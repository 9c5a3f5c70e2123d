package efifile

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
)

func TestHostedExtract(t *testing.T) {
	arch := BootArchName()
	bcd := append(widez("path=bootmgr.exe"), widez("tail")...)

	mem := afero.NewMemMapFs()
	if err := afero.WriteFile(mem, arch, []byte("boot image"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(mem, "BCD", bcd, 0644); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(mem, "install.wim", make([]byte, 32), 0644); err != nil {
		t.Fatal(err)
	}
	// Directories are not part of the served root.
	if err := mem.Mkdir("sources", 0755); err != nil {
		t.Fatal(err)
	}

	table, err := Extract(NewHostedFileSystem(mem), Options{})
	if err != nil {
		t.Fatalf("Extract() error = %v, want nil", err)
	}

	if table.BootName != arch {
		t.Errorf("Extract() BootName = %q, want %q", table.BootName, arch)
	}
	if table.Len() != 3 {
		t.Fatalf("Extract() table length = %v, want 3", table.Len())
	}

	byName := map[string]VFile{}
	for _, f := range table.Files() {
		byName[f.Name] = f
	}

	boot, ok := byName[arch]
	if !ok {
		t.Fatalf("Extract() table misses %q", arch)
	}
	if boot.Size != int64(len("boot image")) {
		t.Errorf("boot file size = %v, want %v", boot.Size, len("boot image"))
	}
	got := make([]byte, boot.Size)
	if err := boot.Read(got, 0); err != nil {
		t.Fatalf("boot file read error = %v, want nil", err)
	}
	if string(got) != "boot image" {
		t.Errorf("boot file content = %q, want %q", got, "boot image")
	}

	store, ok := byName["BCD"]
	if !ok {
		t.Fatal("Extract() table misses the BCD store")
	}
	content := make([]byte, store.Size)
	if err := store.Read(content, 0); err != nil {
		t.Fatalf("BCD read error = %v, want nil", err)
	}
	if err := store.Patch(content, 0); err != nil {
		t.Fatalf("BCD patch error = %v, want nil", err)
	}
	if want := append(widez("path=bootmgr.efi"), widez("tail")...); !bytes.Equal(content, want) {
		t.Errorf("patched BCD = %v, want %v", content, want)
	}

	if _, ok := byName["install.wim"]; !ok {
		t.Error("Extract() table misses install.wim")
	}
	if _, ok := byName["sources"]; ok {
		t.Error("Extract() served a directory entry")
	}
}

func TestHostedExtract_rawBCD(t *testing.T) {
	arch := BootArchName()
	bcd := append(widez("path=bootmgr.exe"), widez("tail")...)

	mem := afero.NewMemMapFs()
	if err := afero.WriteFile(mem, arch, []byte("boot"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(mem, "BCD", bcd, 0644); err != nil {
		t.Fatal(err)
	}

	table, err := Extract(NewHostedFileSystem(mem), Options{RawBCD: true})
	if err != nil {
		t.Fatalf("Extract() error = %v, want nil", err)
	}

	for _, f := range table.Files() {
		if f.Name != "BCD" {
			continue
		}
		content := make([]byte, f.Size)
		if err := f.Read(content, 0); err != nil {
			t.Fatalf("BCD read error = %v, want nil", err)
		}
		if err := f.Patch(content, 0); err != nil {
			t.Fatalf("BCD patch error = %v, want nil", err)
		}
		if !bytes.Equal(content, bcd) {
			t.Error("raw BCD mode modified the store")
		}
		return
	}
	t.Fatal("Extract() table misses the BCD store")
}
