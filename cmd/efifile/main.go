package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/efikit/efifile"
	"github.com/spf13/afero"
)

func main() {
	rawBCD := flag.Bool("rawbcd", false, "disable the .exe to .efi substitution in the BCD store")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Please provide a directory.")
		os.Exit(1)
	}

	opts := efifile.Options{RawBCD: *rawBCD}
	if *verbose {
		opts.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	root := afero.NewBasePathFs(afero.NewOsFs(), flag.Arg(0))
	table, err := efifile.Extract(efifile.NewHostedFileSystem(root), opts)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	for _, f := range table.Files() {
		fmt.Printf("%-31s %10d\n", f.Name, f.Size)
	}
	fmt.Println("boot file:", table.BootName)
}
