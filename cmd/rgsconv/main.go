// Command rgsconv converts style files between their forms.
//
// The input may be binary .rgs, the line-based text form, TOML or YAML.
// The output form follows the output name: .toml writes TOML, .txt or
// .txt.rgs writes text, anything else writes binary. Without an output
// the style is dumped as text to stdout.
//
// Usage:
//
//	go run ./cmd/rgsconv mine.toml mine.rgs
//	go run ./cmd/rgsconv -version 200 mine.txt.rgs mine.rgs
//	go run ./cmd/rgsconv mine.rgs
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	gui "github.com/go-theft-auto/rgui"
	"github.com/go-theft-auto/rgui/fontatlas"
)

func main() {
	version := flag.Int("version", gui.StyleVersionCompressed, "binary version: 200 (raw font) or 400 (deflated font)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: rgsconv [flags] <input> [output]")
		flag.PrintDefaults()
	}
	flag.Parse()

	gui.SetVerbose(*verbose)
	if flag.NArg() < 1 || flag.NArg() > 2 {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(flag.Arg(0), flag.Arg(1), *version); err != nil {
		fmt.Fprintln(os.Stderr, "rgsconv:", err)
		os.Exit(1)
	}
}

func run(in, out string, version int) error {
	if version != gui.StyleVersionRaw && version != gui.StyleVersionCompressed {
		return fmt.Errorf("unsupported version %d", version)
	}
	skin, err := gui.ReadStyleFile(in, fontatlas.NewLoader())
	switch {
	case errors.Is(err, gui.ErrFontLoad):
		fmt.Fprintln(os.Stderr, "rgsconv: writing without font:", err)
	case err != nil:
		return err
	}

	if out == "" || out == "-" {
		return gui.WriteStyleText(os.Stdout, skin)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := write(f, out, skin, version); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("%s: %d properties, font: %v\n", out, len(skin.Properties), skin.Font != nil)
	return nil
}

func write(w io.Writer, name string, skin gui.Skin, version int) error {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".toml"):
		return gui.WriteStyleTOML(w, skin)
	case strings.HasSuffix(lower, ".txt"), strings.HasSuffix(lower, ".txt.rgs"):
		return gui.WriteStyleText(w, skin)
	}
	return gui.WriteStyle(w, skin, version)
}
