// Command musvgtool converts SVG documents between the xml, svgv, svgb,
// and text formats described in spec §6.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/scigolib/musvg/internal/floatwire"
	"github.com/scigolib/musvg/internal/mubuf"
	"github.com/scigolib/musvg/internal/mudebug"
	"github.com/scigolib/musvg/internal/svg"
	"github.com/scigolib/musvg/internal/svgbinary"
	"github.com/scigolib/musvg/internal/svgemit"
	"github.com/scigolib/musvg/internal/svgxml"
)

type config struct {
	inputFile    string
	outputFile   string
	inputFormat  string
	outputFormat string
	stats        bool
	debug        bool
	help         bool
}

func parseFlags(args []string) (*config, error) {
	fs := flag.NewFlagSet("musvgtool", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var c config
	for _, name := range []string{"if", "input-file"} {
		fs.StringVar(&c.inputFile, name, "", "input file path, - for stdin")
	}
	for _, name := range []string{"of", "output-file"} {
		fs.StringVar(&c.outputFile, name, "", "output file path, - for stdout")
	}
	for _, name := range []string{"i", "input-format"} {
		fs.StringVar(&c.inputFormat, name, "", "input format: xml|svgv|svgb|text")
	}
	for _, name := range []string{"o", "output-format"} {
		fs.StringVar(&c.outputFormat, name, "", "output format: xml|svgv|svgb|text")
	}
	for _, name := range []string{"s", "stats"} {
		fs.BoolVar(&c.stats, name, false, "print node/op/point/byte counts to stderr")
	}
	for _, name := range []string{"d", "debug"} {
		fs.BoolVar(&c.debug, name, false, "enable debug logging")
	}
	for _, name := range []string{"h", "help"} {
		fs.BoolVar(&c.help, name, false, "print usage and exit")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return &c, nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: musvgtool -if <path> -of <path> -i <format> -o <format> [-s] [-d]")
	fmt.Fprintln(os.Stderr, "  formats: xml, svgv, svgb, text")
}

func validFormat(f string) bool {
	switch f {
	case "xml", "svgv", "svgb", "text":
		return true
	}
	return false
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	c, err := parseFlags(args)
	if err != nil {
		usage()
		return 1
	}
	if c.help {
		usage()
		return 0
	}
	mudebug.Enabled = c.debug

	if c.inputFile == "" || c.outputFile == "" || !validFormat(c.inputFormat) || !validFormat(c.outputFormat) {
		fmt.Fprintln(os.Stderr, "musvgtool: missing or invalid required argument")
		usage()
		return 1
	}

	arena, err := readArena(c)
	if err != nil {
		fmt.Fprintf(os.Stderr, "musvgtool: %v\n", err)
		return 1
	}
	mudebug.Debugf("parsed %d nodes from %s", len(arena.Nodes), c.inputFormat)

	if c.stats {
		printStats(arena)
	}

	if err := writeArena(c, arena); err != nil {
		fmt.Fprintf(os.Stderr, "musvgtool: %v\n", err)
		return 1
	}
	return 0
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func readArena(c *config) (*svg.Arena, error) {
	data, err := readInput(c.inputFile)
	if err != nil {
		return nil, err
	}
	switch c.inputFormat {
	case "xml":
		return svgxml.Parse(data)
	case "svgv":
		return svgbinary.ParseDocument(mubuf.NewBorrowed(data), floatwire.VF128{})
	case "svgb":
		return svgbinary.ParseDocument(mubuf.NewBorrowed(data), floatwire.IEEE{})
	default:
		return nil, fmt.Errorf("input format %q cannot be parsed (text is output-only)", c.inputFormat)
	}
}

func writeArena(c *config, arena *svg.Arena) error {
	b := mubuf.NewResizable(1024)
	var err error
	switch c.outputFormat {
	case "xml":
		err = svgemit.WriteXML(b, arena)
	case "text":
		err = svgemit.WriteText(b, arena)
	case "svgv":
		err = svgemit.WriteDocument(b, arena, floatwire.VF128{})
	case "svgb":
		err = svgemit.WriteDocument(b, arena, floatwire.IEEE{})
	}
	if err != nil {
		return err
	}
	return writeOutput(c.outputFile, b.Bytes())
}

func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func printStats(arena *svg.Arena) {
	fmt.Fprintf(os.Stderr, "nodes: %d\n", len(arena.Nodes))
	fmt.Fprintf(os.Stderr, "path ops: %d\n", len(arena.PathOps))
	fmt.Fprintf(os.Stderr, "points: %d\n", len(arena.Points))

	for _, variant := range []struct {
		name  string
		codec floatwire.Codec
	}{{"svgv", floatwire.VF128{}}, {"svgb", floatwire.IEEE{}}} {
		b := mubuf.NewResizable(1024)
		if err := svgemit.WriteDocument(b, arena, variant.codec); err == nil {
			fmt.Fprintf(os.Stderr, "%s size: %d bytes\n", variant.name, b.Unread())
		}
	}
}
