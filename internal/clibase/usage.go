// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"seqload/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (usage line, examples, ...).
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – adapter and barcode loader\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -a, --adapters file         Adapter FASTA (repeatable; positionals too) [*]")
		fmt.Fprintln(out, "  -b, --barcodes file         Barcode FASTA (repeatable) [*]")
		fmt.Fprintln(out, "      --adapter-preset name   Built-in adapter set (see --list-presets) [*]")
		fmt.Fprintf(out, "      --preset-secondary      Use the preset's read-2 sequence [%s]\n", def("preset-secondary"))
		fmt.Fprintf(out, "      --config file           YAML file with the same keys as the flags [%s]\n", def("config"))

		fmt.Fprintln(out, "\nLoading:")
		fmt.Fprintf(out, "      --rc string             Adapter reverse complement: off | on | only [%s]\n", def("rc"))
		fmt.Fprintf(out, "      --transactional         Append nothing from a file that fails validation [%s]\n", def("transactional"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | json | jsonl [%s]\n", def("output"))
		fmt.Fprintf(out, "      --pretty                Indented JSON [%s]\n", def("pretty"))
		fmt.Fprintln(out, "      --report file           Write tables to file instead of STDOUT")
		fmt.Fprintln(out, "      --metrics-file file     Write Prometheus textfile metrics after loading")
		fmt.Fprintln(out, "      --list-presets          Print the built-in adapter presets and exit")

		fmt.Fprintln(out, "\nMisc:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress warnings [%s]\n", def("quiet"))
		fmt.Fprintf(out, "      --verbose               Debug logging on STDERR [%s]\n", def("verbose"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help")
		fmt.Fprintln(out, "\n[*] at least one adapter or barcode source is required.")
	}
}

// SliceValue appends each value to a *[]string (repeatable flags).
type SliceValue struct{ Dst *[]string }

func (s *SliceValue) String() string {
	if s == nil || s.Dst == nil {
		return ""
	}
	return fmt.Sprint(*s.Dst)
}

func (s *SliceValue) Set(v string) error {
	*s.Dst = append(*s.Dst, v)
	return nil
}
