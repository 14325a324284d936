// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"seqload/core/adapters"
	"seqload/internal/clibase"
	"seqload/internal/cliutil"
	"seqload/internal/config"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	AdapterFiles    []string
	BarcodeFiles    []string
	AdapterPreset   string
	PresetSecondary bool
	ConfigFile      string

	// Loading
	RC            string
	RCMode        adapters.RCMode // parsed from RC
	Transactional bool

	// Output
	Output      string // text|json|jsonl
	Pretty      bool
	Report      string
	MetricsFile string

	// Misc
	ListPresets bool
	Quiet       bool
	Verbose     bool
	Version     bool
}

// NewFlagSet returns a ContinueOnError FlagSet with the shared usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, _ func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] adapters.fa [more.fa ...]\n", name)
		_, _ = fmt.Fprintf(out, "  %s [options] --barcodes barcodes.fa\n", name)
	})
	return fs
}

// PrintExamples prints a short quickstart.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "seqload", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Load adapters with their reverse complements:")
		_, _ = fmt.Fprintln(w, "  seqload --rc on adapters.fa")
		_, _ = fmt.Fprintln(w, "\nBuilt-in preset plus sample barcodes, as JSON:")
		_, _ = fmt.Fprintln(w, "  seqload --adapter-preset TruSeq -b barcodes.fa.gz -o json --pretty")
	})
}

// ParseArgs registers and parses all flags and returns a validated Options.
// flag.ErrHelp and clibase.ErrPrintedAndExitOK are returned unchanged.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var (
		opt          Options
		help         bool
		showExamples bool
	)

	// Input
	adVal := &clibase.SliceValue{Dst: &opt.AdapterFiles}
	bcVal := &clibase.SliceValue{Dst: &opt.BarcodeFiles}
	fs.Var(adVal, "adapters", "adapter FASTA file (repeatable)")
	fs.Var(adVal, "a", "alias of --adapters")
	fs.Var(bcVal, "barcodes", "barcode FASTA file (repeatable)")
	fs.Var(bcVal, "b", "alias of --barcodes")
	fs.StringVar(&opt.AdapterPreset, "adapter-preset", "", "built-in adapter preset")
	fs.BoolVar(&opt.PresetSecondary, "preset-secondary", false, "use the preset's read-2 sequence [false]")
	fs.StringVar(&opt.ConfigFile, "config", "", "YAML configuration file")

	// Loading
	fs.StringVar(&opt.RC, "rc", "off", "adapter reverse complement: off | on | only [off]")
	fs.BoolVar(&opt.Transactional, "transactional", false, "append nothing from an invalid file [false]")

	// Output
	fs.StringVar(&opt.Output, "output", "text", "output: text | json | jsonl [text]")
	fs.StringVar(&opt.Output, "o", "text", "alias of --output")
	fs.BoolVar(&opt.Pretty, "pretty", false, "indented JSON [false]")
	fs.StringVar(&opt.Report, "report", "", "write tables to file instead of stdout")
	fs.StringVar(&opt.MetricsFile, "metrics-file", "", "Prometheus textfile output")

	// Misc
	fs.BoolVar(&opt.ListPresets, "list-presets", false, "print built-in presets and exit [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Verbose, "verbose", false, "debug logging on stderr [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&help, "help", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if showExamples {
		return opt, clibase.ErrPrintedAndExitOK
	}
	if opt.Version || opt.ListPresets {
		return opt, nil
	}

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return opt, err
		}
		opt.AdapterFiles = append(opt.AdapterFiles, exp...)
	}

	if opt.ConfigFile != "" {
		cfg, err := config.Load(opt.ConfigFile)
		if err != nil {
			return opt, err
		}
		applyConfig(fs, &opt, cfg, len(posArgs) > 0)
	}
	return opt, Validate(&opt)
}

// applyConfig copies config values for every flag the user did not set.
func applyConfig(fs *flag.FlagSet, o *Options, cfg *config.File, havePositionals bool) {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	given := func(names ...string) bool {
		for _, n := range names {
			if set[n] {
				return true
			}
		}
		return false
	}

	if !given("adapters", "a") && !havePositionals {
		o.AdapterFiles = append(o.AdapterFiles, cfg.Adapters...)
	}
	if !given("barcodes", "b") {
		o.BarcodeFiles = append(o.BarcodeFiles, cfg.Barcodes...)
	}
	if !given("adapter-preset") && cfg.AdapterPreset != "" {
		o.AdapterPreset = cfg.AdapterPreset
	}
	if !given("preset-secondary") {
		o.PresetSecondary = cfg.PresetSecondary
	}
	if !given("rc") && cfg.RCMode != "" {
		o.RC = cfg.RCMode
	}
	if !given("transactional") {
		o.Transactional = cfg.Transactional
	}
	if !given("output", "o") && cfg.Output != "" {
		o.Output = cfg.Output
	}
	if !given("pretty") {
		o.Pretty = cfg.Pretty
	}
	if !given("report") && cfg.Report != "" {
		o.Report = cfg.Report
	}
	if !given("metrics-file") && cfg.MetricsFile != "" {
		o.MetricsFile = cfg.MetricsFile
	}
	if !given("quiet", "q") {
		o.Quiet = cfg.Quiet
	}
	if !given("verbose") {
		o.Verbose = cfg.Verbose
	}
}

// Validate applies CLI invariants and fills parsed fields.
func Validate(o *Options) error {
	if len(o.AdapterFiles) == 0 && len(o.BarcodeFiles) == 0 && o.AdapterPreset == "" {
		return errors.New("provide adapter files, --barcodes or --adapter-preset")
	}
	mode, err := adapters.ParseRCMode(o.RC)
	if err != nil {
		return fmt.Errorf("--rc: %w", err)
	}
	o.RCMode = mode
	if o.PresetSecondary && o.AdapterPreset == "" {
		return errors.New("--preset-secondary requires --adapter-preset")
	}
	switch o.Output {
	case "text", "json", "jsonl":
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	return nil
}
