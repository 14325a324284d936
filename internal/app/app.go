// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"seqload/core/adapters"
	"seqload/internal/cli"
	"seqload/internal/clibase"
	"seqload/internal/cmdutil"
	"seqload/internal/metrics"
	"seqload/internal/version"
	"seqload/internal/writers"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitLoadFailure = 1 // open, parse or duplicate-identifier error
	ExitUsage       = 2
	ExitIO          = 3
	ExitInterrupted = 130
)

// flushOrFail flushes w; a broken pipe counts as success.
func flushOrFail(w *bufio.Writer, stderr io.Writer, code int) int {
	if err := w.Flush(); writers.IsBrokenPipe(err) {
		return code
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitIO
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet("seqload")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.Usage()
			return flushOrFail(outw, stderr, ExitOK)
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			cli.PrintExamples(outw)
			return flushOrFail(outw, stderr, ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.Usage()
		return flushOrFail(outw, stderr, ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "seqload version %s\n", version.Version)
		return flushOrFail(outw, stderr, ExitOK)
	}
	if opts.ListPresets {
		if err := writePresets(outw); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return ExitIO
		}
		return flushOrFail(outw, stderr, ExitOK)
	}

	reg := prometheus.NewRegistry()
	lm, err := metrics.New(reg)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitIO
	}
	if opts.MetricsFile != "" {
		// Written on every exit path so failed loads show up too.
		defer func() {
			if err := metrics.WriteTextfile(opts.MetricsFile, reg); err != nil {
				cmdutil.Warnf(stderr, opts.Quiet, "metrics: %v", err)
			}
		}()
	}

	base := adapters.Options{
		Mode:          opts.RCMode,
		Out:           outw,
		Logger:        cmdutil.NewLogger(stderr, opts.Verbose),
		Observer:      lm,
		Transactional: opts.Transactional,
	}
	adOpts, bcOpts := base, base
	adOpts.Role = adapters.RoleAdapter
	bcOpts.Role = adapters.RoleBarcode
	adLoader := adapters.NewLoader(nil, adOpts)
	bcLoader := adapters.NewLoader(nil, bcOpts)

	fatal := func(err error) int {
		_ = outw.Flush()
		cmdutil.Errorf(stderr, "%v", err)
		return ExitLoadFailure
	}

	if opts.AdapterPreset != "" {
		if err := adLoader.LoadPreset(opts.AdapterPreset, opts.PresetSecondary); err != nil {
			return fatal(err)
		}
	}
	jobs := []struct {
		l     *adapters.Loader
		files []string
	}{
		{adLoader, opts.AdapterFiles},
		{bcLoader, opts.BarcodeFiles},
	}
	for _, j := range jobs {
		for _, f := range j.files {
			if parent.Err() != nil {
				return ExitInterrupted
			}
			before := j.l.Store().Len()
			if err := j.l.Load(f); err != nil {
				return fatal(err)
			}
			if j.l.Store().Len() == before {
				cmdutil.Warnf(stderr, opts.Quiet, "no %s found in %s", j.l.Role().Plural(), f)
			}
		}
	}

	var tables []writers.Table
	if opts.AdapterPreset != "" || len(opts.AdapterFiles) > 0 {
		tables = append(tables, writers.Table{Label: "Adapter", Bars: adLoader.Adapters()})
	}
	if len(opts.BarcodeFiles) > 0 {
		tables = append(tables, writers.Table{Label: "Barcode", Bars: bcLoader.Adapters()})
	}

	if opts.Report != "" {
		if err := writeReportFile(opts.Report, opts.Output, tables, opts.Pretty); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return ExitIO
		}
		return flushOrFail(outw, stderr, ExitOK)
	}
	if err := writers.WriteTables(opts.Output, outw, tables, opts.Pretty); err != nil && !writers.IsBrokenPipe(err) {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitIO
	}
	return flushOrFail(outw, stderr, ExitOK)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func writeReportFile(path, format string, tables []writers.Table, pretty bool) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(fh)
	if err := writers.WriteTables(format, bw, tables, pretty); err != nil {
		_ = fh.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}

// writePresets lists the catalog as a table keyed by preset name.
func writePresets(w io.Writer) error {
	names := adapters.PresetNames()
	bars := make([]adapters.Bar, 0, len(names))
	for _, n := range names {
		d, err := adapters.LookupPreset(n)
		if err != nil {
			return err
		}
		bars = append(bars, adapters.Bar{ID: d.Name, Seq: d.Seq1})
	}
	return adapters.WriteTable(w, "Preset", bars)
}
