// Command numclean cleans messy numeric columns in tabular files.
//
// It reads a CSV/TSV/XLSX file, applies the numeric extraction to the
// referenced columns (by name or zero-based index) and writes the
// result, so data-preparation scripts get a predictable coercion step:
//
//	numclean -columns "Temperature,Distance,2" -o cleaned.csv input.csv
//
// Exit codes let callers branch on the failure class: 0 success,
// 2 table-source failure, 3 column-reference failure, 4 table-sink
// failure.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"numclean/internal/config"
	"numclean/internal/files"
	"numclean/internal/infrastructure"
	"numclean/internal/table"
)

const (
	exitOK = iota
	_
	exitSourceFailed
	exitRefsFailed
	exitSinkFailed
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("numclean", flag.ContinueOnError)
	fs.SetOutput(stderr)
	columns := fs.String("columns", "", "comma-separated column names or 0-based indices to convert (required)")
	out := fs.String("o", "", "output file path; prints CSV to stdout if omitted")
	sep := fs.String("sep", "", "CSV field separator (default from config, usually comma)")
	sheet := fs.String("sheet", "", "XLSX sheet name (default: first sheet)")
	workers := fs.Int("workers", 0, "parallel column workers (default from config)")
	inPlace := fs.Bool("in-place", false, "coerce the loaded table in place instead of on a copy")
	quiet := fs.Bool("quiet", false, "suppress progress logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: numclean [flags] input\n\nClean messy numeric columns in CSV/TSV/XLSX files (removes units, dashes, etc.).\n\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExample: numclean -columns \"Temperature,Distance,2\" -o cleaned.csv data.csv\n")
	}
	if err := fs.Parse(args); err != nil {
		return exitSourceFailed
	}

	if fs.NArg() != 1 || *columns == "" {
		fs.Usage()
		return exitSourceFailed
	}
	input := fs.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "invalid configuration: %v\n", err)
		return exitSourceFailed
	}
	if *quiet {
		cfg.Logging.Level = "error"
	}
	logger, closeLog, err := infrastructure.InitLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(stderr, "failed to initialize logger: %v\n", err)
		return exitSourceFailed
	}
	defer closeLog()

	// Leave the separator unset unless the flag or config overrides it,
	// so .tsv inputs keep their tab default.
	opts := files.Options{Sheet: *sheet}
	switch {
	case *sep != "":
		opts.CSV.Separator = []rune(*sep)[0]
	case cfg.Coerce.Separator != ",":
		opts.CSV.Separator = cfg.Coerce.SeparatorRune()
	}

	tbl, err := files.ReadTable(input, opts)
	if err != nil {
		logger.Error("failed to read table", slog.String("path", input), slog.String("error", err.Error()))
		fmt.Fprintf(stderr, "error reading %q: %v\n", input, err)
		return exitSourceFailed
	}
	logger.Info("table loaded",
		slog.String("path", input),
		slog.Int("rows", tbl.RowCount()),
		slog.Int("columns", tbl.ColumnCount()),
	)

	refs := table.ParseRefs(splitColumns(*columns))
	coerceOpts := table.Options{InPlace: *inPlace, Workers: cfg.Coerce.Workers}
	if *workers > 0 {
		coerceOpts.Workers = *workers
	}

	cleaned, err := table.Coerce(tbl, refs, coerceOpts)
	if err != nil {
		logger.Error("column reference resolution failed", slog.String("error", err.Error()))
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitRefsFailed
	}
	logger.Info("columns coerced", slog.Int("columns_targeted", len(refs)))

	if *out == "" {
		if err := files.WriteCSVTo(stdout, cleaned, opts.CSV); err != nil {
			fmt.Fprintf(stderr, "error writing output: %v\n", err)
			return exitSinkFailed
		}
		return exitOK
	}

	if err := files.WriteTable(*out, cleaned, opts); err != nil {
		logger.Error("failed to write table", slog.String("path", *out), slog.String("error", err.Error()))
		fmt.Fprintf(stderr, "error writing %q: %v\n", *out, err)
		return exitSinkFailed
	}
	logger.Info("table written", slog.String("path", *out))
	return exitOK
}

// splitColumns splits the -columns flag on commas, trimming surrounding
// whitespace from each token and dropping empty ones.
func splitColumns(v string) []string {
	var toks []string
	for _, tok := range strings.Split(v, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			toks = append(toks, tok)
		}
	}
	return toks
}
