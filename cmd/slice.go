package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/CooperRS/apple-slicer"
	"github.com/CooperRS/apple-slicer/renderer"
	"github.com/google/subcommands"
)

// sliceCmd holds the flags for the 'slice' subcommand.
type sliceCmd struct {
	currency string
	locale   string
	rateFile string
}

func (*sliceCmd) Name() string { return "slice" }
func (*sliceCmd) Synopsis() string {
	return "split the sales of a reporting period by accountable Apple subsidiary"
}
func (*sliceCmd) Usage() string {
	return `apple-slicer slice [-currency <code>] [-locale <tag>] [-rates <file>] <directory>

  Parses all iTunes Connect financial reports (*.txt) in the directory,
  converts foreign amounts into the reporting currency, and prints the
  sales grouped by the Apple subsidiary which is legally accountable for
  them, with a subtotal per subsidiary.

  The directory must contain the financial reports and an exchange-rate
  listing (by default "currency_data.txt") copy-pasted from iTunes
  Connect's "Payments & Financial Reports > Payments" page.
`
}

func (c *sliceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "", "Reporting currency. Overrides the configured one.")
	f.StringVar(&c.locale, "locale", "", "Display locale for dates and amounts. Overrides the configured one.")
	f.StringVar(&c.rateFile, "rates", "", "Name of the exchange-rate listing file. Overrides the configured one.")
}

func (c *sliceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dir := f.Arg(0)
	if dir == "" {
		errorf("missing report directory")
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitFailure
	}

	cfg, err := slicer.LoadConfig(dir)
	if err != nil {
		errorf("Error loading configuration: %v", err)
		return subcommands.ExitFailure
	}
	if c.currency != "" {
		cfg.ReportingCurrency = c.currency
	}
	if c.locale != "" {
		cfg.Locale = c.locale
	}
	if c.rateFile != "" {
		cfg.RateDataFile = c.rateFile
	}
	if err := cfg.Validate(); err != nil {
		errorf("Error: %v", err)
		return subcommands.ExitFailure
	}

	rates, err := slicer.LoadRates(filepath.Join(dir, cfg.RateDataFile))
	if errors.Is(err, fs.ErrNotExist) {
		errorf("Exchange rates data file missing: %q", cfg.RateDataFile)
		fmt.Fprintln(os.Stderr, "You can create this file by copy-pasting the listing under")
		fmt.Fprintln(os.Stderr, `"Earned / Paid on" of iTunes Connect's "Payments & Financial Reports > Payments" page.`)
		return subcommands.ExitFailure
	}
	if err != nil {
		errorf("Error: %v", err)
		return subcommands.ExitFailure
	}

	ledger, currencies, dateRange, err := slicer.Aggregate(dir, cfg)
	if err != nil {
		errorf("Error parsing financial reports: %v", err)
		return subcommands.ExitFailure
	}

	statement, err := slicer.BuildStatement(ledger, currencies, rates, cfg, dateRange)
	if err != nil {
		errorf("Error: %v", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Statement(statement))
	return subcommands.ExitSuccess
}
