package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/CooperRS/apple-slicer"
	"github.com/CooperRS/apple-slicer/renderer"
	"github.com/google/subcommands"
)

// ratesCmd holds the flags for the 'rates' subcommand.
type ratesCmd struct {
	rateFile string
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "display the parsed exchange-rate table" }
func (*ratesCmd) Usage() string {
	return `apple-slicer rates [-rates <file>] <directory>

  Parses the exchange-rate listing in the directory and displays the
  exchange rate and withholding-tax factor of every listed currency,
  without slicing any report. Useful to verify a freshly pasted listing.
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.rateFile, "rates", "", "Name of the exchange-rate listing file. Overrides the configured one.")
}

func (c *ratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if c.rateFile != "" {
		cfg.RateDataFile = c.rateFile
	}

	table, err := slicer.LoadRates(filepath.Join(dir, cfg.RateDataFile))
	if err != nil {
		errorf("Error: %v", err)
		return subcommands.ExitFailure
	}

	currencies := make([]string, 0, len(table))
	for currency := range table {
		currencies = append(currencies, currency)
	}
	slices.Sort(currencies)

	printMarkdown(renderer.RateTable(table, currencies))
	return subcommands.ExitSuccess
}
