package slicer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// minRateColumns is the number of columns a payments-listing row must have
// to be considered a rate entry. Shorter rows are headers or noise.
const minRateColumns = 11

// RateEntry holds the conversion data of one currency: the exchange rate
// into the reporting currency and the withholding-tax factor, i.e. the
// fraction of gross revenue retained after tax withholding.
type RateEntry struct {
	Rate      decimal.Decimal
	TaxFactor decimal.Decimal
}

// RateTable maps a currency code, as labelled in the payments listing, to
// its conversion data. The "Rest of World" bucket appears under the
// distinguished "USD - RoW" code.
type RateTable map[string]RateEntry

// ParseRates reads a tab-delimited payments listing and returns the rate
// table it describes.
//
// For every row with at least minRateColumns columns, the currency code is
// taken from column 0, the exchange rate from column 8, and the
// withholding-tax factor is derived from the gross amount (column 3) and
// the tax withheld (column 4) as 1 - |withheld / gross|.
func ParseRates(r io.Reader) (RateTable, error) {
	table := make(RateTable)

	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading rate data: %w", err)
		}
		if len(record) < minRateColumns {
			// header or noise line
			continue
		}

		currency := record[0]

		rate, err := decimal.NewFromString(record[8])
		if err != nil {
			return nil, fmt.Errorf("invalid exchange rate %q for currency %q: %w", record[8], currency, err)
		}
		gross, err := parseAmount(record[3])
		if err != nil {
			return nil, fmt.Errorf("invalid gross amount %q for currency %q: %w", record[3], currency, err)
		}
		withheld, err := parseAmount(record[4])
		if err != nil {
			return nil, fmt.Errorf("invalid withheld amount %q for currency %q: %w", record[4], currency, err)
		}
		if gross.IsZero() {
			return nil, fmt.Errorf("zero gross amount for currency %q: cannot derive withholding-tax factor", currency)
		}

		table[currency] = RateEntry{
			Rate:      rate,
			TaxFactor: decimal.NewFromInt(1).Sub(withheld.Div(gross).Abs()),
		}
	}

	return table, nil
}

// LoadRates parses the rate table from the given file. A missing or
// unreadable file is a configuration error: without it no sale can be
// priced. The returned error wraps the underlying fs error so callers can
// test for fs.ErrNotExist.
func LoadRates(path string) (RateTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening rate data file: %w", err)
	}
	defer f.Close()

	table, err := ParseRates(f)
	if err != nil {
		return nil, fmt.Errorf("parsing rate data file %q: %w", path, err)
	}
	return table, nil
}

// parseAmount parses a listing amount, tolerating thousands separators.
func parseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
}
