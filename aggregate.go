package slicer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/CooperRS/apple-slicer/date"
	"github.com/shopspring/decimal"
)

// Column indices of the fields of interest in a financial report row.
const (
	colRangeStart = 0
	colRangeEnd   = 1
	colQuantity   = 5
	colAmount     = 7
	colCurrency   = 8
	colProduct    = 12
	colCountry    = 17

	minReportColumns = 18
)

// rowMarker in a report filename denotes the "Rest of World" aggregate
// report. Its rows carry plain "USD" in the currency column, but the
// matching exchange-rate entry is labelled "USD - RoW".
const rowMarker = "_WW."

// ProductSales accumulates the sold quantity and gross amount of one
// product in one country.
type ProductSales struct {
	Quantity int64
	Amount   decimal.Decimal
}

// Ledger maps a country code to the sales accumulated per product there.
// It is add-only during aggregation and read-only afterwards.
type Ledger map[string]map[string]ProductSales

// add accumulates a report row into the ledger. Existing values are only
// ever summed, never overwritten.
func (l Ledger) add(country, product string, quantity int64, amount decimal.Decimal) {
	products, ok := l[country]
	if !ok {
		products = make(map[string]ProductSales)
		l[country] = products
	}
	sales := products[product]
	sales.Quantity += quantity
	sales.Amount = sales.Amount.Add(amount)
	products[product] = sales
}

// CurrencyMap maps a country code to the currency its sales were reported
// in. The value is the key into the RateTable, so RoW countries carry the
// "USD - RoW" code rather than the plain "USD" found in their rows.
type CurrencyMap map[string]string

// Aggregate parses the sales listed in all financial reports in the given
// directory and groups them by country and product.
//
// Report files are every *.txt file except the rate data file, processed
// in lexical order. Lines whose first column does not contain a US-style
// date are headers or footers and are skipped. The first data line across
// all files fixes the returned date-range label; subsequent files are
// assumed to cover the same range and are not validated against it.
func Aggregate(dir string, cfg Config) (Ledger, CurrencyMap, string, error) {
	loc, err := cfg.locale()
	if err != nil {
		return nil, nil, "", err
	}

	ledger := make(Ledger)
	currencies := make(CurrencyMap)
	var dateRange string

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, "", fmt.Errorf("reading report directory: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		// skip files that are not financial reports
		if entry.IsDir() || filepath.Ext(name) != ".txt" || name == cfg.RateDataFile {
			continue
		}
		if err := aggregateFile(filepath.Join(dir, name), name, loc, ledger, currencies, &dateRange); err != nil {
			return nil, nil, "", err
		}
	}

	return ledger, currencies, dateRange, nil
}

// aggregateFile accumulates all data rows of a single report file.
func aggregateFile(path, name string, loc Locale, ledger Ledger, currencies CurrencyMap, dateRange *string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening report %q: %w", name, err)
	}
	defer f.Close()

	isRoW := strings.Contains(name, rowMarker)

	cr := csv.NewReader(f)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	for {
		record, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading report %q: %w", name, err)
		}
		// skip lines that don't start with a date
		if len(record) == 0 || !strings.Contains(record[colRangeStart], "/") {
			continue
		}
		if len(record) < minReportColumns {
			return fmt.Errorf("report %q: data row has %d columns, want at least %d", name, len(record), minReportColumns)
		}

		// the first data row across all files fixes the date range; it is
		// assumed, not verified, to be the same for all reports
		if *dateRange == "" {
			label, err := rangeLabel(record[colRangeStart], record[colRangeEnd], loc)
			if err != nil {
				return fmt.Errorf("report %q: %w", name, err)
			}
			*dateRange = label
		}

		quantity, err := strconv.ParseInt(record[colQuantity], 10, 64)
		if err != nil {
			return fmt.Errorf("report %q: invalid quantity %q: %w", name, record[colQuantity], err)
		}
		amount, err := decimal.NewFromString(record[colAmount])
		if err != nil {
			return fmt.Errorf("report %q: invalid amount %q: %w", name, record[colAmount], err)
		}

		country := record[colCountry]
		ledger.add(country, record[colProduct], quantity, amount)

		// remember the currency of the current row's country; if rows
		// disagree about a country's currency, the last one silently wins
		if isRoW {
			currencies[country] = RoWCurrency
		} else {
			currencies[country] = record[colCurrency]
		}
	}
}

// rangeLabel formats the report date range for display.
func rangeLabel(start, end string, loc Locale) (string, error) {
	from, err := date.ParseReport(start)
	if err != nil {
		return "", err
	}
	to, err := date.ParseReport(end)
	if err != nil {
		return "", err
	}
	return from.Format(loc.DateLayout) + " - " + to.Format(loc.DateLayout), nil
}
