package slicer

import (
	"fmt"
	"slices"

	"github.com/CooperRS/apple-slicer/apple"
	"github.com/shopspring/decimal"
)

// sortedKeys returns the keys of m in ascending order. It stands in for
// slices.Sorted(maps.Keys(m)), which needs a newer Go stdlib.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// identityRate is the exchange rate applied to amounts that are already in
// the reporting currency.
var identityRate = decimal.New(1, 0)

// Statement is the fully grouped and converted result of a slicing run,
// ready to be rendered.
type Statement struct {
	DateRange         string
	ReportingCurrency string
	Locale            Locale
	Corporations      []CorporationSales
}

// CorporationSales holds the sales one accountable subsidiary has to
// invoice, with a subtotal in the reporting currency.
type CorporationSales struct {
	Name      string
	Address   string
	Countries []CountrySales
	Total     Money
}

// CountrySales holds the per-product sales of one country.
type CountrySales struct {
	Name  string
	Code  string
	Lines []ProductLine
}

// ProductLine is one rendered line: a product's accumulated quantity and
// amount, and its conversion into the reporting currency.
type ProductLine struct {
	Quantity  int64
	Product   string
	Currency  string // currency label as recorded during aggregation
	Amount    Money
	Rate      decimal.Decimal
	Converted Money
}

// BuildStatement groups the aggregated countries by their accountable
// corporation and converts every amount into the reporting currency.
//
// Amounts already in the reporting currency are kept as-is with an identity
// rate. Every other amount is multiplied by its currency's exchange rate
// and withholding-tax factor. A country with no recorded currency, no
// known corporation, or a currency missing from the rate table renders the
// report invalid.
func BuildStatement(ledger Ledger, currencies CurrencyMap, rates RateTable, cfg Config, dateRange string) (*Statement, error) {
	loc, err := cfg.locale()
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]string) // corporation -> country codes
	for _, country := range sortedKeys(ledger) {
		corp, err := apple.Corporation(country)
		if err != nil {
			return nil, err
		}
		groups[corp] = append(groups[corp], country)
	}

	statement := &Statement{
		DateRange:         dateRange,
		ReportingCurrency: cfg.ReportingCurrency,
		Locale:            loc,
	}

	for _, corp := range sortedKeys(groups) {
		sales := CorporationSales{
			Name:    corp,
			Address: apple.Address(corp),
			Total:   M(0, cfg.ReportingCurrency),
		}

		for _, country := range groups[corp] {
			currency, ok := currencies[country]
			if !ok {
				return nil, fmt.Errorf("no currency recorded for country %q", country)
			}

			cs := CountrySales{Name: apple.CountryName(country), Code: country}
			products := ledger[country]

			for _, product := range sortedKeys(products) {
				line, err := convert(product, products[product], currency, rates, cfg.ReportingCurrency)
				if err != nil {
					return nil, fmt.Errorf("country %q: %w", country, err)
				}
				cs.Lines = append(cs.Lines, line)
				sales.Total = sales.Total.Add(line.Converted)
			}

			sales.Countries = append(sales.Countries, cs)
		}

		statement.Corporations = append(statement.Corporations, sales)
	}

	return statement, nil
}

// convert turns one accumulated product position into a statement line in
// the reporting currency.
func convert(product string, sales ProductSales, currency string, rates RateTable, reportingCurrency string) (ProductLine, error) {
	line := ProductLine{
		Quantity: sales.Quantity,
		Product:  product,
		Currency: currency,
		Amount:   M(sales.Amount, currency),
	}

	if currency == reportingCurrency {
		line.Rate = identityRate
		line.Converted = M(sales.Amount, reportingCurrency)
		return line, nil
	}

	entry, ok := rates[currency]
	if !ok {
		return ProductLine{}, fmt.Errorf("no exchange rate listed for currency %q", currency)
	}
	line.Rate = entry.Rate
	line.Converted = M(sales.Amount.Mul(entry.Rate).Mul(entry.TaxFactor), reportingCurrency)
	return line, nil
}
