package slicer

import (
	"testing"

	"github.com/CooperRS/apple-slicer/apple"
	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestBuildStatement(t *testing.T) {
	// a French sale in the reporting currency and a Japanese sale subject
	// to conversion and withholding tax
	ledger := Ledger{
		"FR": {"My App": {Quantity: 10, Amount: d("9.99")}},
		"JP": {"My App": {Quantity: 5, Amount: d("500")}},
	}
	currencies := CurrencyMap{"FR": "EUR", "JP": "JPY"}
	rates := RateTable{"JPY": {Rate: d("0.0075"), TaxFactor: d("0.9")}}

	statement, err := BuildStatement(ledger, currencies, rates, DefaultConfig(), "01.06.2015 - 30.06.2015")
	if err != nil {
		t.Fatalf("BuildStatement() error: %v", err)
	}

	if len(statement.Corporations) != 2 {
		t.Fatalf("statement has %d corporations, want 2", len(statement.Corporations))
	}

	// corporations come out sorted by name
	adi, kk := statement.Corporations[0], statement.Corporations[1]
	if adi.Name != apple.AppleDI || kk.Name != apple.ITunesKK {
		t.Fatalf("corporations = %q, %q, want %q, %q", adi.Name, kk.Name, apple.AppleDI, apple.ITunesKK)
	}

	fr := adi.Countries[0]
	if fr.Code != "FR" || fr.Name != "France" {
		t.Errorf("country = %s (%s), want France (FR)", fr.Name, fr.Code)
	}
	line := fr.Lines[0]
	if !line.Rate.Equal(d("1")) {
		t.Errorf("FR rate = %s, want identity", line.Rate)
	}
	if got := line.Rate.StringFixed(5); got != "1.00000" {
		t.Errorf("FR displayed rate = %q, want 1.00000", got)
	}
	// already in the reporting currency: the amount passes through unchanged
	if !line.Converted.Equal(M(d("9.99"), "EUR")) {
		t.Errorf("FR converted = %v, want 9.99 EUR", line.Converted)
	}
	if !adi.Total.Equal(M(d("9.99"), "EUR")) {
		t.Errorf("%s total = %v, want 9.99 EUR", adi.Name, adi.Total)
	}

	jp := kk.Countries[0].Lines[0]
	if jp.Currency != "JPY" {
		t.Errorf("JP line currency = %q, want JPY", jp.Currency)
	}
	// 500 * 0.0075 * 0.9 = 3.375
	if !jp.Converted.Equal(M(d("3.375"), "EUR")) {
		t.Errorf("JP converted = %v, want 3.375 EUR", jp.Converted)
	}
	if !kk.Total.Equal(M(d("3.375"), "EUR")) {
		t.Errorf("%s total = %v, want 3.375 EUR", kk.Name, kk.Total)
	}
}

func TestBuildStatement_subtotalAcrossCountries(t *testing.T) {
	ledger := Ledger{
		"FR": {"My App": {Quantity: 1, Amount: d("1.10")}},
		"DE": {"My App": {Quantity: 2, Amount: d("2.20")}},
	}
	currencies := CurrencyMap{"FR": "EUR", "DE": "EUR"}

	statement, err := BuildStatement(ledger, currencies, RateTable{}, DefaultConfig(), "")
	if err != nil {
		t.Fatalf("BuildStatement() error: %v", err)
	}

	// both countries belong to the same corporation
	if len(statement.Corporations) != 1 {
		t.Fatalf("statement has %d corporations, want 1", len(statement.Corporations))
	}
	if got := statement.Corporations[0].Total; !got.Equal(M(d("3.30"), "EUR")) {
		t.Errorf("total = %v, want 3.30 EUR", got)
	}
}

func TestBuildStatement_restOfWorld(t *testing.T) {
	ledger := Ledger{"SA": {"My App": {Quantity: 1, Amount: d("0.99")}}}
	currencies := CurrencyMap{"SA": RoWCurrency}
	rates := RateTable{RoWCurrency: {Rate: d("0.9"), TaxFactor: d("1")}}

	statement, err := BuildStatement(ledger, currencies, rates, DefaultConfig(), "")
	if err != nil {
		t.Fatalf("BuildStatement() error: %v", err)
	}

	line := statement.Corporations[0].Countries[0].Lines[0]
	if line.Currency != RoWCurrency {
		t.Errorf("line currency = %q, want %q", line.Currency, RoWCurrency)
	}
	if !line.Converted.Equal(M(d("0.891"), "EUR")) {
		t.Errorf("converted = %v, want 0.891 EUR", line.Converted)
	}
}

func TestBuildStatement_failures(t *testing.T) {
	ledger := Ledger{"SE": {"My App": {Quantity: 1, Amount: d("10.00")}}}

	testCases := []struct {
		name       string
		ledger     Ledger
		currencies CurrencyMap
	}{
		{
			// a sold currency absent from the rate table must not be
			// silently converted at par
			name:       "missing rate entry",
			ledger:     ledger,
			currencies: CurrencyMap{"SE": "SEK"},
		},
		{
			name:       "missing currency for country",
			ledger:     ledger,
			currencies: CurrencyMap{},
		},
		{
			name:       "unknown country",
			ledger:     Ledger{"XX": {"My App": {Quantity: 1, Amount: d("1.00")}}},
			currencies: CurrencyMap{"XX": "EUR"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			statement, err := BuildStatement(tc.ledger, tc.currencies, RateTable{}, DefaultConfig(), "")
			if err == nil {
				t.Error("BuildStatement() succeeded, want error")
			}
			if statement != nil {
				t.Error("BuildStatement() returned a statement alongside the error")
			}
		})
	}
}
