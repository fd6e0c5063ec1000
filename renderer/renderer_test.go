package renderer

import (
	"strings"
	"testing"

	"github.com/CooperRS/apple-slicer"
	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestStatement(t *testing.T) {
	s := &slicer.Statement{
		DateRange:         "01.06.2015 - 30.06.2015",
		ReportingCurrency: "EUR",
		Locale:            slicer.MustLookupLocale("de-DE"),
		Corporations: []slicer.CorporationSales{
			{
				Name:    "iTunes K.K.",
				Address: "Roppongi Hills, 6-10-1 Roppongi\nMinato-ku, Tokyo 106-6140\nJapan",
				Countries: []slicer.CountrySales{{
					Name: "Japan",
					Code: "JP",
					Lines: []slicer.ProductLine{{
						Quantity:  5,
						Product:   "My App",
						Currency:  "JPY",
						Amount:    slicer.M(d("500"), "JPY"),
						Rate:      d("0.0075"),
						Converted: slicer.M(d("3.375"), "EUR"),
					}},
				}},
				Total: slicer.M(d("3.375"), "EUR"),
			},
		},
	}

	got := Statement(s)
	for _, want := range []string{
		"Sales date: 01.06.2015 - 30.06.2015",
		"## iTunes K.K.",
		"Minato-ku, Tokyo 106-6140",
		"### Sales in Japan (JP)",
		"| Quantity | Product | Amount | Exchange Rate | Amount in EUR |",
		"| 5 | My App | JPY 500 | 0.00750 | 3,38 € |",
		"**iTunes K.K. Total: 3,38 €**",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered statement is missing %q\nrendered:\n%s", want, got)
		}
	}
}

func TestStatement_identityRate(t *testing.T) {
	s := &slicer.Statement{
		ReportingCurrency: "EUR",
		Locale:            slicer.MustLookupLocale("de-DE"),
		Corporations: []slicer.CorporationSales{
			{
				Name: "Apple Distribution International Ltd.",
				Countries: []slicer.CountrySales{{
					Name: "France",
					Code: "FR",
					Lines: []slicer.ProductLine{{
						Quantity:  10,
						Product:   "My App",
						Currency:  "EUR",
						Amount:    slicer.M(d("9.99"), "EUR"),
						Rate:      d("1"),
						Converted: slicer.M(d("9.99"), "EUR"),
					}},
				}},
				Total: slicer.M(d("9.99"), "EUR"),
			},
		},
	}

	got := Statement(s)
	if !strings.Contains(got, "| 10 | My App | EUR 9,99 | 1.00000 | 9,99 € |") {
		t.Errorf("identity conversion rendered wrong:\n%s", got)
	}
}

func TestRateTable(t *testing.T) {
	table := slicer.RateTable{
		"JPY":              {Rate: d("0.0075"), TaxFactor: d("0.9")},
		slicer.RoWCurrency: {Rate: d("0.91425"), TaxFactor: d("1")},
	}

	got := RateTable(table, []string{"JPY", slicer.RoWCurrency})
	for _, want := range []string{
		"| JPY | 0.00750 | 0.9 |",
		"| USD - RoW | 0.91425 | 1 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered rate table is missing %q\nrendered:\n%s", want, got)
		}
	}
}
