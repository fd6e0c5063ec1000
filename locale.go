package slicer

import "fmt"

// Locale describes the display conventions used when rendering a statement.
// It is only ever used for formatting: report files always carry US-style
// dates and dot-decimal amounts regardless of the operator's locale.
type Locale struct {
	Tag        string // BCP 47 style tag, e.g. "de-DE"
	DateLayout string // Go reference layout used to display dates
	Decimal    string // decimal separator for amounts
	Thousand   string // thousands separator for amounts
}

var locales = map[string]Locale{
	"de-DE": {Tag: "de-DE", DateLayout: "02.01.2006", Decimal: ",", Thousand: "."},
	"en-US": {Tag: "en-US", DateLayout: "01/02/2006", Decimal: ".", Thousand: ","},
	"en-GB": {Tag: "en-GB", DateLayout: "02/01/2006", Decimal: ".", Thousand: ","},
	"fr-FR": {Tag: "fr-FR", DateLayout: "02/01/2006", Decimal: ",", Thousand: " "},
	"it-IT": {Tag: "it-IT", DateLayout: "02/01/2006", Decimal: ",", Thousand: "."},
	"nl-NL": {Tag: "nl-NL", DateLayout: "02-01-2006", Decimal: ",", Thousand: "."},
}

// LookupLocale returns the display conventions for the given tag.
func LookupLocale(tag string) (Locale, error) {
	loc, ok := locales[tag]
	if !ok {
		return Locale{}, fmt.Errorf("unsupported locale %q", tag)
	}
	return loc, nil
}

// MustLookupLocale is like LookupLocale but panics on error.
func MustLookupLocale(tag string) Locale {
	loc, err := LookupLocale(tag)
	if err != nil {
		panic(err.Error())
	}
	return loc
}
