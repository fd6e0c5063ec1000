// Package apple maps storefront country codes to the Apple subsidiary that
// is legally accountable for sales in that country.
//
// The mapping is a fixed fact of how the storefront invoices its sales, so
// it is implemented as immutable lookup tables. It must cover every country
// code that can appear in a financial report; an unknown country renders
// the whole report invalid.
package apple

import "fmt"

// The accountable subsidiaries.
const (
	AppleInc    = "Apple Inc."
	AppleCanada = "Apple Canada Inc."
	AppleDI     = "Apple Distribution International Ltd."
	ApplePty    = "Apple Pty Limited"
	ITunesKK    = "iTunes K.K."
)

// addresses holds the invoicing address of each subsidiary.
var addresses = map[string]string{
	AppleInc:    "One Apple Park Way\nCupertino, CA 95014\nU.S.A.",
	AppleCanada: "120 Bremner Boulevard, Suite 1600\nToronto, ON M5J 0A8\nCanada",
	AppleDI:     "Hollyhill Industrial Estate\nHollyhill, Cork\nRepublic of Ireland",
	ApplePty:    "Level 3, 20 Martin Place\nSydney NSW 2000\nAustralia",
	ITunesKK:    "Roppongi Hills, 6-10-1 Roppongi\nMinato-ku, Tokyo 106-6140\nJapan",
}

// corporations maps a country code to its accountable subsidiary.
var corporations = map[string]string{
	// Americas
	"US": AppleInc,
	"CA": AppleCanada,

	// Europe, Middle East, Africa, Asia-Pacific and Latin America (except
	// Japan, Australia and New Zealand) are invoiced out of Ireland.
	"AE": AppleDI,
	"AT": AppleDI,
	"BE": AppleDI,
	"BG": AppleDI,
	"BR": AppleDI,
	"CH": AppleDI,
	"CL": AppleDI,
	"CN": AppleDI,
	"CO": AppleDI,
	"CY": AppleDI,
	"CZ": AppleDI,
	"DE": AppleDI,
	"DK": AppleDI,
	"EE": AppleDI,
	"ES": AppleDI,
	"FI": AppleDI,
	"FR": AppleDI,
	"GB": AppleDI,
	"GR": AppleDI,
	"HK": AppleDI,
	"HR": AppleDI,
	"HU": AppleDI,
	"ID": AppleDI,
	"IE": AppleDI,
	"IL": AppleDI,
	"IN": AppleDI,
	"IT": AppleDI,
	"KR": AppleDI,
	"LT": AppleDI,
	"LU": AppleDI,
	"LV": AppleDI,
	"MT": AppleDI,
	"MX": AppleDI,
	"MY": AppleDI,
	"NL": AppleDI,
	"NO": AppleDI,
	"PE": AppleDI,
	"PH": AppleDI,
	"PL": AppleDI,
	"PT": AppleDI,
	"RO": AppleDI,
	"RU": AppleDI,
	"SA": AppleDI,
	"SE": AppleDI,
	"SG": AppleDI,
	"SI": AppleDI,
	"SK": AppleDI,
	"TH": AppleDI,
	"TR": AppleDI,
	"TW": AppleDI,
	"VN": AppleDI,
	"ZA": AppleDI,

	"JP": ITunesKK,

	"AU": ApplePty,
	"NZ": ApplePty,
}

// countryNames maps a country code to its display name.
var countryNames = map[string]string{
	"AE": "United Arab Emirates",
	"AT": "Austria",
	"AU": "Australia",
	"BE": "Belgium",
	"BG": "Bulgaria",
	"BR": "Brazil",
	"CA": "Canada",
	"CH": "Switzerland",
	"CL": "Chile",
	"CN": "China",
	"CO": "Colombia",
	"CY": "Cyprus",
	"CZ": "Czech Republic",
	"DE": "Germany",
	"DK": "Denmark",
	"EE": "Estonia",
	"ES": "Spain",
	"FI": "Finland",
	"FR": "France",
	"GB": "United Kingdom",
	"GR": "Greece",
	"HK": "Hong Kong",
	"HR": "Croatia",
	"HU": "Hungary",
	"ID": "Indonesia",
	"IE": "Ireland",
	"IL": "Israel",
	"IN": "India",
	"IT": "Italy",
	"JP": "Japan",
	"KR": "Republic of Korea",
	"LT": "Lithuania",
	"LU": "Luxembourg",
	"LV": "Latvia",
	"MT": "Malta",
	"MX": "Mexico",
	"MY": "Malaysia",
	"NL": "Netherlands",
	"NO": "Norway",
	"NZ": "New Zealand",
	"PE": "Peru",
	"PH": "Philippines",
	"PL": "Poland",
	"PT": "Portugal",
	"RO": "Romania",
	"RU": "Russia",
	"SA": "Saudi Arabia",
	"SE": "Sweden",
	"SG": "Singapore",
	"SI": "Slovenia",
	"SK": "Slovakia",
	"TH": "Thailand",
	"TR": "Turkey",
	"TW": "Taiwan",
	"US": "United States",
	"VN": "Vietnam",
	"ZA": "South Africa",
}

// Corporation returns the subsidiary accountable for sales in the given
// country.
func Corporation(country string) (string, error) {
	corp, ok := corporations[country]
	if !ok {
		return "", fmt.Errorf("no accountable corporation known for country code %q", country)
	}
	return corp, nil
}

// Address returns the invoicing address of a subsidiary.
func Address(corporation string) string {
	return addresses[corporation]
}

// CountryName returns the display name of a country code, or the code
// itself if no name is known.
func CountryName(country string) string {
	if name, ok := countryNames[country]; ok {
		return name
	}
	return country
}
