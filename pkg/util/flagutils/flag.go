package flagutils

import "strings"

// regionalIndicatorOffset maps 'A' (65) onto U+1F1E6, REGIONAL INDICATOR SYMBOL LETTER A.
const regionalIndicatorOffset = 127397

// CountryFlag converts an ISO 3166-1 alpha-2 code into its flag glyph.
// Characters outside A-Z are dropped.
func CountryFlag(countryCode string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(countryCode) {
		if r < 'A' || r > 'Z' {
			continue
		}
		b.WriteRune(r + regionalIndicatorOffset)
	}
	return b.String()
}

// DisplayLabel joins a place name and the flag of its country, e.g. "Berlin 🇩🇪".
func DisplayLabel(name, countryCode string) string {
	flag := CountryFlag(countryCode)
	if flag == "" {
		return name
	}
	return name + " " + flag
}
