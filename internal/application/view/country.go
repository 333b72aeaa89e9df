package view

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// CountryName returns the English name of an ISO 3166-1 alpha-2 region, or "" if unknown
func CountryName(countryCode string) string {
	region, err := language.ParseRegion(strings.ToUpper(strings.TrimSpace(countryCode)))
	if err != nil {
		return ""
	}
	return display.Regions(language.English).Name(region)
}
