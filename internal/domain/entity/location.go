package entity

// ResolvedLocation is the first geocoding candidate for a query.
type ResolvedLocation struct {
	Name        string  `json:"name"`
	CountryCode string  `json:"countryCode"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timezone    string  `json:"timezone"`
}
