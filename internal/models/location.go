package models

// LocationRecord is one positional row of the locations CSV. Every field keeps the exact text read
// from the file so coordinates can be written back without reformatting.
type LocationRecord struct {
	City      string
	Postcode  string
	Latitude  string
	Longitude string
	Province  string
}

// Location is a header-decoded row of the locations CSV with parsed coordinates.
type Location struct {
	City      string  `csv:"city"`
	Postcode  string  `csv:"postcode"`
	Latitude  float64 `csv:"latitude"`
	Longitude float64 `csv:"longitude"`
	Province  string  `csv:"province"`
}

// PrefixSummary is the aggregate of every location sharing a postcode prefix.
type PrefixSummary struct {
	Prefix       string
	AvgLatitude  float64
	AvgLongitude float64
	Province     string
	City         string
}
