package sqlgen

import (
	"fmt"
	"strings"

	"locations-sqlgen/internal/models"
)

// InsertStatement renders one INSERT into the locations table. Coordinates are written verbatim.
func InsertStatement(r models.LocationRecord) string {
	return fmt.Sprintf(
		"INSERT INTO locations (city, postcode, latitude, longitude, province) VALUES (%s, %s, %s, %s, %s);",
		Literal(r.City), Literal(r.Postcode), r.Latitude, r.Longitude, Literal(r.Province),
	)
}

// Batches splits statements into consecutive slices of at most size elements.
func Batches(statements []string, size int) [][]string {
	if size <= 0 {
		return nil
	}

	var batches [][]string
	for start := 0; start < len(statements); start += size {
		end := min(start+size, len(statements))
		batches = append(batches, statements[start:end])
	}
	return batches
}

// BatchSuffix returns the file suffix of the i-th batch (0-based): a..z, then aa, ab, ... az, ba, ...
func BatchSuffix(i int) string {
	var b []byte
	for n := i + 1; n > 0; n = (n - 1) / 26 {
		b = append([]byte{byte('a' + (n-1)%26)}, b...)
	}
	return string(b)
}

// BatchScript joins a batch into file contents, one statement per line with a trailing newline.
func BatchScript(batch []string) []byte {
	return []byte(strings.Join(batch, "\n") + "\n")
}
