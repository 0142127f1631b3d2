package sqlgen

import (
	"fmt"
	"strconv"
	"strings"

	"locations-sqlgen/internal/models"
)

// PrefixScript renders the postcode_prefixes DDL and a single idempotent bulk insert. Summaries are
// written in the order given; an empty slice produces the DDL only.
func PrefixScript(summaries []models.PrefixSummary, prefixLength int) []byte {
	var b strings.Builder

	b.WriteString("-- Postcode prefixes with average coordinates\n")
	b.WriteString("CREATE TABLE IF NOT EXISTS postcode_prefixes (\n")
	fmt.Fprintf(&b, "    prefix VARCHAR(%d) PRIMARY KEY,\n", prefixLength)
	b.WriteString("    avg_latitude DECIMAL(10,8),\n")
	b.WriteString("    avg_longitude DECIMAL(11,8),\n")
	b.WriteString("    province VARCHAR(50),\n")
	b.WriteString("    city VARCHAR(100)\n")
	b.WriteString(");\n")

	if len(summaries) == 0 {
		return []byte(b.String())
	}

	b.WriteString("\nINSERT INTO postcode_prefixes (prefix, avg_latitude, avg_longitude, province, city) VALUES\n")

	tuples := make([]string, 0, len(summaries))
	for _, s := range summaries {
		tuples = append(tuples, fmt.Sprintf("(%s, %s, %s, %s, %s)",
			Literal(s.Prefix),
			formatCoordinate(s.AvgLatitude),
			formatCoordinate(s.AvgLongitude),
			Literal(s.Province),
			Literal(s.City),
		))
	}
	b.WriteString(strings.Join(tuples, ",\n"))
	b.WriteString("\nON CONFLICT (prefix) DO NOTHING;\n")

	return []byte(b.String())
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', 8, 64)
}
