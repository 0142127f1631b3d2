// Package sqlgen renders the PostgreSQL text written by locsql.
package sqlgen

import "strings"

// Literal quotes s as a PostgreSQL string constant. Values containing a single quote use the
// escape string form (E'...') with every quote backslash-escaped.
func Literal(s string) string {
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	return "E'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}
