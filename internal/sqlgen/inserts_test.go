package sqlgen

import (
	"fmt"
	"strings"
	"testing"

	"locations-sqlgen/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertStatement(t *testing.T) {
	tests := []struct {
		name     string
		record   models.LocationRecord
		expected string
	}{
		{
			name: "plain values",
			record: models.LocationRecord{
				City: "Amsterdam", Postcode: "1011AB", Latitude: "52.3731", Longitude: "4.8926", Province: "Noord-Holland",
			},
			expected: "INSERT INTO locations (city, postcode, latitude, longitude, province) VALUES ('Amsterdam', '1011AB', 52.3731, 4.8926, 'Noord-Holland');",
		},
		{
			name: "quoted city",
			record: models.LocationRecord{
				City: "'s-Hertogenbosch", Postcode: "5211", Latitude: "51.69", Longitude: "5.30", Province: "Noord-Brabant",
			},
			expected: `INSERT INTO locations (city, postcode, latitude, longitude, province) VALUES (E'\'s-Hertogenbosch', '5211', 51.69, 5.30, 'Noord-Brabant');`,
		},
		{
			name: "coordinates are copied verbatim",
			record: models.LocationRecord{
				City: "X", Postcode: "0000", Latitude: "52.100000", Longitude: "-0.5e1", Province: "Y",
			},
			expected: "INSERT INTO locations (city, postcode, latitude, longitude, province) VALUES ('X', '0000', 52.100000, -0.5e1, 'Y');",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InsertStatement(tt.record))
		})
	}
}

func TestBatches(t *testing.T) {
	tests := []struct {
		name          string
		count         int
		size          int
		expectedSizes []int
	}{
		{name: "empty", count: 0, size: 500, expectedSizes: nil},
		{name: "single partial batch", count: 3, size: 500, expectedSizes: []int{3}},
		{name: "exact multiple", count: 1000, size: 500, expectedSizes: []int{500, 500}},
		{name: "remainder", count: 1201, size: 500, expectedSizes: []int{500, 500, 201}},
		{name: "size one", count: 3, size: 1, expectedSizes: []int{1, 1, 1}},
		{name: "invalid size", count: 3, size: 0, expectedSizes: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statements := make([]string, tt.count)
			for i := range statements {
				statements[i] = fmt.Sprintf("stmt %d;", i)
			}

			batches := Batches(statements, tt.size)

			var sizes []int
			var joined []string
			for _, b := range batches {
				sizes = append(sizes, len(b))
				joined = append(joined, b...)
			}
			assert.Equal(t, tt.expectedSizes, sizes)
			if tt.size > 0 {
				assert.Equal(t, len(statements), len(joined))
				if len(statements) > 0 {
					assert.Equal(t, statements, joined)
				}
			}
		})
	}
}

func TestBatchSuffix(t *testing.T) {
	tests := []struct {
		index    int
		expected string
	}{
		{0, "a"},
		{1, "b"},
		{25, "z"},
		{26, "aa"},
		{27, "ab"},
		{51, "az"},
		{52, "ba"},
		{701, "zz"},
		{702, "aaa"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, BatchSuffix(tt.index))
		})
	}
}

func TestBatchSuffix_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 2000; i++ {
		s := BatchSuffix(i)
		require.False(t, seen[s], "duplicate suffix %q at %d", s, i)
		seen[s] = true
	}
}

func TestBatchScript(t *testing.T) {
	got := BatchScript([]string{"A;", "B;"})
	assert.Equal(t, "A;\nB;\n", string(got))
	assert.True(t, strings.HasSuffix(string(BatchScript([]string{"only;"})), "only;\n"))
}
