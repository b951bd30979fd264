package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Sector Synonym Tests
// =============================================================================

func TestSynonymsFor(t *testing.T) {
	assert.Equal(t, []string{"Technology", "Information Technology"}, synonymsFor("tech"))
	assert.Equal(t, []string{"Financial Services"}, synonymsFor("banking"))
	assert.Equal(t, []string{"Financial Services"}, synonymsFor("BANKING"))

	// Unknown keywords degrade to themselves.
	assert.Equal(t, []string{"textile"}, synonymsFor("textile"))
}

func TestSectorKeywordsCoverSynonymTable(t *testing.T) {
	assert.Len(t, sectorKeywords, len(SectorSynonyms))
	for _, kw := range sectorKeywords {
		assert.Contains(t, SectorSynonyms, kw)
	}
}

// =============================================================================
// Fund House Extraction Tests
// =============================================================================

func TestHousesInQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "two houses in scan order",
			query: "compare hdfc and sbi funds",
			want:  []string{"SBI Mutual Fund", "HDFC Mutual Fund"},
		},
		{
			name:  "single house",
			query: "compare icici funds",
			want:  []string{"ICICI Prudential"},
		},
		{
			name:  "aliases deduplicate to one house",
			query: "aditya birla vs birla",
			want:  []string{"Aditya Birla Sun Life"},
		},
		{
			name:  "no houses",
			query: "compare apples and oranges",
			want:  nil,
		},
		{
			name:  "three houses",
			query: "uti vs kotak vs axis",
			want:  []string{"Axis Mutual Fund", "UTI Mutual Fund", "Kotak Mahindra"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, housesInQuery(tt.query))
		})
	}
}

func TestFundHouseKeywordsCoverVocabulary(t *testing.T) {
	assert.Len(t, fundHouseKeywords, len(FundHouses))
	for _, kw := range fundHouseKeywords {
		assert.Contains(t, FundHouses, kw)
	}
}
