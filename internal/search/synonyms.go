package search

import "strings"

// SectorSynonyms maps the sector keywords users type to the catalog terms they
// stand for. Matching against fund categories, stock sectors, and industries is
// case-insensitive substring containment on these terms.
var SectorSynonyms = map[string][]string{
	"tech":           {"Technology", "Information Technology"},
	"technology":     {"Technology", "Information Technology"},
	"it":             {"Information Technology"},
	"financial":      {"Financial Services"},
	"banking":        {"Financial Services"},
	"infrastructure": {"Infrastructure"},
	"infra":          {"Infrastructure"},
	"pharmaceutical": {"Pharmaceutical", "Healthcare"},
	"pharma":         {"Pharmaceutical", "Healthcare"},
	"healthcare":     {"Pharmaceutical", "Healthcare"},
	"consumer":       {"Consumer"},
	"energy":         {"Energy"},
	"auto":           {"Automobile"},
}

// sectorKeywords is the classifier's scan order over SectorSynonyms keys.
// Longer keywords come before their prefixes ("technology" before "tech") so
// the matched keyword reported in explanations is the most specific one; the
// synonym sets coincide, so ranking is unaffected either way.
var sectorKeywords = []string{
	"technology",
	"tech",
	"financial",
	"banking",
	"infrastructure",
	"infra",
	"pharmaceutical",
	"pharma",
	"healthcare",
	"consumer",
	"energy",
	"auto",
	"it",
}

// synonymsFor resolves a sector keyword to its catalog terms. Unrecognized
// keywords degrade to the literal keyword as its own single synonym.
func synonymsFor(keyword string) []string {
	if terms, ok := SectorSynonyms[strings.ToLower(keyword)]; ok {
		return terms
	}
	return []string{keyword}
}

// FundHouses is the fixed vocabulary of major fund houses the comparison
// strategy recognizes, keyed by the lowercase keyword matched in queries.
var FundHouses = map[string]string{
	"icici":        "ICICI Prudential",
	"sbi":          "SBI Mutual Fund",
	"hdfc":         "HDFC Mutual Fund",
	"axis":         "Axis Mutual Fund",
	"aditya birla": "Aditya Birla Sun Life",
	"birla":        "Aditya Birla Sun Life",
	"mirae":        "Mirae Asset",
	"nippon":       "Nippon India",
	"franklin":     "Franklin Templeton",
	"dsp":          "DSP Mutual Fund",
	"uti":          "UTI Mutual Fund",
	"kotak":        "Kotak Mahindra",
}

// fundHouseKeywords is the deterministic scan order over FundHouses keys.
var fundHouseKeywords = []string{
	"icici",
	"sbi",
	"hdfc",
	"axis",
	"aditya birla",
	"birla",
	"mirae",
	"nippon",
	"franklin",
	"dsp",
	"uti",
	"kotak",
}

// housesInQuery extracts the distinct canonical fund houses named in a query,
// in vocabulary scan order.
func housesInQuery(lowerQuery string) []string {
	seen := make(map[string]bool, 4)
	var houses []string
	for _, kw := range fundHouseKeywords {
		if !strings.Contains(lowerQuery, kw) {
			continue
		}
		house := FundHouses[kw]
		if seen[house] {
			continue
		}
		seen[house] = true
		houses = append(houses, house)
	}
	return houses
}
