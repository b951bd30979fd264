// Package catalog provides the immutable in-memory catalog of mutual funds,
// stocks, and fund-to-stock holdings that the search engine queries.
//
// A catalog is materialized once into a Snapshot at startup and never mutated
// afterward. Optional numeric fields are pointers so that "absent" stays
// distinguishable from zero.
package catalog

// Returns holds trailing return percentages for a fund.
// Each field is optional; a nil entry means the figure is not published.
type Returns struct {
	OneYear   *float64 `yaml:"one_year,omitempty" json:"oneYear,omitempty"`
	ThreeYear *float64 `yaml:"three_year,omitempty" json:"threeYear,omitempty"`
	FiveYear  *float64 `yaml:"five_year,omitempty" json:"fiveYear,omitempty"`
}

// Fund is a mutual fund scheme in the catalog.
type Fund struct {
	// ID is the stable, globally unique fund identifier.
	ID string `yaml:"id" json:"id"`

	// Name is the full scheme name, e.g. "ICICI Prudential Infrastructure Fund".
	Name string `yaml:"name" json:"name"`

	// FundHouse is the asset management company running the scheme.
	FundHouse string `yaml:"fund_house" json:"fundHouse"`

	// Category is the broad scheme category, e.g. "Equity" or "Debt".
	Category string `yaml:"category" json:"category"`

	// SubCategory refines Category, e.g. "ELSS", "Large Cap", "Technology".
	SubCategory string `yaml:"sub_category,omitempty" json:"subCategory,omitempty"`

	// AssetClass is the dominant asset class of the scheme.
	AssetClass string `yaml:"asset_class,omitempty" json:"assetClass,omitempty"`

	// AUM is assets under management in INR crores. Nil when unpublished.
	AUM *float64 `yaml:"aum,omitempty" json:"aum,omitempty"`

	// Returns holds trailing return percentages. Nil when unpublished.
	Returns *Returns `yaml:"returns,omitempty" json:"returns,omitempty"`

	// IsTaxSaving marks Section 80C eligible (ELSS) schemes.
	IsTaxSaving bool `yaml:"is_tax_saving,omitempty" json:"isTaxSaving,omitempty"`
}

// ThreeYearReturn returns the fund's three-year return and whether it is known.
func (f *Fund) ThreeYearReturn() (float64, bool) {
	if f.Returns == nil || f.Returns.ThreeYear == nil {
		return 0, false
	}
	return *f.Returns.ThreeYear, true
}

// Stock is a listed equity in the catalog.
type Stock struct {
	// ID is the stable, globally unique stock identifier.
	ID string `yaml:"id" json:"id"`

	// Name is the listed company name, e.g. "HDFC Bank Ltd".
	Name string `yaml:"name" json:"name"`

	// Symbol is the exchange ticker, uppercase by convention, e.g. "HDFCBANK".
	Symbol string `yaml:"symbol" json:"symbol"`

	// Sector is the top-level sector, e.g. "Financial Services".
	Sector string `yaml:"sector,omitempty" json:"sector,omitempty"`

	// Industry refines Sector, e.g. "Banking".
	Industry string `yaml:"industry,omitempty" json:"industry,omitempty"`

	// MarketCap is the market capitalization in INR crores. Nil when unknown.
	MarketCap *float64 `yaml:"market_cap,omitempty" json:"marketCap,omitempty"`
}

// Holding records what percentage of a fund's portfolio is invested in a stock.
// Rows are independent candidate contributions; the engine never deduplicates
// or sums rows sharing a (fund, stock) pair.
type Holding struct {
	FundID     string  `yaml:"fund_id" json:"fundId"`
	StockID    string  `yaml:"stock_id" json:"stockId"`
	Percentage float64 `yaml:"percentage" json:"percentage"`
}
