package catalog

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/quantrail/fundlens/internal/errors"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS funds (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	fund_house    TEXT NOT NULL,
	category      TEXT NOT NULL,
	sub_category  TEXT NOT NULL DEFAULT '',
	asset_class   TEXT NOT NULL DEFAULT '',
	aum           REAL,
	return_1y     REAL,
	return_3y     REAL,
	return_5y     REAL,
	is_tax_saving INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS stocks (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	symbol     TEXT NOT NULL UNIQUE,
	sector     TEXT NOT NULL DEFAULT '',
	industry   TEXT NOT NULL DEFAULT '',
	market_cap REAL
);
CREATE TABLE IF NOT EXISTS holdings (
	fund_id    TEXT NOT NULL REFERENCES funds(id),
	stock_id   TEXT NOT NULL REFERENCES stocks(id),
	percentage REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_holdings_stock ON holdings(stock_id);
`

// LoadSQLite reads a catalog from a SQLite database and materializes a
// Snapshot. The same validation applies as for YAML catalogs.
func LoadSQLite(path string) (*Snapshot, error) {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, errors.New(errors.ErrCodeCatalogLoad, fmt.Sprintf("open catalog db %s", path), err)
	}
	defer db.Close()

	funds, err := readFunds(db)
	if err != nil {
		return nil, err
	}
	stocks, err := readStocks(db)
	if err != nil {
		return nil, err
	}
	holdings, err := readHoldings(db)
	if err != nil {
		return nil, err
	}
	return NewSnapshot(funds, stocks, holdings)
}

func readFunds(db *sql.DB) ([]Fund, error) {
	rows, err := db.Query(`SELECT id, name, fund_house, category, sub_category,
		asset_class, aum, return_1y, return_3y, return_5y, is_tax_saving
		FROM funds ORDER BY id`)
	if err != nil {
		return nil, errors.New(errors.ErrCodeCatalogLoad, "query funds", err)
	}
	defer rows.Close()

	var funds []Fund
	for rows.Next() {
		var f Fund
		var r1, r3, r5 sql.NullFloat64
		var aum sql.NullFloat64
		if err := rows.Scan(&f.ID, &f.Name, &f.FundHouse, &f.Category,
			&f.SubCategory, &f.AssetClass, &aum, &r1, &r3, &r5, &f.IsTaxSaving); err != nil {
			return nil, errors.New(errors.ErrCodeCatalogLoad, "scan fund row", err)
		}
		if aum.Valid {
			f.AUM = &aum.Float64
		}
		if r1.Valid || r3.Valid || r5.Valid {
			f.Returns = &Returns{}
			if r1.Valid {
				f.Returns.OneYear = &r1.Float64
			}
			if r3.Valid {
				f.Returns.ThreeYear = &r3.Float64
			}
			if r5.Valid {
				f.Returns.FiveYear = &r5.Float64
			}
		}
		funds = append(funds, f)
	}
	return funds, rows.Err()
}

func readStocks(db *sql.DB) ([]Stock, error) {
	rows, err := db.Query(`SELECT id, name, symbol, sector, industry, market_cap
		FROM stocks ORDER BY id`)
	if err != nil {
		return nil, errors.New(errors.ErrCodeCatalogLoad, "query stocks", err)
	}
	defer rows.Close()

	var stocks []Stock
	for rows.Next() {
		var s Stock
		var mcap sql.NullFloat64
		if err := rows.Scan(&s.ID, &s.Name, &s.Symbol, &s.Sector, &s.Industry, &mcap); err != nil {
			return nil, errors.New(errors.ErrCodeCatalogLoad, "scan stock row", err)
		}
		if mcap.Valid {
			s.MarketCap = &mcap.Float64
		}
		stocks = append(stocks, s)
	}
	return stocks, rows.Err()
}

func readHoldings(db *sql.DB) ([]Holding, error) {
	rows, err := db.Query(`SELECT fund_id, stock_id, percentage FROM holdings`)
	if err != nil {
		return nil, errors.New(errors.ErrCodeCatalogLoad, "query holdings", err)
	}
	defer rows.Close()

	var holdings []Holding
	for rows.Next() {
		var h Holding
		if err := rows.Scan(&h.FundID, &h.StockID, &h.Percentage); err != nil {
			return nil, errors.New(errors.ErrCodeCatalogLoad, "scan holding row", err)
		}
		holdings = append(holdings, h)
	}
	return holdings, rows.Err()
}

// ExportSQLite writes a snapshot to a SQLite database at path, creating the
// schema if needed and replacing any existing rows. The whole export runs in
// one transaction so readers never observe a half-written catalog.
func ExportSQLite(snap *Snapshot, path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return errors.New(errors.ErrCodeCatalogLoad, fmt.Sprintf("open catalog db %s", path), err)
	}
	defer db.Close()

	if _, err := db.Exec(schemaSQL); err != nil {
		return errors.New(errors.ErrCodeCatalogLoad, "create schema", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return errors.New(errors.ErrCodeCatalogLoad, "begin export", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"holdings", "funds", "stocks"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return errors.New(errors.ErrCodeCatalogLoad, "clear "+table, err)
		}
	}

	for _, f := range snap.Funds() {
		var r1, r3, r5 *float64
		if f.Returns != nil {
			r1, r3, r5 = f.Returns.OneYear, f.Returns.ThreeYear, f.Returns.FiveYear
		}
		if _, err := tx.Exec(`INSERT INTO funds
			(id, name, fund_house, category, sub_category, asset_class, aum,
			 return_1y, return_3y, return_5y, is_tax_saving)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			f.ID, f.Name, f.FundHouse, f.Category, f.SubCategory, f.AssetClass,
			f.AUM, r1, r3, r5, f.IsTaxSaving); err != nil {
			return errors.New(errors.ErrCodeCatalogLoad, "insert fund "+f.ID, err)
		}
	}
	for _, s := range snap.Stocks() {
		if _, err := tx.Exec(`INSERT INTO stocks
			(id, name, symbol, sector, industry, market_cap)
			VALUES (?, ?, ?, ?, ?, ?)`,
			s.ID, s.Name, s.Symbol, s.Sector, s.Industry, s.MarketCap); err != nil {
			return errors.New(errors.ErrCodeCatalogLoad, "insert stock "+s.ID, err)
		}
	}
	for _, h := range snap.Holdings() {
		if _, err := tx.Exec(`INSERT INTO holdings (fund_id, stock_id, percentage)
			VALUES (?, ?, ?)`,
			h.FundID, h.StockID, h.Percentage); err != nil {
			return errors.New(errors.ErrCodeCatalogLoad, "insert holding", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.New(errors.ErrCodeCatalogLoad, "commit export", err)
	}
	return nil
}
