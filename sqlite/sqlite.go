// Package sqlite persists ledger records in a single SQLite file.
//
// It implements stockfolio.Store with one database/sql transaction per unit
// of work, so every record written by one ledger operation commits or rolls
// back together.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jbury/stockfolio"
)

// Store is a stockfolio.Store backed by a SQLite database file.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the
// schema. Use ":memory:" for a throwaway database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema to %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close implements stockfolio.Store.
func (s *Store) Close() error { return s.db.Close() }

// Begin implements stockfolio.Store.
func (s *Store) Begin(ctx context.Context) (stockfolio.UnitOfWork, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &unit{tx: tx}, nil
}

// unit is a stockfolio.UnitOfWork over one *sql.Tx.
type unit struct {
	tx *sql.Tx
}

func (u *unit) AppendCashMovement(m stockfolio.CashMovement) error {
	_, err := u.tx.Exec(`
		INSERT INTO cash_movements (id, kind, amount, balance, currency, day)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, string(m.Kind), m.Amount.Decimal().String(),
		m.Balance.Decimal().String(), m.Amount.Currency(), m.Date.String(),
	)
	return err
}

func (u *unit) AppendTrade(t stockfolio.Trade) error {
	_, err := u.tx.Exec(`
		INSERT INTO trades (id, ticker, side, quantity, price, cash_effect, currency, day)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Ticker, string(t.Side), t.Quantity.Int64(),
		t.Price.Decimal().String(), t.CashEffect.Decimal().String(),
		t.Price.Currency(), t.Date.String(),
	)
	return err
}

func (u *unit) SaveHolding(h stockfolio.Holding) error {
	_, err := u.tx.Exec(`
		INSERT INTO holdings (ticker, quantity, avg_cost, currency)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(ticker) DO UPDATE SET
			quantity = excluded.quantity,
			avg_cost = excluded.avg_cost,
			currency = excluded.currency`,
		h.Ticker, h.Quantity.Int64(),
		h.AverageCost.Decimal().String(), h.AverageCost.Currency(),
	)
	return err
}

func (u *unit) AppendRealizedGain(g stockfolio.RealizedGain) error {
	_, err := u.tx.Exec(`
		INSERT INTO realized_gains (id, trade_id, ticker, quantity, sale_price, avg_cost, delta, currency, day)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.TradeID, g.Ticker, g.Quantity.Int64(),
		g.SalePrice.Decimal().String(), g.AvgCost.Decimal().String(),
		g.Delta.Decimal().String(), g.SalePrice.Currency(), g.Date.String(),
	)
	return err
}

func (u *unit) Commit() error   { return u.tx.Commit() }
func (u *unit) Rollback() error { return u.tx.Rollback() }

// CashBalance implements stockfolio.Store. The balance is the running
// balance of the latest movement; an empty log means zero.
func (s *Store) CashBalance(ctx context.Context) (stockfolio.Money, error) {
	var balance, currency string
	err := s.db.QueryRowContext(ctx, `
		SELECT balance, currency FROM cash_movements
		ORDER BY id DESC LIMIT 1`).Scan(&balance, &currency)
	if err == sql.ErrNoRows {
		return stockfolio.Money{}, nil
	}
	if err != nil {
		return stockfolio.Money{}, err
	}
	return stockfolio.ParseMoney(balance, currency)
}

// CashMovements implements stockfolio.Store.
func (s *Store) CashMovements(ctx context.Context) ([]stockfolio.CashMovement, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, amount, balance, currency, day
		FROM cash_movements ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []stockfolio.CashMovement
	for rows.Next() {
		var m stockfolio.CashMovement
		var kind, amount, balance, currency, day string
		if err := rows.Scan(&m.ID, &kind, &amount, &balance, &currency, &day); err != nil {
			return nil, err
		}
		m.Kind = stockfolio.MovementKind(kind)
		if m.Amount, err = stockfolio.ParseMoney(amount, currency); err != nil {
			return nil, err
		}
		if m.Balance, err = stockfolio.ParseMoney(balance, currency); err != nil {
			return nil, err
		}
		if m.Date, err = stockfolio.ParseDate(day); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Trades implements stockfolio.Store.
func (s *Store) Trades(ctx context.Context) ([]stockfolio.Trade, error) {
	return s.queryTrades(ctx, `
		SELECT id, ticker, side, quantity, price, cash_effect, currency, day
		FROM trades ORDER BY id`)
}

// TradesFor implements stockfolio.Store.
func (s *Store) TradesFor(ctx context.Context, ticker string) ([]stockfolio.Trade, error) {
	return s.queryTrades(ctx, `
		SELECT id, ticker, side, quantity, price, cash_effect, currency, day
		FROM trades WHERE ticker = ? ORDER BY id`, ticker)
}

func (s *Store) queryTrades(ctx context.Context, query string, args ...any) ([]stockfolio.Trade, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []stockfolio.Trade
	for rows.Next() {
		var t stockfolio.Trade
		var side, price, effect, currency, day string
		var quantity int64
		if err := rows.Scan(&t.ID, &t.Ticker, &side, &quantity, &price, &effect, &currency, &day); err != nil {
			return nil, err
		}
		t.Side = stockfolio.Side(side)
		t.Quantity = stockfolio.Q(quantity)
		if t.Price, err = stockfolio.ParseMoney(price, currency); err != nil {
			return nil, err
		}
		if t.CashEffect, err = stockfolio.ParseMoney(effect, currency); err != nil {
			return nil, err
		}
		if t.Date, err = stockfolio.ParseDate(day); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Holdings implements stockfolio.Store.
func (s *Store) Holdings(ctx context.Context) ([]stockfolio.Holding, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT ticker, quantity, avg_cost, currency
		FROM holdings ORDER BY ticker`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []stockfolio.Holding
	for rows.Next() {
		h, err := scanHolding(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// Holding implements stockfolio.Store. A ticker never traded yields nil.
func (s *Store) Holding(ctx context.Context, ticker string) (*stockfolio.Holding, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT ticker, quantity, avg_cost, currency
		FROM holdings WHERE ticker = ?`, ticker)
	h, err := scanHolding(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func scanHolding(scan func(...any) error) (stockfolio.Holding, error) {
	var h stockfolio.Holding
	var quantity int64
	var cost, currency string
	if err := scan(&h.Ticker, &quantity, &cost, &currency); err != nil {
		return h, err
	}
	h.Quantity = stockfolio.Q(quantity)
	var err error
	h.AverageCost, err = stockfolio.ParseMoney(cost, currency)
	return h, err
}

// RealizedGains implements stockfolio.Store.
func (s *Store) RealizedGains(ctx context.Context) ([]stockfolio.RealizedGain, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, trade_id, ticker, quantity, sale_price, avg_cost, delta, currency, day
		FROM realized_gains ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []stockfolio.RealizedGain
	for rows.Next() {
		var g stockfolio.RealizedGain
		var quantity int64
		var sale, cost, delta, currency, day string
		if err := rows.Scan(&g.ID, &g.TradeID, &g.Ticker, &quantity, &sale, &cost, &delta, &currency, &day); err != nil {
			return nil, err
		}
		g.Quantity = stockfolio.Q(quantity)
		if g.SalePrice, err = stockfolio.ParseMoney(sale, currency); err != nil {
			return nil, err
		}
		if g.AvgCost, err = stockfolio.ParseMoney(cost, currency); err != nil {
			return nil, err
		}
		if g.Delta, err = stockfolio.ParseMoney(delta, currency); err != nil {
			return nil, err
		}
		if g.Date, err = stockfolio.ParseDate(day); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
