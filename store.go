package stockfolio

import "context"

// Store is the durable record storage the ledger writes through. Reads see
// committed state only; writes go through a UnitOfWork so that all records
// touched by one operation become visible together or not at all.
type Store interface {
	// Begin opens a unit of work. The caller must end it with exactly one
	// of Commit or Rollback.
	Begin(ctx context.Context) (UnitOfWork, error)

	// CashBalance returns the current cash balance (the running balance of
	// the latest movement, which by construction equals the signed sum of
	// the whole log).
	CashBalance(ctx context.Context) (Money, error)
	// CashMovements returns the full cash log, oldest first.
	CashMovements(ctx context.Context) ([]CashMovement, error)
	// Trades returns the full trade history, oldest first.
	Trades(ctx context.Context) ([]Trade, error)
	// TradesFor returns the trade history of one ticker, oldest first.
	TradesFor(ctx context.Context, ticker string) ([]Trade, error)
	// Holdings returns every holding row ever created, by ticker.
	Holdings(ctx context.Context) ([]Holding, error)
	// Holding returns the holding row for a ticker, or nil if the ticker
	// was never traded.
	Holding(ctx context.Context, ticker string) (*Holding, error)
	// RealizedGains returns all realized gain events, oldest first.
	RealizedGains(ctx context.Context) ([]RealizedGain, error)

	Close() error
}

// UnitOfWork stages writes across the four record sets and applies them
// atomically on Commit. Rollback discards everything staged. After Commit
// or Rollback the unit of work is dead.
type UnitOfWork interface {
	AppendCashMovement(m CashMovement) error
	AppendTrade(t Trade) error
	SaveHolding(h Holding) error
	AppendRealizedGain(g RealizedGain) error

	Commit() error
	Rollback() error
}
