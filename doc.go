// Package stockfolio is a single user portfolio ledger engine.
//
// It keeps four append-or-upsert record sets: a cash log of deposits,
// withdrawals and trade settlements; a trade history; per-ticker holdings
// carrying a volume-weighted average cost; and realized gain events, one per
// sale. The Ledger type orchestrates them: it validates every operation
// against the current state, resolves market prices through a PriceSource,
// and writes all records of one operation through a Store unit of work so
// they commit or roll back together.
//
// All money is exact decimal arithmetic in a single currency. Rounding
// happens at one documented point: dividing a position's total cost by its
// share count rounds half-even to CostPrecision digits.
//
// The sqlite subpackage provides the durable Store; MemoryStore backs tests
// and short-lived embeddings. The eodhd subpackage resolves prices through
// the EODHD API.
package stockfolio
