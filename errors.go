package stockfolio

import "errors"

// Rejections are expected, recoverable outcomes: the operation was refused
// before any write, or (for ErrStorage) fully rolled back. Callers match
// them with errors.Is; the wrapped message carries the ticker and the
// requested vs available amounts.
var (
	// ErrInvalidAmount rejects a non-positive cash amount.
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	// ErrInsufficientCash rejects a withdrawal or purchase exceeding the cash balance.
	ErrInsufficientCash = errors.New("insufficient cash")
	// ErrInvalidQuantity rejects a non-positive share count.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	// ErrInvalidPrice rejects a non-positive share price.
	ErrInvalidPrice = errors.New("price must be greater than zero")
	// ErrInsufficientShares rejects a sale of more shares than are held.
	ErrInsufficientShares = errors.New("insufficient shares")
	// ErrUnknownTicker signals that the price source cannot resolve a ticker.
	ErrUnknownTicker = errors.New("unknown ticker")
	// ErrUnknownHolding rejects a history query for a ticker that was never held.
	ErrUnknownHolding = errors.New("ticker never held")
	// ErrPriceUnavailable signals that no price exists for the requested date.
	ErrPriceUnavailable = errors.New("price unavailable")

	// ErrStorage wraps any store failure. When returned from a mutating
	// operation the unit of work was rolled back and no state changed.
	ErrStorage = errors.New("storage failure")
)
