package stockfolio

import "fmt"

// Stateless business-rule checks. Each returns nil to approve or a wrapped
// sentinel error with the specific reason. They never write and never panic
// on business input; the orchestrator runs them to completion before opening
// a unit of work.

// ValidateCashChange checks a deposit or withdrawal amount against the
// current balance.
func ValidateCashChange(amount Money, kind MovementKind, balance Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}
	if kind == Withdrawal && amount.GreaterThan(balance) {
		return fmt.Errorf("%w: tried to withdraw %s but balance is %s", ErrInsufficientCash, amount, balance)
	}
	return nil
}

// ValidateTicker turns a price source lookup failure into a rejection.
func ValidateTicker(ticker string, lookupErr error) error {
	if lookupErr != nil {
		return fmt.Errorf("%w: %q", ErrUnknownTicker, ticker)
	}
	return nil
}

// ValidateBuy checks quantity, price and purchasing power for a buy.
func ValidateBuy(ticker string, quantity Quantity, price Money, balance Money) error {
	if !quantity.IsPositive() {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	if !price.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidPrice, price)
	}
	if cost := price.Mul(quantity); cost.GreaterThan(balance) {
		return fmt.Errorf("%w: buying %d %s needs %s but balance is %s",
			ErrInsufficientCash, quantity, ticker, cost, balance)
	}
	return nil
}

// ValidateSell checks quantity, price and position size for a sale. A nil
// holding means the ticker was never traded.
func ValidateSell(ticker string, quantity Quantity, price Money, holding *Holding) error {
	if !quantity.IsPositive() {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	if !price.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidPrice, price)
	}
	var held Quantity
	if holding != nil {
		held = holding.Quantity
	}
	if held.LessThan(quantity) {
		return fmt.Errorf("%w: cannot sell %d of %s, position is only %d",
			ErrInsufficientShares, quantity, ticker, held)
	}
	return nil
}

// ValidateHistoryQuery rejects a per-ticker history query when no holding
// row exists at all. A zero-quantity holding is queryable: the position was
// held once and its history remains visible.
func ValidateHistoryQuery(ticker string, holding *Holding) error {
	if holding == nil {
		return fmt.Errorf("%w: %q", ErrUnknownHolding, ticker)
	}
	return nil
}
