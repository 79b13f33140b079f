package stockfolio

// Average-cost bookkeeping. ApplyBuy is the only place the average cost is
// ever recomputed; ApplySell the only place a realized delta is derived.
// The division in ApplyBuy rounds half-even to CostPrecision digits (see
// Money.DivQuantity) so that replaying a buy sequence is reproducible.

// ApplyBuy folds a purchase of quantity shares at price into the holding and
// returns the updated holding:
//
//	newQuantity = q0 + q
//	newAverage  = (q0*c0 + q*p) / (q0 + q)
//
// A nil prior holding (first trade of the ticker) starts from zero, so the
// new average is exactly the purchase price.
func ApplyBuy(prior *Holding, ticker string, quantity Quantity, price Money) Holding {
	if prior == nil || prior.Quantity.IsZero() {
		// Reopening a closed position resets the basis: the retained
		// average cost of the emptied holding must not bleed in.
		return Holding{Ticker: ticker, Quantity: quantity, AverageCost: price}
	}
	newQuantity := prior.Quantity.Add(quantity)
	totalCost := prior.AverageCost.Mul(prior.Quantity).Add(price.Mul(quantity))
	return Holding{
		Ticker:      ticker,
		Quantity:    newQuantity,
		AverageCost: totalCost.DivQuantity(newQuantity),
	}
}

// ApplySell removes quantity shares at price from the holding and returns
// the updated holding plus the realized delta (price - averageCost) * quantity.
// The average cost of the remaining shares never changes on a sale; it is
// retained even when the position falls to zero. The caller guarantees
// quantity <= prior.Quantity (ValidateSell).
func ApplySell(prior Holding, quantity Quantity, price Money) (Holding, Money) {
	delta := price.Sub(prior.AverageCost).Mul(quantity)
	prior.Quantity = prior.Quantity.Sub(quantity)
	return prior, delta
}

// UnrealizedDelta is the paper profit or loss of a holding at the given
// current price: (current - averageCost) * quantity.
func UnrealizedDelta(h Holding, current Money) Money {
	return current.Sub(h.AverageCost).Mul(h.Quantity)
}
