package stockfolio

import (
	"context"
	"fmt"
	"sync"
)

// Ledger is the single entry point of the portfolio engine. It composes the
// validation predicates, the cost-basis arithmetic and the store's unit of
// work to execute deposits, withdrawals, buys and sells, and answers the
// read queries over the committed records.
//
// Mutating operations are serialized on an internal mutex: they all
// read-then-write the shared aggregates (cash balance, holding) and a lost
// update would silently corrupt the books. Reads go straight to the store
// and only ever see committed state.
type Ledger struct {
	mu       sync.Mutex
	store    Store
	prices   PriceSource
	currency string
}

// NewLedger creates a ledger over a store and a price source. All amounts
// are accounted in the given currency.
func NewLedger(store Store, prices PriceSource, currency string) *Ledger {
	return &Ledger{store: store, prices: prices, currency: currency}
}

// Currency returns the ledger's accounting currency.
func (l *Ledger) Currency() string { return l.currency }

// money normalizes a possibly currency-less amount to the ledger currency.
func (l *Ledger) money(m Money) Money { return M(m.Decimal(), l.currency) }

// TradeResult reports what a Buy or Sell recorded.
type TradeResult struct {
	Trade    Trade
	Movement CashMovement
	Holding  Holding
	// Realized is set on sells only.
	Realized *RealizedGain
}

// Deposit adds cash and returns the new balance.
// Fails with ErrInvalidAmount.
func (l *Ledger) Deposit(ctx context.Context, amount Money, on Date) (Money, error) {
	return l.moveCash(ctx, l.money(amount), Deposit, on)
}

// Withdraw removes cash and returns the new balance.
// Fails with ErrInvalidAmount or ErrInsufficientCash.
func (l *Ledger) Withdraw(ctx context.Context, amount Money, on Date) (Money, error) {
	return l.moveCash(ctx, l.money(amount), Withdrawal, on)
}

func (l *Ledger) moveCash(ctx context.Context, amount Money, kind MovementKind, on Date) (Money, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if on.IsZero() {
		on = Today()
	}

	balance, err := l.store.CashBalance(ctx)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if err := ValidateCashChange(amount, kind, balance); err != nil {
		return Money{}, err
	}

	delta := amount
	if kind.Sign() < 0 {
		delta = amount.Neg()
	}
	movement := CashMovement{
		ID:      NewID(),
		Kind:    kind,
		Amount:  amount,
		Balance: balance.Add(delta),
		Date:    on,
	}

	uow, err := l.store.Begin(ctx)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if err := uow.AppendCashMovement(movement); err != nil {
		uow.Rollback()
		return Money{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if err := uow.Commit(); err != nil {
		return Money{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return movement.Balance, nil
}

// Buy purchases shares. When price is zero it is resolved from the price
// source: the current price for a trade dated today, the daily close for a
// back-dated trade. Records the trade, rewrites the holding with its new
// volume-weighted average cost, and debits the cash log, all in one unit of
// work. Fails with ErrUnknownTicker, ErrInvalidQuantity, ErrInvalidPrice or
// ErrInsufficientCash.
func (l *Ledger) Buy(ctx context.Context, ticker string, quantity Quantity, on Date, price Money) (*TradeResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	on, price, err := l.resolveTrade(ctx, ticker, on, price)
	if err != nil {
		return nil, err
	}

	balance, err := l.store.CashBalance(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if err := ValidateBuy(ticker, quantity, price, balance); err != nil {
		return nil, err
	}

	prior, err := l.store.Holding(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	holding := ApplyBuy(prior, ticker, quantity, price)

	cost := price.Mul(quantity)
	trade := Trade{
		ID:         NewID(),
		Ticker:     ticker,
		Side:       Buy,
		Quantity:   quantity,
		Price:      price,
		Date:       on,
		CashEffect: cost.Neg(),
	}
	movement := CashMovement{
		ID:      NewID(),
		Kind:    TradeDebit,
		Amount:  cost,
		Balance: balance.Sub(cost),
		Date:    on,
	}

	result := &TradeResult{Trade: trade, Movement: movement, Holding: holding}
	return result, l.commitTrade(ctx, result)
}

// Sell disposes of shares. Price resolution works as in Buy. Records the
// trade, decrements the holding (average cost untouched), appends the
// realized gain event and credits the cash log, all in one unit of work.
// Fails with ErrUnknownTicker, ErrInvalidQuantity, ErrInvalidPrice or
// ErrInsufficientShares.
func (l *Ledger) Sell(ctx context.Context, ticker string, quantity Quantity, on Date, price Money) (*TradeResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	on, price, err := l.resolveTrade(ctx, ticker, on, price)
	if err != nil {
		return nil, err
	}

	prior, err := l.store.Holding(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if err := ValidateSell(ticker, quantity, price, prior); err != nil {
		return nil, err
	}

	balance, err := l.store.CashBalance(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	holding, delta := ApplySell(*prior, quantity, price)

	proceeds := price.Mul(quantity)
	trade := Trade{
		ID:         NewID(),
		Ticker:     ticker,
		Side:       Sell,
		Quantity:   quantity,
		Price:      price,
		Date:       on,
		CashEffect: proceeds,
	}
	movement := CashMovement{
		ID:      NewID(),
		Kind:    TradeCredit,
		Amount:  proceeds,
		Balance: balance.Add(proceeds),
		Date:    on,
	}
	gain := &RealizedGain{
		ID:        NewID(),
		TradeID:   trade.ID,
		Ticker:    ticker,
		Quantity:  quantity,
		SalePrice: price,
		AvgCost:   prior.AverageCost,
		Delta:     delta,
		Date:      on,
	}

	result := &TradeResult{Trade: trade, Movement: movement, Holding: holding, Realized: gain}
	return result, l.commitTrade(ctx, result)
}

// resolveTrade defaults the date and resolves the share price before any
// unit of work opens, so a slow or failing quote never holds a write
// transaction. The ticker is always resolved against the price source, even
// when an explicit price was given: a typo must fail, not open a phantom
// position.
func (l *Ledger) resolveTrade(ctx context.Context, ticker string, on Date, price Money) (Date, Money, error) {
	if on.IsZero() {
		on = Today()
	}

	current, lookupErr := l.prices.CurrentPrice(ctx, ticker)
	if err := ValidateTicker(ticker, lookupErr); err != nil {
		return on, price, err
	}

	switch {
	case !price.IsZero():
		price = l.money(price)
	case on.IsToday():
		price = current
	default:
		eod, err := ClosePriceOn(ctx, l.prices, ticker, on)
		if err != nil {
			return on, price, err
		}
		price = eod
	}
	return on, price, nil
}

// commitTrade writes all records of one trade in a single unit of work.
func (l *Ledger) commitTrade(ctx context.Context, r *TradeResult) error {
	uow, err := l.store.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	err = uow.AppendTrade(r.Trade)
	if err == nil {
		err = uow.SaveHolding(r.Holding)
	}
	if err == nil {
		err = uow.AppendCashMovement(r.Movement)
	}
	if err == nil && r.Realized != nil {
		err = uow.AppendRealizedGain(*r.Realized)
	}
	if err != nil {
		uow.Rollback()
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if err := uow.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

// CashBalance returns the current cash balance.
func (l *Ledger) CashBalance(ctx context.Context) (Money, error) {
	balance, err := l.store.CashBalance(ctx)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return l.money(balance), nil
}

// Movements returns the full cash log, oldest first.
func (l *Ledger) Movements(ctx context.Context) ([]CashMovement, error) {
	movements, err := l.store.CashMovements(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return movements, nil
}

// Transactions returns the full trade history, oldest first.
func (l *Ledger) Transactions(ctx context.Context) ([]Trade, error) {
	trades, err := l.store.Trades(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return trades, nil
}

// StockTransactions returns the trade history of one ticker, oldest first.
// Fails with ErrUnknownHolding when the ticker was never held; a fully sold
// position (quantity zero) remains queryable.
func (l *Ledger) StockTransactions(ctx context.Context, ticker string) ([]Trade, error) {
	holding, err := l.store.Holding(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if err := ValidateHistoryQuery(ticker, holding); err != nil {
		return nil, err
	}
	trades, err := l.store.TradesFor(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return trades, nil
}

// HoldingView is a holding enriched with market data and per-ticker deltas.
type HoldingView struct {
	Holding
	CurrentPrice Money
	MarketValue  Money
	Unrealized   Money
	Realized     Money
	// PriceUnavailable is true when the price source can no longer price
	// the ticker; such positions contribute zero to the value totals.
	PriceUnavailable bool
}

// Holdings returns every holding ever traded with current market values and
// realized/unrealized deltas, sorted by ticker.
func (l *Ledger) Holdings(ctx context.Context) ([]HoldingView, error) {
	holdings, err := l.store.Holdings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	gains, err := l.store.RealizedGains(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	realized := make(map[string]Money, len(holdings))
	for _, g := range gains {
		realized[g.Ticker] = realized[g.Ticker].Add(g.Delta)
	}

	views := make([]HoldingView, 0, len(holdings))
	for _, h := range holdings {
		view := HoldingView{Holding: h, Realized: l.money(realized[h.Ticker])}
		if h.Quantity.IsPositive() {
			price, err := l.prices.CurrentPrice(ctx, h.Ticker)
			if err != nil {
				view.PriceUnavailable = true
			} else {
				view.CurrentPrice = price
				view.MarketValue = price.Mul(h.Quantity)
				view.Unrealized = UnrealizedDelta(h, price)
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// TotalValue returns cash plus the market value of all priceable holdings.
func (l *Ledger) TotalValue(ctx context.Context) (Money, error) {
	cash, err := l.CashBalance(ctx)
	if err != nil {
		return Money{}, err
	}
	views, err := l.Holdings(ctx)
	if err != nil {
		return Money{}, err
	}
	total := cash
	for _, v := range views {
		total = total.Add(v.MarketValue)
	}
	return total, nil
}

// RealizedGains returns all realized gain events, oldest first.
func (l *Ledger) RealizedGains(ctx context.Context) ([]RealizedGain, error) {
	gains, err := l.store.RealizedGains(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return gains, nil
}

// RealizedDeltaTotal returns the sum of all realized gain events.
func (l *Ledger) RealizedDeltaTotal(ctx context.Context) (Money, error) {
	gains, err := l.store.RealizedGains(ctx)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	var total Money
	for _, g := range gains {
		total = total.Add(g.Delta)
	}
	return l.money(total), nil
}

// UnrealizedDeltaTotal returns the sum of unrealized deltas over priceable
// holdings. Unpriceable tickers contribute zero (see HoldingView).
func (l *Ledger) UnrealizedDeltaTotal(ctx context.Context) (Money, error) {
	views, err := l.Holdings(ctx)
	if err != nil {
		return Money{}, err
	}
	var total Money
	for _, v := range views {
		total = total.Add(v.Unrealized)
	}
	return l.money(total), nil
}

// Summary is the headline state of the portfolio.
type Summary struct {
	TotalValue  Money
	CashBalance Money
	Unrealized  Money
	Realized    Money
}

// Summarize computes the headline figures in one pass over the holdings.
func (l *Ledger) Summarize(ctx context.Context) (*Summary, error) {
	cash, err := l.CashBalance(ctx)
	if err != nil {
		return nil, err
	}
	views, err := l.Holdings(ctx)
	if err != nil {
		return nil, err
	}
	s := &Summary{CashBalance: cash, TotalValue: cash}
	for _, v := range views {
		s.TotalValue = s.TotalValue.Add(v.MarketValue)
		s.Unrealized = s.Unrealized.Add(v.Unrealized)
		s.Realized = s.Realized.Add(v.Realized)
	}
	s.Unrealized = l.money(s.Unrealized)
	s.Realized = l.money(s.Realized)
	s.TotalValue = l.money(s.TotalValue)
	return s, nil
}
