package stockfolio

import (
	"context"
	"errors"
	"testing"
)

// newTestLedger builds a ledger over the in-memory store and a static price
// source preloaded with a few tickers.
func newTestLedger() (*Ledger, *MemoryStore, *StaticPriceSource) {
	store := NewMemoryStore()
	prices := NewStaticPriceSource()
	prices.Set("ACME", M(50, "USD"))
	prices.Set("GLOBEX", M(20, "USD"))
	return NewLedger(store, prices, "USD"), store, prices
}

func deposit(t *testing.T, l *Ledger, amount float64) {
	t.Helper()
	if _, err := l.Deposit(context.Background(), M(amount, "USD"), Date{}); err != nil {
		t.Fatalf("deposit %v: %v", amount, err)
	}
}

func TestDepositWithdrawBalance(t *testing.T) {
	ctx := context.Background()
	l, _, _ := newTestLedger()

	balance, err := l.Deposit(ctx, M(1000, "USD"), Date{})
	if err != nil {
		t.Fatal(err)
	}
	if !balance.Equal(M(1000, "USD")) {
		t.Errorf("balance = %s, want $1,000.00", balance)
	}

	balance, err = l.Withdraw(ctx, M(250.50, "USD"), Date{})
	if err != nil {
		t.Fatal(err)
	}
	if !balance.Equal(M(749.50, "USD")) {
		t.Errorf("balance = %s, want $749.50", balance)
	}

	// the signed sum of the whole log reproduces the balance
	movements, err := l.Movements(ctx)
	if err != nil {
		t.Fatal(err)
	}
	var sum Money
	for _, m := range movements {
		sum = sum.Add(m.Signed())
	}
	got, err := l.CashBalance(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !sum.Equal(got) {
		t.Errorf("signed sum %s != balance %s", sum, got)
	}
}

func TestDepositRejectsNonPositive(t *testing.T) {
	ctx := context.Background()
	l, _, _ := newTestLedger()

	for _, amount := range []float64{0, -10} {
		if _, err := l.Deposit(ctx, M(amount, "USD"), Date{}); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("deposit %v: got %v, want ErrInvalidAmount", amount, err)
		}
	}
}

func TestWithdrawOverdraw(t *testing.T) {
	ctx := context.Background()
	l, _, _ := newTestLedger()
	deposit(t, l, 100)

	_, err := l.Withdraw(ctx, M(100.01, "USD"), Date{})
	if !errors.Is(err, ErrInsufficientCash) {
		t.Fatalf("got %v, want ErrInsufficientCash", err)
	}

	// the rejected withdrawal must leave no trace
	movements, _ := l.Movements(ctx)
	if len(movements) != 1 {
		t.Errorf("movement count = %d, want 1", len(movements))
	}
	balance, _ := l.CashBalance(ctx)
	if !balance.Equal(M(100, "USD")) {
		t.Errorf("balance = %s, want $100.00", balance)
	}
}

func TestBuyUnknownTicker(t *testing.T) {
	ctx := context.Background()
	l, _, _ := newTestLedger()
	deposit(t, l, 1000)

	_, err := l.Buy(ctx, "NOPE", Q(1), Date{}, Money{})
	if !errors.Is(err, ErrUnknownTicker) {
		t.Errorf("got %v, want ErrUnknownTicker", err)
	}
	// even with an explicit price, a typo must not open a position
	_, err = l.Buy(ctx, "NOPE", Q(1), Date{}, M(10, "USD"))
	if !errors.Is(err, ErrUnknownTicker) {
		t.Errorf("explicit price: got %v, want ErrUnknownTicker", err)
	}
}

func TestBuyInsufficientCashLeavesNoRecords(t *testing.T) {
	ctx := context.Background()
	l, _, _ := newTestLedger()
	deposit(t, l, 100)

	_, err := l.Buy(ctx, "ACME", Q(3), Date{}, Money{}) // 3 * $50 = $150
	if !errors.Is(err, ErrInsufficientCash) {
		t.Fatalf("got %v, want ErrInsufficientCash", err)
	}

	trades, _ := l.Transactions(ctx)
	if len(trades) != 0 {
		t.Errorf("trade count = %d, want 0", len(trades))
	}
	movements, _ := l.Movements(ctx)
	if len(movements) != 1 {
		t.Errorf("movement count = %d, want 1 (the deposit)", len(movements))
	}
	views, _ := l.Holdings(ctx)
	if len(views) != 0 {
		t.Errorf("holding count = %d, want 0", len(views))
	}
}

func TestOversellLeavesNoRecords(t *testing.T) {
	ctx := context.Background()
	l, _, _ := newTestLedger()
	deposit(t, l, 1000)
	if _, err := l.Buy(ctx, "ACME", Q(10), Date{}, Money{}); err != nil {
		t.Fatal(err)
	}

	_, err := l.Sell(ctx, "ACME", Q(11), Date{}, Money{})
	if !errors.Is(err, ErrInsufficientShares) {
		t.Fatalf("got %v, want ErrInsufficientShares", err)
	}

	trades, _ := l.Transactions(ctx)
	if len(trades) != 1 {
		t.Errorf("trade count = %d, want 1", len(trades))
	}
	gains, _ := l.RealizedGains(ctx)
	if len(gains) != 0 {
		t.Errorf("gain count = %d, want 0", len(gains))
	}
	views, _ := l.Holdings(ctx)
	if len(views) != 1 || views[0].Quantity != Q(10) {
		t.Errorf("holding should still be 10 shares, got %+v", views)
	}
}

func TestSellNeverHeldTicker(t *testing.T) {
	ctx := context.Background()
	l, _, _ := newTestLedger()
	deposit(t, l, 1000)

	_, err := l.Sell(ctx, "GLOBEX", Q(1), Date{}, Money{})
	if !errors.Is(err, ErrInsufficientShares) {
		t.Errorf("got %v, want ErrInsufficientShares", err)
	}
}

// The canonical sequence: two buys at different prices build a weighted
// average, a partial sale realizes against it without changing it.
func TestTradeScenario(t *testing.T) {
	ctx := context.Background()
	l, _, _ := newTestLedger()
	deposit(t, l, 2000)

	if _, err := l.Buy(ctx, "ACME", Q(10), Date{}, M(50, "USD")); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Buy(ctx, "ACME", Q(10), Date{}, M(70, "USD")); err != nil {
		t.Fatal(err)
	}

	result, err := l.Sell(ctx, "ACME", Q(5), Date{}, M(80, "USD"))
	if err != nil {
		t.Fatal(err)
	}

	if result.Realized == nil {
		t.Fatal("sell should produce a realized gain event")
	}
	if !result.Realized.Delta.Equal(M(100, "USD")) {
		t.Errorf("realized delta = %s, want +$100.00", result.Realized.Delta)
	}
	if !result.Realized.AvgCost.Equal(M(60, "USD")) {
		t.Errorf("avg cost at sale = %s, want $60.00", result.Realized.AvgCost)
	}
	if result.Holding.Quantity != Q(15) {
		t.Errorf("remaining shares = %d, want 15", result.Holding.Quantity)
	}
	if !result.Holding.AverageCost.Equal(M(60, "USD")) {
		t.Errorf("avg cost after sale = %s, want $60.00", result.Holding.AverageCost)
	}

	// cash: 2000 - 500 - 700 + 400 = 1200
	balance, err := l.CashBalance(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !balance.Equal(M(1200, "USD")) {
		t.Errorf("balance = %s, want $1,200.00", balance)
	}

	// one movement per cash change: deposit, 2 debits, 1 credit
	movements, _ := l.Movements(ctx)
	if len(movements) != 4 {
		t.Errorf("movement count = %d, want 4", len(movements))
	}
	last := movements[len(movements)-1]
	if last.Kind != TradeCredit || !last.Amount.Equal(M(400, "USD")) {
		t.Errorf("last movement = %+v, want SELL credit of $400.00", last)
	}
}

func TestStockTransactions(t *testing.T) {
	ctx := context.Background()
	l, _, _ := newTestLedger()
	deposit(t, l, 1000)

	_, err := l.StockTransactions(ctx, "ACME")
	if !errors.Is(err, ErrUnknownHolding) {
		t.Fatalf("never traded: got %v, want ErrUnknownHolding", err)
	}

	if _, err := l.Buy(ctx, "ACME", Q(10), Date{}, Money{}); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Sell(ctx, "ACME", Q(10), Date{}, Money{}); err != nil {
		t.Fatal(err)
	}

	// fully sold positions keep their history queryable
	trades, err := l.StockTransactions(ctx, "ACME")
	if err != nil {
		t.Fatal(err)
	}
	if len(trades) != 2 {
		t.Errorf("trade count = %d, want 2", len(trades))
	}

	_, err = l.StockTransactions(ctx, "GLOBEX")
	if !errors.Is(err, ErrUnknownHolding) {
		t.Errorf("GLOBEX was never traded: got %v, want ErrUnknownHolding", err)
	}
}

func TestBackdatedTradeUsesDailyClose(t *testing.T) {
	ctx := context.Background()
	l, _, prices := newTestLedger()
	deposit(t, l, 1000)

	// closes friday 2025-06-06 and monday 2025-06-09
	prices.Series["ACME"] = []SeriesPoint{
		{Date: MustParseDate("2025-06-06"), Close: M(40, "USD"), Volume: 100},
		{Date: MustParseDate("2025-06-09"), Close: M(44, "USD"), Volume: 100},
	}

	// sunday resolves to friday's close
	result, err := l.Buy(ctx, "ACME", Q(2), MustParseDate("2025-06-08"), Money{})
	if err != nil {
		t.Fatal(err)
	}
	if !result.Trade.Price.Equal(M(40, "USD")) {
		t.Errorf("price = %s, want friday's close $40.00", result.Trade.Price)
	}

	// before the whole series there is no close to use
	_, err = l.Buy(ctx, "ACME", Q(1), MustParseDate("2025-06-01"), Money{})
	if !errors.Is(err, ErrPriceUnavailable) {
		t.Errorf("got %v, want ErrPriceUnavailable", err)
	}
}

func TestTodayTradeUsesCurrentPrice(t *testing.T) {
	ctx := context.Background()
	l, _, _ := newTestLedger()
	deposit(t, l, 1000)

	result, err := l.Buy(ctx, "ACME", Q(2), Today(), Money{})
	if err != nil {
		t.Fatal(err)
	}
	if !result.Trade.Price.Equal(M(50, "USD")) {
		t.Errorf("price = %s, want the live quote $50.00", result.Trade.Price)
	}
}

func TestHoldingsViewAndTotals(t *testing.T) {
	ctx := context.Background()
	l, _, prices := newTestLedger()
	deposit(t, l, 2000)

	if _, err := l.Buy(ctx, "ACME", Q(10), Date{}, M(60, "USD")); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Buy(ctx, "GLOBEX", Q(5), Date{}, M(20, "USD")); err != nil {
		t.Fatal(err)
	}
	// GLOBEX can no longer be priced
	delete(prices.Prices, "GLOBEX")

	views, err := l.Holdings(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(views) != 2 {
		t.Fatalf("holding count = %d, want 2", len(views))
	}

	// sorted by ticker: ACME then GLOBEX
	acme, globex := views[0], views[1]
	if acme.Ticker != "ACME" || globex.Ticker != "GLOBEX" {
		t.Fatalf("unexpected order: %s, %s", acme.Ticker, globex.Ticker)
	}
	if !acme.MarketValue.Equal(M(500, "USD")) {
		t.Errorf("ACME market value = %s, want $500.00", acme.MarketValue)
	}
	if !acme.Unrealized.Equal(M(-100, "USD")) {
		t.Errorf("ACME unrealized = %s, want -$100.00", acme.Unrealized)
	}
	if !globex.PriceUnavailable {
		t.Error("GLOBEX should be flagged unpriceable")
	}
	if !globex.MarketValue.IsZero() || !globex.Unrealized.IsZero() {
		t.Error("unpriceable position must contribute zero")
	}

	// cash 2000 - 600 - 100 = 1300; total = 1300 + 500 (ACME only)
	total, err := l.TotalValue(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !total.Equal(M(1800, "USD")) {
		t.Errorf("total value = %s, want $1,800.00", total)
	}

	unrealized, err := l.UnrealizedDeltaTotal(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !unrealized.Equal(M(-100, "USD")) {
		t.Errorf("unrealized total = %s, want -$100.00", unrealized)
	}
}

func TestRealizedDeltaTotal(t *testing.T) {
	ctx := context.Background()
	l, _, _ := newTestLedger()
	deposit(t, l, 2000)

	if _, err := l.Buy(ctx, "ACME", Q(10), Date{}, M(60, "USD")); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Sell(ctx, "ACME", Q(5), Date{}, M(80, "USD")); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Sell(ctx, "ACME", Q(5), Date{}, M(50, "USD")); err != nil {
		t.Fatal(err)
	}

	total, err := l.RealizedDeltaTotal(ctx)
	if err != nil {
		t.Fatal(err)
	}
	// (80-60)*5 + (50-60)*5 = 100 - 50 = 50
	if !total.Equal(M(50, "USD")) {
		t.Errorf("realized total = %s, want +$50.00", total)
	}

	gains, err := l.RealizedGains(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(gains) != 2 {
		t.Errorf("gain count = %d, want 2", len(gains))
	}
	var sum Money
	for _, g := range gains {
		sum = sum.Add(g.Delta)
	}
	if !sum.Equal(total) {
		t.Errorf("sum of events %s != total %s", sum, total)
	}
}

func TestSummarize(t *testing.T) {
	ctx := context.Background()
	l, _, _ := newTestLedger()
	deposit(t, l, 2000)

	if _, err := l.Buy(ctx, "ACME", Q(10), Date{}, M(40, "USD")); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Sell(ctx, "ACME", Q(5), Date{}, M(50, "USD")); err != nil {
		t.Fatal(err)
	}

	s, err := l.Summarize(ctx)
	if err != nil {
		t.Fatal(err)
	}
	// cash 2000 - 400 + 250 = 1850; 5 shares at live $50 = 250
	if !s.CashBalance.Equal(M(1850, "USD")) {
		t.Errorf("cash = %s, want $1,850.00", s.CashBalance)
	}
	if !s.TotalValue.Equal(M(2100, "USD")) {
		t.Errorf("total = %s, want $2,100.00", s.TotalValue)
	}
	if !s.Realized.Equal(M(50, "USD")) {
		t.Errorf("realized = %s, want +$50.00", s.Realized)
	}
	// 5 shares, avg 40, live 50
	if !s.Unrealized.Equal(M(50, "USD")) {
		t.Errorf("unrealized = %s, want +$50.00", s.Unrealized)
	}
}
