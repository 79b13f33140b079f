package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jbury/stockfolio"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestEmptyStore(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	balance, err := s.CashBalance(ctx)
	require.NoError(t, err)
	require.True(t, balance.IsZero())

	h, err := s.Holding(ctx, "ACME")
	require.NoError(t, err)
	require.Nil(t, h)
}

func TestRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	day := stockfolio.MustParseDate("2025-06-02")

	movement := stockfolio.CashMovement{
		ID:      stockfolio.NewID(),
		Kind:    stockfolio.Deposit,
		Amount:  stockfolio.M(1000.50, "USD"),
		Balance: stockfolio.M(1000.50, "USD"),
		Date:    day,
	}
	trade := stockfolio.Trade{
		ID:         stockfolio.NewID(),
		Ticker:     "ACME",
		Side:       stockfolio.Buy,
		Quantity:   stockfolio.Q(10),
		Price:      stockfolio.M(50.25, "USD"),
		Date:       day,
		CashEffect: stockfolio.M(-502.50, "USD"),
	}
	holding := stockfolio.Holding{
		Ticker:      "ACME",
		Quantity:    stockfolio.Q(10),
		AverageCost: stockfolio.M(50.25, "USD"),
	}
	gain := stockfolio.RealizedGain{
		ID:        stockfolio.NewID(),
		TradeID:   trade.ID,
		Ticker:    "ACME",
		Quantity:  stockfolio.Q(5),
		SalePrice: stockfolio.M(60, "USD"),
		AvgCost:   stockfolio.M(50.25, "USD"),
		Delta:     stockfolio.M(48.75, "USD"),
		Date:      day,
	}

	uow, err := s.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, uow.AppendCashMovement(movement))
	require.NoError(t, uow.AppendTrade(trade))
	require.NoError(t, uow.SaveHolding(holding))
	require.NoError(t, uow.AppendRealizedGain(gain))
	require.NoError(t, uow.Commit())

	balance, err := s.CashBalance(ctx)
	require.NoError(t, err)
	require.True(t, balance.Equal(stockfolio.M(1000.50, "USD")), "got %s", balance)

	movements, err := s.CashMovements(ctx)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	require.Equal(t, movement.ID, movements[0].ID)
	require.Equal(t, stockfolio.Deposit, movements[0].Kind)
	require.True(t, movements[0].Amount.Equal(movement.Amount))
	require.Equal(t, day, movements[0].Date)

	trades, err := s.Trades(ctx)
	require.NoError(t, err)
	require.Len(t, trades, 1)
	require.Equal(t, trade.ID, trades[0].ID)
	require.Equal(t, stockfolio.Q(10), trades[0].Quantity)
	require.True(t, trades[0].Price.Equal(trade.Price))
	require.True(t, trades[0].CashEffect.Equal(trade.CashEffect))

	got, err := s.Holding(ctx, "ACME")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, stockfolio.Q(10), got.Quantity)
	require.True(t, got.AverageCost.Equal(holding.AverageCost))

	gains, err := s.RealizedGains(ctx)
	require.NoError(t, err)
	require.Len(t, gains, 1)
	require.Equal(t, trade.ID, gains[0].TradeID)
	require.True(t, gains[0].Delta.Equal(gain.Delta))
}

func TestRollbackDiscardsEverything(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	day := stockfolio.MustParseDate("2025-06-02")

	uow, err := s.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, uow.AppendCashMovement(stockfolio.CashMovement{
		ID: stockfolio.NewID(), Kind: stockfolio.Deposit,
		Amount: stockfolio.M(100, "USD"), Balance: stockfolio.M(100, "USD"), Date: day,
	}))
	require.NoError(t, uow.AppendTrade(stockfolio.Trade{
		ID: stockfolio.NewID(), Ticker: "ACME", Side: stockfolio.Buy,
		Quantity: stockfolio.Q(1), Price: stockfolio.M(10, "USD"),
		CashEffect: stockfolio.M(-10, "USD"), Date: day,
	}))
	require.NoError(t, uow.SaveHolding(stockfolio.Holding{
		Ticker: "ACME", Quantity: stockfolio.Q(1), AverageCost: stockfolio.M(10, "USD"),
	}))
	require.NoError(t, uow.Rollback())

	balance, err := s.CashBalance(ctx)
	require.NoError(t, err)
	require.True(t, balance.IsZero())

	trades, err := s.Trades(ctx)
	require.NoError(t, err)
	require.Empty(t, trades)

	h, err := s.Holding(ctx, "ACME")
	require.NoError(t, err)
	require.Nil(t, h)
}

func TestSaveHoldingUpserts(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	write := func(q int64, cost float64) {
		uow, err := s.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, uow.SaveHolding(stockfolio.Holding{
			Ticker: "ACME", Quantity: stockfolio.Q(q), AverageCost: stockfolio.M(cost, "USD"),
		}))
		require.NoError(t, uow.Commit())
	}
	write(10, 50)
	write(20, 60)

	holdings, err := s.Holdings(ctx)
	require.NoError(t, err)
	require.Len(t, holdings, 1)
	require.Equal(t, stockfolio.Q(20), holdings[0].Quantity)
	require.True(t, holdings[0].AverageCost.Equal(stockfolio.M(60, "USD")))
}

func TestTradesForFiltersByTicker(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	day := stockfolio.MustParseDate("2025-06-02")

	uow, err := s.Begin(ctx)
	require.NoError(t, err)
	for _, ticker := range []string{"ACME", "GLOBEX", "ACME"} {
		require.NoError(t, uow.AppendTrade(stockfolio.Trade{
			ID: stockfolio.NewID(), Ticker: ticker, Side: stockfolio.Buy,
			Quantity: stockfolio.Q(1), Price: stockfolio.M(10, "USD"),
			CashEffect: stockfolio.M(-10, "USD"), Date: day,
		}))
	}
	require.NoError(t, uow.Commit())

	acme, err := s.TradesFor(ctx, "ACME")
	require.NoError(t, err)
	require.Len(t, acme, 2)

	all, err := s.Trades(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
}
