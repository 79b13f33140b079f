package stockfolio

import (
	"context"
	"errors"
	"testing"
)

func TestClosePriceOn(t *testing.T) {
	prices := NewStaticPriceSource()
	prices.Set("ACME", M(50, "USD"))
	prices.Series["ACME"] = []SeriesPoint{
		{Date: MustParseDate("2025-06-02"), Close: M(40, "USD")},
		{Date: MustParseDate("2025-06-03"), Close: M(41, "USD")},
		{Date: MustParseDate("2025-06-06"), Close: M(44, "USD")},
	}
	ctx := context.Background()

	tests := []struct {
		name    string
		on      string
		want    Money
		wantErr error
	}{
		{name: "exact day", on: "2025-06-03", want: M(41, "USD")},
		{name: "market shut, previous close", on: "2025-06-05", want: M(41, "USD")},
		{name: "after the series, latest close", on: "2025-06-10", want: M(44, "USD")},
		{name: "before the series", on: "2025-06-01", wantErr: ErrPriceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClosePriceOn(ctx, prices, "ACME", MustParseDate(tt.on))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("close = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestStaticPriceSourceUnknownTicker(t *testing.T) {
	prices := NewStaticPriceSource()
	ctx := context.Background()

	if _, err := prices.CurrentPrice(ctx, "NOPE"); !errors.Is(err, ErrUnknownTicker) {
		t.Errorf("CurrentPrice: got %v, want ErrUnknownTicker", err)
	}
	if _, err := prices.YearSeries(ctx, "NOPE"); !errors.Is(err, ErrUnknownTicker) {
		t.Errorf("YearSeries: got %v, want ErrUnknownTicker", err)
	}
}
