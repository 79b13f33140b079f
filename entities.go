package stockfolio

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// MovementKind identifies why cash moved.
type MovementKind string

const (
	Deposit     MovementKind = "DEP"  // cash added by the user
	Withdrawal  MovementKind = "WIT"  // cash removed by the user
	TradeDebit  MovementKind = "BUY"  // cash spent on a purchase
	TradeCredit MovementKind = "SELL" // cash received from a sale
)

// Sign returns +1 for kinds that increase the cash balance and -1 for kinds
// that decrease it.
func (k MovementKind) Sign() int {
	switch k {
	case Deposit, TradeCredit:
		return +1
	case Withdrawal, TradeDebit:
		return -1
	default:
		return 0
	}
}

// Side identifies the direction of a trade.
type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// CashMovement is one append-only entry in the cash log. Amount is always
// positive; Kind carries the direction. Balance is the cash balance after
// this movement was applied.
type CashMovement struct {
	ID      string
	Kind    MovementKind
	Amount  Money
	Balance Money
	Date    Date
}

// Signed returns the amount with the sign implied by the kind, so that
// summing Signed over the whole log reproduces the cash balance.
func (m CashMovement) Signed() Money {
	if m.Kind.Sign() < 0 {
		return m.Amount.Neg()
	}
	return m.Amount
}

// Trade is one append-only entry in the trade history.
type Trade struct {
	ID       string
	Ticker   string
	Side     Side
	Quantity Quantity
	Price    Money // per share
	Date     Date
	// CashEffect is the signed impact on the cash balance: negative for
	// buys, positive for sells.
	CashEffect Money
}

// Holding is the per-ticker aggregate: how many shares are held and at what
// volume-weighted average cost. It is the only mutable record; the row
// survives with Quantity zero once a position is fully closed.
type Holding struct {
	Ticker      string
	Quantity    Quantity
	AverageCost Money // meaningful only while Quantity > 0
}

// RealizedGain is the profit or loss locked in by one sale, computed against
// the average cost at the time of sale. Append-only; exactly one per Sell
// trade.
type RealizedGain struct {
	ID        string
	TradeID   string
	Ticker    string
	Quantity  Quantity
	SalePrice Money
	// AvgCost is the average cost per share at the moment of the sale.
	AvgCost Money
	// Delta is (SalePrice - AvgCost) * Quantity.
	Delta Money
	Date  Date
}

var (
	idMu   sync.Mutex
	idMono io.Reader
)

func init() {
	// Seed a PRNG from crypto/rand so ULID entropy is unpredictable.
	// ulid.Monotonic keeps ids generated within the same millisecond
	// lexicographically increasing, which keeps append-only scans ordered.
	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	idMono = ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
}

// NewID returns a ULID string (time-sortable record identifier).
func NewID() string {
	idMu.Lock()
	defer idMu.Unlock()

	id, err := ulid.New(ulid.Timestamp(time.Now().UTC()), idMono)
	if err != nil {
		panic(err)
	}
	return id.String()
}
