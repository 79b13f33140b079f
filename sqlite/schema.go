package sqlite

// Monetary columns are TEXT holding exact decimal strings; REAL would lose
// cents. Record ids are ULIDs, so ORDER BY id is insertion order.
const schema = `
CREATE TABLE IF NOT EXISTS cash_movements (
	id       TEXT PRIMARY KEY,
	kind     TEXT NOT NULL CHECK (kind IN ('DEP','WIT','BUY','SELL')),
	amount   TEXT NOT NULL,
	balance  TEXT NOT NULL,
	currency TEXT NOT NULL,
	day      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS trades (
	id          TEXT PRIMARY KEY,
	ticker      TEXT NOT NULL,
	side        TEXT NOT NULL CHECK (side IN ('BUY','SELL')),
	quantity    INTEGER NOT NULL,
	price       TEXT NOT NULL,
	cash_effect TEXT NOT NULL,
	currency    TEXT NOT NULL,
	day         TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_ticker ON trades(ticker);

CREATE TABLE IF NOT EXISTS holdings (
	ticker   TEXT PRIMARY KEY,
	quantity INTEGER NOT NULL,
	avg_cost TEXT NOT NULL,
	currency TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS realized_gains (
	id         TEXT PRIMARY KEY,
	trade_id   TEXT NOT NULL REFERENCES trades(id),
	ticker     TEXT NOT NULL,
	quantity   INTEGER NOT NULL,
	sale_price TEXT NOT NULL,
	avg_cost   TEXT NOT NULL,
	delta      TEXT NOT NULL,
	currency   TEXT NOT NULL,
	day        TEXT NOT NULL
);
`
