// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS prices (
	symbol TEXT NOT NULL,
	day DATE NOT NULL,
	close REAL NOT NULL,
	PRIMARY KEY (symbol, day)
);

CREATE TABLE IF NOT EXISTS analyses (
	id TEXT PRIMARY KEY,
	run_id TEXT NOT NULL,
	symbol TEXT NOT NULL,
	time DATETIME NOT NULL,
	signal TEXT NOT NULL,
	strength INTEGER NOT NULL,
	level INTEGER NOT NULL,
	level_change INTEGER NOT NULL,
	price REAL NOT NULL,
	result TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_analyses_symbol_time ON analyses(symbol, time);
CREATE INDEX IF NOT EXISTS idx_analyses_run ON analyses(run_id);
`
