package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS scenarios (
    id                   TEXT PRIMARY KEY,
    name                 TEXT NOT NULL UNIQUE COLLATE NOCASE,
    income               REAL NOT NULL DEFAULT 0,
    savings_goal         REAL NOT NULL DEFAULT 0,
    growth_rate          REAL NOT NULL DEFAULT 0,
    inflation_rate       REAL NOT NULL DEFAULT 0,
    currency             TEXT NOT NULL DEFAULT '',
    created_at           TEXT NOT NULL,
    updated_at           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS scenario_amounts (
    scenario_id          TEXT NOT NULL REFERENCES scenarios(id) ON DELETE CASCADE,
    category             TEXT NOT NULL,
    amount               REAL NOT NULL,
    PRIMARY KEY (scenario_id, category)
);

CREATE INDEX IF NOT EXISTS idx_scenarios_updated ON scenarios(updated_at);
`

// migrations bring databases created by older versions up to schemaSQL.
// Each may fail with "duplicate column" on an up-to-date database.
var migrations = []string{
	`ALTER TABLE scenarios ADD COLUMN currency TEXT NOT NULL DEFAULT ''`,
}
