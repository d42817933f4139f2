package postgres

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// migration is one versioned schema step. Steps never change once released.
type migration struct {
	Version string
	Name    string
	SQL     string
}

const createMigrationsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version    TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

var migrations = []migration{
	{
		Version: "20260101000001",
		Name:    "create_accounts",
		SQL: `
CREATE TABLE IF NOT EXISTS accounts (
    id            TEXT PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    display_name  TEXT NOT NULL DEFAULT '',
    phone         TEXT NOT NULL DEFAULT '',
    business_name TEXT NOT NULL DEFAULT '',
    role          TEXT NOT NULL DEFAULT 'trader' CHECK (role IN ('trader', 'admin')),
    coin_balance  BIGINT NOT NULL DEFAULT 0 CHECK (coin_balance >= 0),
    suspended     BOOLEAN NOT NULL DEFAULT FALSE,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`,
	},
	{
		Version: "20260101000002",
		Name:    "create_coin_transactions",
		SQL: `
CREATE TABLE IF NOT EXISTS coin_transactions (
    id      UUID PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES accounts (id) ON DELETE CASCADE,
    amount  BIGINT NOT NULL CHECK (amount <> 0),
    type    TEXT NOT NULL CHECK (type IN ('purchase', 'spend', 'credit', 'admin_credit')),
    ref     TEXT NOT NULL,
    date    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    CHECK ((type = 'spend') = (amount < 0))
);

CREATE INDEX IF NOT EXISTS idx_coin_transactions_user_date ON coin_transactions (user_id, date DESC);
CREATE UNIQUE INDEX IF NOT EXISTS idx_coin_transactions_purchase_ref ON coin_transactions (user_id, ref) WHERE type = 'purchase';

CREATE OR REPLACE FUNCTION coin_transactions_immutable() RETURNS trigger AS $$
BEGIN
    RAISE EXCEPTION 'coin_transactions rows are append-only';
END;
$$ LANGUAGE plpgsql;

DROP TRIGGER IF EXISTS trg_coin_transactions_immutable ON coin_transactions;
CREATE TRIGGER trg_coin_transactions_immutable
    BEFORE UPDATE ON coin_transactions
    FOR EACH ROW EXECUTE FUNCTION coin_transactions_immutable();`,
	},
	{
		Version: "20260101000003",
		Name:    "create_audit_logs",
		SQL: `
CREATE TABLE IF NOT EXISTS audit_logs (
    id                UUID PRIMARY KEY,
    admin_id          TEXT,
    action            TEXT NOT NULL,
    target_account_id TEXT NOT NULL DEFAULT '',
    details           JSONB NOT NULL DEFAULT '{}',
    ip_address        TEXT NOT NULL DEFAULT '',
    timestamp         TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_audit_logs_timestamp ON audit_logs (timestamp DESC);
CREATE INDEX IF NOT EXISTS idx_audit_logs_target ON audit_logs (target_account_id, timestamp DESC);`,
	},
	{
		Version: "20260101000004",
		Name:    "create_bookkeeping_records",
		SQL: `
CREATE TABLE IF NOT EXISTS invoices (
    id            UUID PRIMARY KEY,
    account_id    TEXT NOT NULL REFERENCES accounts (id) ON DELETE CASCADE,
    number        TEXT NOT NULL,
    customer_name TEXT NOT NULL,
    description   TEXT NOT NULL DEFAULT '',
    amount        NUMERIC(14, 2) NOT NULL CHECK (amount >= 0),
    status        TEXT NOT NULL DEFAULT 'pending',
    due_date      TIMESTAMPTZ,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (account_id, number)
);

CREATE TABLE IF NOT EXISTS inventory_items (
    id            UUID PRIMARY KEY,
    account_id    TEXT NOT NULL REFERENCES accounts (id) ON DELETE CASCADE,
    name          TEXT NOT NULL,
    quantity      BIGINT NOT NULL CHECK (quantity >= 0),
    unit          TEXT NOT NULL DEFAULT '',
    buying_price  NUMERIC(14, 2) NOT NULL DEFAULT 0,
    selling_price NUMERIC(14, 2) NOT NULL DEFAULT 0,
    threshold     BIGINT NOT NULL DEFAULT 0,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS contacts (
    id          UUID PRIMARY KEY,
    account_id  TEXT NOT NULL REFERENCES accounts (id) ON DELETE CASCADE,
    type        TEXT NOT NULL CHECK (type IN ('debtor', 'creditor')),
    name        TEXT NOT NULL,
    phone       TEXT NOT NULL DEFAULT '',
    amount      NUMERIC(14, 2) NOT NULL DEFAULT 0,
    description TEXT NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS cashflows (
    id          UUID PRIMARY KEY,
    account_id  TEXT NOT NULL REFERENCES accounts (id) ON DELETE CASCADE,
    type        TEXT NOT NULL CHECK (type IN ('receipt', 'payment')),
    party_name  TEXT NOT NULL,
    amount      NUMERIC(14, 2) NOT NULL CHECK (amount > 0),
    method      TEXT NOT NULL DEFAULT '',
    category    TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_cashflows_account_created ON cashflows (account_id, created_at DESC);

CREATE TABLE IF NOT EXISTS feedback (
    id         UUID PRIMARY KEY,
    account_id TEXT NOT NULL REFERENCES accounts (id) ON DELETE CASCADE,
    rating     INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
    comment    TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`,
	},
}

// Migrate applies every pending migration, each in its own transaction.
func Migrate(ctx context.Context, pool Pool, log zerolog.Logger) error {
	if _, err := pool.Exec(ctx, createMigrationsTable); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	for _, m := range migrations {
		var applied bool
		err := pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, m.Version,
		).Scan(&applied)
		if err != nil {
			return fmt.Errorf("check migration %s: %w", m.Version, err)
		}
		if applied {
			continue
		}

		if err := applyMigration(ctx, pool, m); err != nil {
			return err
		}
		log.Info().Str("version", m.Version).Str("name", m.Name).Msg("migration applied")
	}
	return nil
}

func applyMigration(ctx context.Context, pool Pool, m migration) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin migration %s: %w", m.Version, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, m.SQL); err != nil {
		return fmt.Errorf("apply migration %s (%s): %w", m.Version, m.Name, err)
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`, m.Version, m.Name,
	); err != nil {
		return fmt.Errorf("record migration %s: %w", m.Version, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit migration %s: %w", m.Version, err)
	}
	return nil
}
