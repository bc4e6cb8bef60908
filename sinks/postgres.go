package sinks

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/JakeFAU/unwrapprint"
)

var validTableName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// PostgresConfig controls the connection pool and insert behavior of a
// Postgres printer.
type PostgresConfig struct {
	DSN             string
	Table           string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration

	// InsertTimeout bounds each insert; zero means 5s.
	InsertTimeout time.Duration
	// Logger receives insert failures; nil discards them.
	Logger *zap.Logger
}

type execCloser interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Close()
}

// PostgresPrinter persists each diagnostic line as one table row.
type PostgresPrinter struct {
	pool    execCloser
	table   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewPostgresPrinter connects a pool from cfg.DSN and wraps it in a
// printer.
func NewPostgresPrinter(ctx context.Context, cfg PostgresConfig) (*PostgresPrinter, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("postgres dsn is required")
	}
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return newPostgresPrinter(pool, cfg)
}

// NewPostgresPrinterWithPool constructs a printer from an existing pool
// (primarily for testing).
func NewPostgresPrinterWithPool(pool execCloser, cfg PostgresConfig) (*PostgresPrinter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is required")
	}
	return newPostgresPrinter(pool, cfg)
}

func newPostgresPrinter(pool execCloser, cfg PostgresConfig) (*PostgresPrinter, error) {
	table := cfg.Table
	if table == "" {
		table = "unwrap_diagnostics"
	}
	if !validTableName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	timeout := cfg.InsertTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostgresPrinter{
		pool:    pool,
		table:   table,
		timeout: timeout,
		logger:  logger,
	}, nil
}

// EnsureTable creates the diagnostics table when it does not exist yet.
func (p *PostgresPrinter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
	id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	emitted_at TIMESTAMPTZ NOT NULL,
	line TEXT NOT NULL
)`, p.table)
	if _, err := p.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("create diagnostics table: %w", err)
	}
	return nil
}

// Printer returns the function to install. An insert that fails is logged
// and dropped; a printer has no error path to hand it back through.
func (p *PostgresPrinter) Printer() unwrapprint.Printer {
	query := fmt.Sprintf(`INSERT INTO %s (emitted_at, line) VALUES ($1, $2)`, p.table)
	return func(text string) {
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		defer cancel()
		if _, err := p.pool.Exec(ctx, query, time.Now().UTC(), text); err != nil {
			p.logger.Warn("insert diagnostic failed", zap.Error(err))
		}
	}
}

// Close releases the underlying pool resources.
func (p *PostgresPrinter) Close() {
	if p == nil || p.pool == nil {
		return
	}
	p.pool.Close()
}
