// Package postgres stores archived snapshots and enqueues archive jobs in
// PostgreSQL. Queries are built with goqu over a database/sql handle that
// wraps a pgx pool, so goose and river can share the same connections.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/url"
	"popdash/pkg/storage"
	"strconv"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

const dialect = "postgres"

// Options configure the connection pool.
type Options struct {
	Username string
	Password string
	Host     string
	Port     int
	Database string
	// SslMode is passed through as the sslmode parameter, e.g. "disable".
	SslMode string
	// ApplicationName shows up in pg_stat_activity. Defaults to "popdash".
	ApplicationName string

	// ConnMaxLifetime and ConnMaxIdleTime map to the pgx pool limits of the
	// same name; zero keeps the pgx defaults.
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	// MaxOpenConnections caps the pool size.
	MaxOpenConnections int
	// MaxIdleConnections is kept open even when idle.
	MaxIdleConnections int
}

// ConnString renders o as a postgres:// URL with credentials escaped.
func (o Options) ConnString() string {
	query := url.Values{}
	if o.SslMode != "" {
		query.Set("sslmode", o.SslMode)
	}
	appName := o.ApplicationName
	if appName == "" {
		appName = "popdash"
	}
	query.Set("application_name", appName)

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(o.Username, o.Password),
		Host:     net.JoinHostPort(o.Host, strconv.Itoa(o.Port)),
		Path:     "/" + o.Database,
		RawQuery: query.Encode(),
	}

	return u.String()
}

// DB is the part of database/sql shared by *sql.DB and *sql.Tx.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Builder is the part of goqu shared by *goqu.Database and *goqu.TxDatabase.
type Builder interface {
	From(table ...any) *goqu.SelectDataset
	Insert(table any) *goqu.InsertDataset
	Update(table any) *goqu.UpdateDataset
}

var (
	_ storage.Storage   = (*PgSQL)(nil)
	_ storage.TxStorage = (*PgSQL)(nil)
)

// PgSQL is both the pooled handle returned by New and the transactional
// handle returned by Begin; DB holds a *sql.DB or a *sql.Tx accordingly.
type PgSQL struct {
	DB      DB
	Builder Builder
	// Pool is nil on transactional handles.
	Pool *pgxpool.Pool
}

func (p *PgSQL) tx() (*sql.Tx, bool) {
	tx, ok := p.DB.(*sql.Tx)

	return tx, ok
}

func (p *PgSQL) inTx() bool {
	_, ok := p.tx()

	return ok
}

// Ping checks that the database answers a trivial query.
func (p *PgSQL) Ping(ctx context.Context) error {
	var one int
	if err := p.DB.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("could not reach postgres: %w", err)
	}

	return nil
}

// Close releases the sql wrapper and then the pool underneath it.
func (p *PgSQL) Close() error {
	var err error
	if db, ok := p.DB.(*sql.DB); ok {
		err = db.Close()
	}
	if p.Pool != nil {
		p.Pool.Close()
	}

	return err //nolint: wrapcheck
}

// Commit returns storage.ErrNotInTx on a pooled handle.
func (p *PgSQL) Commit() error {
	tx, ok := p.tx()
	if !ok {
		return storage.ErrNotInTx
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// Rollback returns storage.ErrNotInTx on a pooled handle.
func (p *PgSQL) Rollback() error {
	tx, ok := p.tx()
	if !ok {
		return storage.ErrNotInTx
	}
	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

// Begin opens a transaction. Transactions do not nest: calling Begin on a
// transactional handle returns storage.ErrAlreadyInTx.
func (p *PgSQL) Begin(ctx context.Context) (storage.TxStorage, error) {
	if p.inTx() {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := p.DB.(*sql.DB).BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &PgSQL{
		DB:      tx,
		Builder: goqu.NewTx(dialect, tx),
	}, nil
}

// WithTx runs cb in a transaction that is committed when cb succeeds and
// rolled back otherwise. On a transactional handle cb joins the surrounding
// transaction, which the caller still owns.
func (p *PgSQL) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	if p.inTx() {
		return cb(p)
	}

	tx, err := p.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, rbErr)
		}

		return err
	}

	return tx.Commit()
}

// New connects a pgx pool described by options and fails when the server
// cannot be reached.
func New(ctx context.Context, options Options) (*PgSQL, error) {
	cfg, err := pgxpool.ParseConfig(options.ConnString())
	if err != nil {
		return nil, fmt.Errorf("could not parse pgxpool config: %w", err)
	}
	if options.MaxOpenConnections > 0 {
		cfg.MaxConns = int32(options.MaxOpenConnections) //nolint: gosec
	}
	if options.MaxIdleConnections > 0 {
		cfg.MinConns = int32(min(options.MaxIdleConnections, int(cfg.MaxConns))) //nolint: gosec
	}
	if options.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = options.ConnMaxLifetime
	}
	if options.ConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = options.ConnMaxIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx pool: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	pg := &PgSQL{
		DB:      sqlDB,
		Builder: goqu.Dialect(dialect).DB(sqlDB),
		Pool:    pool,
	}
	if err := pg.Ping(ctx); err != nil {
		_ = pg.Close()

		return nil, err
	}

	return pg, nil
}
