package hitpoints

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Cameron637/ddb-backend-developer-challenge/internal/domain/hitpoints"
	dnderr "github.com/Cameron637/ddb-backend-developer-challenge/internal/errors"
	"github.com/Cameron637/ddb-backend-developer-challenge/internal/repositories"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrate applies the embedded schema migrations to the database at dsn.
//
// Precondition: dsn must be a postgres:// URL.
// Postcondition: the hit_points table exists, or a non-nil error is returned.
func Migrate(dsn string) error {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("opening embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}

var _ Repository = (*PostgresRepository)(nil)

// PostgresRepository stores records in the hit_points table. Update holds a
// row lock for the whole load-mutate-store cycle.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a PostgresRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	if db == nil {
		panic("postgres pool cannot be nil")
	}
	return &PostgresRepository{db: db}
}

// Get retrieves a record by ID
func (r *PostgresRepository) Get(ctx context.Context, id string) (*hitpoints.Record, error) {
	if err := repositories.RequireID(id); err != nil {
		return nil, err
	}
	return scanRecord(r.db.QueryRow(ctx, `
		SELECT id, total, current_hp, temporary_hp, defenses
		FROM hit_points WHERE id = $1`,
		id,
	), id)
}

// Put creates or overwrites a record
func (r *PostgresRepository) Put(ctx context.Context, record *hitpoints.Record) error {
	if record == nil {
		return dnderr.InvalidArgument("hit point record cannot be nil")
	}
	if err := repositories.RequireID(record.ID); err != nil {
		return err
	}

	defenses, err := marshalDefenses(record.Defenses)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO hit_points (id, total, current_hp, temporary_hp, defenses)
		VALUES ($1, $2, $3, $4, $5::jsonb)
		ON CONFLICT (id) DO UPDATE SET
			total        = EXCLUDED.total,
			current_hp   = EXCLUDED.current_hp,
			temporary_hp = EXCLUDED.temporary_hp,
			defenses     = EXCLUDED.defenses,
			updated_at   = NOW()`,
		record.ID, record.Total, record.Current, record.Temporary, string(defenses),
	)
	if err != nil {
		return fmt.Errorf("upserting hit point record: %w", err)
	}
	return nil
}

// Update loads the row with SELECT ... FOR UPDATE, applies mutate and writes
// the result in the same transaction.
func (r *PostgresRepository) Update(ctx context.Context, id string, mutate MutateFunc) (*hitpoints.Record, error) {
	if err := repositories.RequireID(id); err != nil {
		return nil, err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	current, err := scanRecord(tx.QueryRow(ctx, `
		SELECT id, total, current_hp, temporary_hp, defenses
		FROM hit_points WHERE id = $1 FOR UPDATE`,
		id,
	), id)
	if err != nil {
		return nil, err
	}

	next, err := mutate(current)
	if err != nil {
		return nil, err
	}
	if err := checkMutation(id, next); err != nil {
		return nil, err
	}

	defenses, err := marshalDefenses(next.Defenses)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		UPDATE hit_points
		SET total = $2, current_hp = $3, temporary_hp = $4, defenses = $5::jsonb, updated_at = NOW()
		WHERE id = $1`,
		id, next.Total, next.Current, next.Temporary, string(defenses),
	)
	if err != nil {
		return nil, fmt.Errorf("updating hit point record: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing hit point update: %w", err)
	}
	return next, nil
}

// Delete removes a record
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if err := repositories.RequireID(id); err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM hit_points WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting hit point record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repositories.NewRecordNotFoundError(id)
	}
	return nil
}

// Ping checks the database connection
func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func scanRecord(row pgx.Row, id string) (*hitpoints.Record, error) {
	var (
		data     Data
		defenses []byte
	)
	err := row.Scan(&data.ID, &data.Total, &data.Current, &data.Temporary, &defenses)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.NewRecordNotFoundError(id)
		}
		return nil, fmt.Errorf("querying hit point record: %w", err)
	}

	if err := json.Unmarshal(defenses, &data.Defenses); err != nil {
		return nil, fmt.Errorf("decoding defenses: %w", err)
	}
	return fromData(&data)
}
