package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"energy-package-roi/internal/obs"
)

const schema = `
CREATE TABLE IF NOT EXISTS scenarios (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL DEFAULT '',
	config     JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Postgres stores scenarios as JSONB rows.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres connects to databaseURL and ensures the schema exists.
func NewPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}
	p := &Postgres{pool: pool}
	if err := p.InitSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return p, nil
}

func (p *Postgres) InitSchema(ctx context.Context) (err error) {
	defer obs.Time(ctx, "store.init_schema")(&err)
	if _, err = p.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (p *Postgres) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

func (p *Postgres) Save(ctx context.Context, s *Scenario) (err error) {
	defer obs.Time(ctx, "store.save")(&err)

	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	cfgJSON, err := json.Marshal(s.Config)
	if err != nil {
		return fmt.Errorf("failed to marshal scenario config: %w", err)
	}

	query := `
		INSERT INTO scenarios (id, name, config)
		VALUES ($1, $2, $3)
		ON CONFLICT (id)
		DO UPDATE SET
			name = EXCLUDED.name,
			config = EXCLUDED.config,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`
	err = p.pool.QueryRow(ctx, query, s.ID, s.Name, cfgJSON).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save scenario: %w", err)
	}
	return nil
}

func (p *Postgres) Get(ctx context.Context, id uuid.UUID) (_ *Scenario, err error) {
	defer obs.Time(ctx, "store.get", ErrNotFound)(&err)

	row := p.pool.QueryRow(ctx, `SELECT id, name, config, created_at, updated_at FROM scenarios WHERE id = $1`, id)
	s, err := scanScenario(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load scenario: %w", err)
	}
	return s, nil
}

func (p *Postgres) List(ctx context.Context) (_ []Scenario, err error) {
	defer obs.Time(ctx, "store.list")(&err)

	rows, err := p.pool.Query(ctx, `SELECT id, name, config, created_at, updated_at FROM scenarios ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	defer rows.Close()

	out := []Scenario{}
	for rows.Next() {
		s, err := scanScenario(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

func (p *Postgres) Delete(ctx context.Context, id uuid.UUID) (err error) {
	defer obs.Time(ctx, "store.delete", ErrNotFound)(&err)

	tag, err := p.pool.Exec(ctx, `DELETE FROM scenarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete scenario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanScenario(row pgx.Row) (*Scenario, error) {
	var (
		s       Scenario
		cfgJSON []byte
	)
	if err := row.Scan(&s.ID, &s.Name, &cfgJSON, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(cfgJSON, &s.Config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenario config: %w", err)
	}
	return &s, nil
}
