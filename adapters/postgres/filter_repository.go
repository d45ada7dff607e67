package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"goattrition/domain/core"
	"goattrition/domain/filter"
	"goattrition/ports"
)

// filterRepository implements the FilterRepository interface
type filterRepository struct {
	db *sqlx.DB
}

// NewFilterRepository creates a new saved-filter repository
func NewFilterRepository(db *sqlx.DB) ports.FilterRepository {
	return &filterRepository{db: db}
}

// EnsureSchema creates the saved_filters table when it does not exist
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	schema := `CREATE TABLE IF NOT EXISTS saved_filters (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		spec JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure saved_filters schema: %w", err)
	}
	return nil
}

// Save upserts a saved filter by id
func (r *filterRepository) Save(ctx context.Context, f *filter.SavedFilter) error {
	specJSON, err := json.Marshal(f.Spec)
	if err != nil {
		return fmt.Errorf("failed to marshal filter spec: %w", err)
	}

	query := `INSERT INTO saved_filters (id, name, spec, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (id) DO UPDATE SET name = $2, spec = $3, updated_at = $5`

	_, err = r.db.ExecContext(ctx, query, f.ID, f.Name, specJSON, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save filter: %w", err)
	}
	return nil
}

// GetByID retrieves a saved filter by its ID
func (r *filterRepository) GetByID(ctx context.Context, id core.FilterID) (*filter.SavedFilter, error) {
	query := `SELECT id, name, spec, created_at, updated_at FROM saved_filters WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id), id.String())
}

// GetByName retrieves a saved filter by its unique name
func (r *filterRepository) GetByName(ctx context.Context, name string) (*filter.SavedFilter, error) {
	query := `SELECT id, name, spec, created_at, updated_at FROM saved_filters WHERE name = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, name), name)
}

// List returns all saved filters, most recently updated first
func (r *filterRepository) List(ctx context.Context) ([]*filter.SavedFilter, error) {
	query := `SELECT id, name, spec, created_at, updated_at FROM saved_filters ORDER BY updated_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list filters: %w", err)
	}
	defer rows.Close()

	var filters []*filter.SavedFilter
	for rows.Next() {
		f, err := scanFilter(rows.Scan)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read filters: %w", err)
	}
	return filters, nil
}

// Delete removes a saved filter by its ID
func (r *filterRepository) Delete(ctx context.Context, id core.FilterID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM saved_filters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete filter: %w", err)
	}
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return core.NewNotFoundError("saved filter", id.String())
	}
	return nil
}

func (r *filterRepository) scanOne(row *sql.Row, key string) (*filter.SavedFilter, error) {
	f, err := scanFilter(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, core.NewNotFoundError("saved filter", key)
		}
		return nil, err
	}
	return f, nil
}

func scanFilter(scan func(dest ...interface{}) error) (*filter.SavedFilter, error) {
	var f filter.SavedFilter
	var specJSON []byte

	if err := scan(&f.ID, &f.Name, &specJSON, &f.CreatedAt, &f.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan filter: %w", err)
	}
	if err := json.Unmarshal(specJSON, &f.Spec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal filter spec: %w", err)
	}
	return &f, nil
}
