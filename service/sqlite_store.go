package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/AnTengye/contratos/model"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps each contract aggregate as a JSON document next to the
// columns used for filtering.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	slog.Info("contract store initialized", "driver", "sqlite", "path", path)
	return s, nil
}

func (s *SQLiteStore) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS contracts (
			id TEXT PRIMARY KEY,
			property_id TEXT,
			status TEXT,
			data TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			deleted_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_contracts_created_at ON contracts(created_at)`,
	}
	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) Save(ctx context.Context, agg *model.ContractAggregate) error {
	now := time.Now().UTC()
	if agg.ID == "" {
		agg.ID = uuid.NewString()
	}
	if agg.CreatedAt.IsZero() {
		agg.CreatedAt = now
	}
	agg.UpdatedAt = now

	data, err := json.Marshal(agg)
	if err != nil {
		return fmt.Errorf("encode contract %s: %w", agg.ID, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO contracts (id, property_id, status, data, created_at, updated_at, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			property_id = excluded.property_id,
			status = excluded.status,
			data = excluded.data,
			updated_at = excluded.updated_at,
			deleted_at = excluded.deleted_at`,
		agg.ID, agg.PropertyID, string(agg.Status), string(data),
		formatTime(agg.CreatedAt), formatTime(agg.UpdatedAt), nullTime(agg.DeletedAt))
	if err != nil {
		return fmt.Errorf("save contract %s: %w", agg.ID, err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (*model.ContractAggregate, error) {
	return s.get(ctx, s.db, id)
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *SQLiteStore) get(ctx context.Context, q queryer, id string) (*model.ContractAggregate, error) {
	var data string
	err := q.QueryRowContext(ctx, `SELECT data FROM contracts WHERE id = ? AND deleted_at IS NULL`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get contract %s: %w", id, err)
	}
	return decodeAggregate(data)
}

func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]*model.ContractAggregate, error) {
	query := `SELECT data FROM contracts WHERE deleted_at IS NULL`
	var args []any
	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, string(filter.Status))
	}
	if filter.PropertyID != "" {
		query += ` AND property_id = ?`
		args = append(args, filter.PropertyID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()

	result := []*model.ContractAggregate{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("list contracts: %w", err)
		}
		agg, err := decodeAggregate(data)
		if err != nil {
			return nil, err
		}
		if filter.matches(agg) {
			result = append(result, agg)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	return result, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.update(ctx, id, func(agg *model.ContractAggregate) {
		now := time.Now().UTC()
		agg.Status = model.StatusTerminated
		agg.DeletedAt = &now
	})
	return err
}

func (s *SQLiteStore) ApplyEdits(ctx context.Context, id string, edits model.ContractEdits) (*model.ContractAggregate, error) {
	return s.update(ctx, id, func(agg *model.ContractAggregate) {
		edits.Apply(&agg.Contract)
	})
}

func (s *SQLiteStore) RecordDocument(ctx context.Context, id string, doc model.GeneratedDocument) error {
	_, err := s.update(ctx, id, func(agg *model.ContractAggregate) {
		agg.Document = &doc
	})
	return err
}

// update loads, mutates and writes back one contract inside a transaction
func (s *SQLiteStore) update(ctx context.Context, id string, mutate func(*model.ContractAggregate)) (*model.ContractAggregate, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin update %s: %w", id, err)
	}
	defer tx.Rollback()

	agg, err := s.get(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	mutate(agg)
	agg.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(agg)
	if err != nil {
		return nil, fmt.Errorf("encode contract %s: %w", id, err)
	}
	_, err = tx.ExecContext(ctx,
		`UPDATE contracts SET status = ?, data = ?, updated_at = ?, deleted_at = ? WHERE id = ?`,
		string(agg.Status), string(data), formatTime(agg.UpdatedAt), nullTime(agg.DeletedAt), id)
	if err != nil {
		return nil, fmt.Errorf("update contract %s: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit update %s: %w", id, err)
	}
	return agg, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func decodeAggregate(data string) (*model.ContractAggregate, error) {
	var agg model.ContractAggregate
	if err := json.NewDecoder(strings.NewReader(data)).Decode(&agg); err != nil {
		return nil, fmt.Errorf("decode contract: %w", err)
	}
	return &agg, nil
}

// timeLayout is fixed width so created_at sorts as text
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func nullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTime(*t), Valid: true}
}
