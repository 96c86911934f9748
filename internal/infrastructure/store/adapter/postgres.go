package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"snapgram/internal/infrastructure/store/port"
)

// PgStore is an adapter that satisfies the port.Store interface on top of a
// single Postgres jsonb documents table.
type PgStore struct {
	pool *pgxpool.Pool
}

// NewPgStore wraps an existing pgx pool and ensures the schema exists.
func NewPgStore(ctx context.Context, pool *pgxpool.Pool) (*PgStore, error) {
	s := &PgStore{pool: pool}
	if err := s.migrate(ctx); err != nil {
		return nil, fmt.Errorf("store: migrate: %w", err)
	}
	return s, nil
}

// Ensure interface compliance at compile time
var _ port.Store = (*PgStore)(nil)

func (s *PgStore) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			collection  TEXT        NOT NULL,
			id          TEXT        NOT NULL,
			data        JSONB       NOT NULL DEFAULT '{}'::jsonb,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (collection, id)
		)`,
		// Conversation dedup: at most one conversation per canonical
		// participants string. Duplicate inserts surface as ErrConflict and
		// the repository falls back to fetching the winner.
		`CREATE UNIQUE INDEX IF NOT EXISTS documents_conversation_participants_key
			ON documents ((data->>'participants'))
			WHERE collection = 'conversations'`,
		`CREATE INDEX IF NOT EXISTS documents_collection_idx ON documents (collection)`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *PgStore) List(ctx context.Context, collection string, q port.Query) ([]port.Document, int, error) {
	if s == nil || s.pool == nil {
		return nil, 0, errors.New("store: nil pool")
	}

	var sb strings.Builder
	args := []any{collection}
	sb.WriteString(`SELECT id, data, created_at, updated_at, count(*) OVER () AS total
		FROM documents WHERE collection = $1`)

	for _, f := range q.Filters {
		args = append(args, f.Value)
		switch f.Op {
		case port.OpContains:
			fmt.Fprintf(&sb, " AND position($%d in coalesce(data->>'%s', '')) > 0", len(args), f.Field)
		default:
			fmt.Fprintf(&sb, " AND data->>'%s' = $%d", f.Field, len(args))
		}
	}

	if q.Order != nil {
		dir := "ASC"
		if q.Order.Desc {
			dir = "DESC"
		}
		fmt.Fprintf(&sb, " ORDER BY data->>'%s' %s", q.Order.Field, dir)
	}
	if q.Limit > 0 {
		args = append(args, q.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}

	rows, err := s.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("store: list %s: %w", collection, err)
	}
	defer rows.Close()

	var (
		docs  []port.Document
		total int
	)
	for rows.Next() {
		var (
			doc port.Document
			raw []byte
		)
		if err := rows.Scan(&doc.ID, &raw, &doc.CreatedAt, &doc.UpdatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("store: scan %s: %w", collection, err)
		}
		if err := json.Unmarshal(raw, &doc.Data); err != nil {
			return nil, 0, fmt.Errorf("store: decode %s/%s: %w", collection, doc.ID, err)
		}
		docs = append(docs, doc)
	}
	if rows.Err() != nil {
		return nil, 0, rows.Err()
	}
	return docs, total, nil
}

func (s *PgStore) Get(ctx context.Context, collection, id string) (port.Document, error) {
	if s == nil || s.pool == nil {
		return port.Document{}, errors.New("store: nil pool")
	}
	var (
		doc = port.Document{ID: id}
		raw []byte
	)
	err := s.pool.QueryRow(ctx,
		`SELECT data, created_at, updated_at FROM documents WHERE collection = $1 AND id = $2`,
		collection, id,
	).Scan(&raw, &doc.CreatedAt, &doc.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return port.Document{}, port.ErrNotFound
	}
	if err != nil {
		return port.Document{}, fmt.Errorf("store: get %s/%s: %w", collection, id, err)
	}
	if err := json.Unmarshal(raw, &doc.Data); err != nil {
		return port.Document{}, fmt.Errorf("store: decode %s/%s: %w", collection, id, err)
	}
	return doc, nil
}

func (s *PgStore) Create(ctx context.Context, collection string, doc port.Document) (port.Document, error) {
	if s == nil || s.pool == nil {
		return port.Document{}, errors.New("store: nil pool")
	}
	raw, err := json.Marshal(doc.Data)
	if err != nil {
		return port.Document{}, fmt.Errorf("store: encode %s: %w", collection, err)
	}
	err = s.pool.QueryRow(ctx,
		`INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)
		 RETURNING created_at, updated_at`,
		collection, doc.ID, raw,
	).Scan(&doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return port.Document{}, port.ErrConflict
		}
		return port.Document{}, fmt.Errorf("store: create %s/%s: %w", collection, doc.ID, err)
	}
	return doc, nil
}

func (s *PgStore) Update(ctx context.Context, collection, id string, data map[string]any) (port.Document, error) {
	if s == nil || s.pool == nil {
		return port.Document{}, errors.New("store: nil pool")
	}
	patch, err := json.Marshal(data)
	if err != nil {
		return port.Document{}, fmt.Errorf("store: encode patch %s/%s: %w", collection, id, err)
	}
	var (
		doc = port.Document{ID: id}
		raw []byte
	)
	err = s.pool.QueryRow(ctx,
		`UPDATE documents SET data = data || $3::jsonb, updated_at = now()
		 WHERE collection = $1 AND id = $2
		 RETURNING data, created_at, updated_at`,
		collection, id, patch,
	).Scan(&raw, &doc.CreatedAt, &doc.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return port.Document{}, port.ErrNotFound
	}
	if err != nil {
		return port.Document{}, fmt.Errorf("store: update %s/%s: %w", collection, id, err)
	}
	if err := json.Unmarshal(raw, &doc.Data); err != nil {
		return port.Document{}, fmt.Errorf("store: decode %s/%s: %w", collection, id, err)
	}
	return doc, nil
}

func (s *PgStore) Delete(ctx context.Context, collection, id string) error {
	if s == nil || s.pool == nil {
		return errors.New("store: nil pool")
	}
	ct, err := s.pool.Exec(ctx,
		`DELETE FROM documents WHERE collection = $1 AND id = $2`, collection, id)
	if err != nil {
		return fmt.Errorf("store: delete %s/%s: %w", collection, id, err)
	}
	if ct.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

func (s *PgStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PgStore) Close() error {
	s.pool.Close()
	return nil
}
