package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sandevgo/factbot/internal/core"
)

const factColumns = `id, movie_id, fact_text, fact_key, fact_category, created_at`

type FactsRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewFactsRepo(db *sql.DB) *FactsRepo {
	return &FactsRepo{db: db, now: time.Now}
}

func (r *FactsRepo) GetFactsByIDs(ctx context.Context, ids []string) ([]core.Fact, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM facts WHERE id IN (%s)`, factColumns, placeholders(len(ids)))
	rows, err := r.db.QueryContext(ctx, query, toArgs(ids)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query facts by ids: %w", err)
	}
	return scanFacts(rows)
}

func (r *FactsRepo) GetFactsForMovieExcluding(
	ctx context.Context,
	movieID string,
	excludeIDs []string,
	limit int,
	order core.SortOrder,
) ([]core.Fact, error) {
	direction := "DESC"
	if order == core.SortAsc {
		direction = "ASC"
	}

	var sb strings.Builder
	args := make([]any, 0, len(excludeIDs)+2)

	sb.WriteString(`SELECT ` + factColumns + ` FROM facts WHERE movie_id = ?`)
	args = append(args, movieID)

	// NOT IN () would be a syntax error, so the clause is omitted when empty
	if len(excludeIDs) > 0 {
		sb.WriteString(` AND id NOT IN (` + placeholders(len(excludeIDs)) + `)`)
		args = append(args, toArgs(excludeIDs)...)
	}

	sb.WriteString(fmt.Sprintf(` ORDER BY created_at %s, rowid %s LIMIT ?`, direction, direction))
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidate facts: %w", err)
	}
	return scanFacts(rows)
}

func (r *FactsRepo) GetFactByID(ctx context.Context, id string) (core.Fact, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+factColumns+` FROM facts WHERE id = ?`, id)

	f, err := scanFact(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Fact{}, core.ErrFactNotFound
	}
	if err != nil {
		return core.Fact{}, fmt.Errorf("failed to get fact: %w", err)
	}
	return f, nil
}

func (r *FactsRepo) GetFactsForMovie(ctx context.Context, movieID string, limit int) ([]core.Fact, error) {
	query := `SELECT ` + factColumns + ` FROM facts WHERE movie_id = ? ORDER BY created_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, movieID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query movie facts: %w", err)
	}
	return scanFacts(rows)
}

// CreateFact inserts a fact, or returns the existing row for (movieID, key).
// The no-op update makes RETURNING yield the winner's row when a concurrent
// insert got there first.
func (r *FactsRepo) CreateFact(ctx context.Context, movieID, text, key string, category core.Category) (core.Fact, error) {
	query := `
		INSERT INTO facts (` + factColumns + `)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (movie_id, fact_key) DO UPDATE SET fact_key = excluded.fact_key
		RETURNING ` + factColumns

	row := r.db.QueryRowContext(ctx, query,
		uuid.NewString(),
		movieID,
		text,
		nullString(key),
		nullString(string(category)),
		r.now().UTC().UnixNano(),
	)

	f, err := scanFact(row)
	if err != nil {
		return core.Fact{}, fmt.Errorf("failed to create fact: %w", err)
	}
	return f, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFact(s scanner) (core.Fact, error) {
	var (
		f         core.Fact
		key, cat  sql.NullString
		createdAt int64
	)
	if err := s.Scan(&f.ID, &f.MovieID, &f.Text, &key, &cat, &createdAt); err != nil {
		return core.Fact{}, err
	}
	f.Key = key.String
	f.Category = core.Category(cat.String)
	f.CreatedAt = time.Unix(0, createdAt).UTC()
	return f, nil
}

func scanFacts(rows *sql.Rows) ([]core.Fact, error) {
	defer rows.Close()

	var facts []core.Fact
	for rows.Next() {
		f, err := scanFact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fact: %w", err)
		}
		facts = append(facts, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return facts, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func toArgs(ids []string) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
