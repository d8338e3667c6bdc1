package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"jobtrack-engine/internal/domain"
)

// InsertIfNew inserts p unless the user already has a row with its
// source_id. Relies on the partial unique index on (user_id, source_id).
func (d *DB) InsertIfNew(ctx context.Context, p domain.JobPosting) (added bool, err error) {
	tech, _ := json.Marshal(p.TechStack)
	if p.TechStack == nil {
		tech = []byte("[]")
	}
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err = d.Pool.ExecContext(ctx, `
INSERT OR IGNORE INTO postings (user_id, company, title, location, url, description, tech_stack, source, source_id, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		p.UserID, p.Company, p.Title, p.Location, p.URL, p.Description,
		string(tech), p.Source, p.SourceID, createdAt.Format(time.RFC3339),
	)
	if err != nil {
		return false, fmt.Errorf("insert posting: %w", err)
	}

	// SQLite doesn't report rows affected reliably with IGNORE across
	// drivers; ask changes() instead.
	var changes int
	if e := d.Pool.QueryRowContext(ctx, `SELECT changes();`).Scan(&changes); e == nil {
		return changes > 0, nil
	}
	return true, nil
}

// FetchCandidates returns the user's postings created within the last
// daysLookback days, oldest first.
func (d *DB) FetchCandidates(ctx context.Context, userID string, daysLookback int) ([]domain.JobPosting, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -daysLookback).Format(time.RFC3339)
	return d.queryPostings(ctx, `
SELECT id, user_id, company, title, location, url, description, tech_stack, source, source_id, created_at
FROM postings
WHERE user_id = ? AND created_at >= ?
ORDER BY created_at, id;`, userID, cutoff)
}

// FetchAll returns every posting the user has stored, oldest first.
func (d *DB) FetchAll(ctx context.Context, userID string) ([]domain.JobPosting, error) {
	return d.queryPostings(ctx, `
SELECT id, user_id, company, title, location, url, description, tech_stack, source, source_id, created_at
FROM postings
WHERE user_id = ?
ORDER BY created_at, id;`, userID)
}

// ListUsers returns the distinct user IDs present in the store.
func (d *DB) ListUsers(ctx context.Context) ([]string, error) {
	rows, err := d.Pool.QueryContext(ctx, `SELECT DISTINCT user_id FROM postings ORDER BY user_id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (d *DB) queryPostings(ctx context.Context, query string, args ...any) ([]domain.JobPosting, error) {
	rows, err := d.Pool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.JobPosting
	for rows.Next() {
		var p domain.JobPosting
		var techJSON, createdStr string
		if err := rows.Scan(&p.ID, &p.UserID, &p.Company, &p.Title, &p.Location,
			&p.URL, &p.Description, &techJSON, &p.Source, &p.SourceID, &createdStr); err != nil {
			return nil, err
		}
		_ = json.Unmarshal([]byte(techJSON), &p.TechStack)
		p.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
		out = append(out, p)
	}
	return out, rows.Err()
}
