// ABOUTME: ProgressRepository: progress entries and the user profile singleton.
// ABOUTME: Measurements go through EncodeMeasurements/DecodeMeasurements only.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/lift/internal/errs"
	"github.com/harperreed/lift/internal/models"
)

// ProfileID is the id of the only row in the users table.
const ProfileID = "user_default"

// ProgressRepository maps progress entries and the profile to rows.
type ProgressRepository struct {
	db *DB
}

// NewProgressRepository returns a repository over db.
func NewProgressRepository(db *DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// SaveEntry inserts or replaces a progress entry by id.
func (r *ProgressRepository) SaveEntry(ctx context.Context, e models.ProgressEntry) error {
	measurements, err := EncodeMeasurements(e.Measurements, e.Extra)
	if err != nil {
		return errs.Write("save progress entry "+e.ID, err)
	}

	_, err = r.db.db.ExecContext(ctx, `
		INSERT INTO progress (id, date, timestamp, weight, measurements_json, photo_uri)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			date = excluded.date,
			timestamp = excluded.timestamp,
			weight = excluded.weight,
			measurements_json = excluded.measurements_json,
			photo_uri = excluded.photo_uri
	`, e.ID, e.Date, e.Timestamp, string(e.Weight), measurements, e.PhotoURI)
	if err != nil {
		return errs.Write("save progress entry "+e.ID, err)
	}
	return nil
}

// GetEntry returns one progress entry, or errs.ErrNotFound.
func (r *ProgressRepository) GetEntry(ctx context.Context, id string) (*models.ProgressEntry, error) {
	row := r.db.db.QueryRowContext(ctx, `
		SELECT id, date, timestamp, weight, measurements_json, photo_uri
		FROM progress WHERE id = ?
	`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NotFound("progress entry", id)
	}
	if err != nil {
		return nil, errs.Read("get progress entry "+id, err)
	}
	return e, nil
}

// ListEntries returns every progress entry, most recent first.
func (r *ProgressRepository) ListEntries(ctx context.Context) ([]models.ProgressEntry, error) {
	rows, err := r.db.db.QueryContext(ctx, `
		SELECT id, date, timestamp, weight, measurements_json, photo_uri
		FROM progress
		ORDER BY timestamp DESC, id
	`)
	if err != nil {
		return nil, errs.Read("list progress entries", err)
	}

	entries := []models.ProgressEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			rows.Close()
			return nil, errs.Read("list progress entries", err)
		}
		entries = append(entries, *e)
	}
	if err := closeRows(rows); err != nil {
		return nil, errs.Read("list progress entries", err)
	}
	return entries, nil
}

// DeleteEntry removes a progress entry. Deleting an unknown id is a no-op.
func (r *ProgressRepository) DeleteEntry(ctx context.Context, id string) error {
	if _, err := r.db.db.ExecContext(ctx, "DELETE FROM progress WHERE id = ?", id); err != nil {
		return errs.Write("delete progress entry "+id, err)
	}
	return nil
}

// GetUserProfile returns the profile, or nil when none was saved.
func (r *ProgressRepository) GetUserProfile(ctx context.Context) (*models.UserProfile, error) {
	var age, height, weight string
	err := r.db.db.QueryRowContext(ctx,
		"SELECT age, height, initial_weight FROM users LIMIT 1",
	).Scan(&age, &height, &weight)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Read("get profile", err)
	}
	return &models.UserProfile{
		Age:           models.NumericString(age),
		Height:        models.NumericString(height),
		InitialWeight: models.NumericString(weight),
	}, nil
}

// SaveUserProfile replaces the profile. Every existing row is deleted first
// so the table never holds more than one.
func (r *ProgressRepository) SaveUserProfile(ctx context.Context, p models.UserProfile) error {
	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM users"); err != nil {
			return fmt.Errorf("clear users: %w", err)
		}
		_, err := tx.ExecContext(ctx,
			"INSERT INTO users (id, age, height, initial_weight) VALUES (?, ?, ?, ?)",
			ProfileID, string(p.Age), string(p.Height), string(p.InitialWeight),
		)
		if err != nil {
			return fmt.Errorf("insert profile: %w", err)
		}
		return nil
	})
	return errs.Write("save profile", err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*models.ProgressEntry, error) {
	var e models.ProgressEntry
	var weight, measurements string
	if err := row.Scan(&e.ID, &e.Date, &e.Timestamp, &weight, &measurements, &e.PhotoURI); err != nil {
		return nil, err
	}
	e.Weight = models.NumericString(weight)

	m, extra, err := DecodeMeasurements(measurements)
	if err != nil {
		return nil, fmt.Errorf("progress entry %s: %w", e.ID, err)
	}
	e.Measurements = m
	e.Extra = extra
	return &e, nil
}
