// Package repo contains all database access logic for the Bhandara API.
// It is the record store the query engine is built against: insert,
// fetch-by-id, and fetch-all-active. No business logic lives here — only SQL
// and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/bhandara-web/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// campColumns is the shared SELECT column list, kept in one place so every
// query scans rows identically.
const campColumns = `id, title, description, address, latitude, longitude,
		date, start_time, end_time, organizer_name, organizer_phone,
		image_url, source, is_active, is_recurring, created_at`

// CampRepo defines the persistence operations for camps.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the query engine to be unit-tested with a mock.
type CampRepo interface {
	// Create inserts a new camp and returns the persisted record (with
	// DB-generated id and created_at populated).
	Create(ctx context.Context, camp domain.Camp) (domain.Camp, error)

	// GetByID retrieves a single camp by its UUID primary key.
	// Returns domain.ErrNotFound if no camp with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Camp, error)

	// ListActive returns every camp whose is_active flag is true, in
	// creation order. All further filtering happens in memory in the
	// service layer.
	ListActive(ctx context.Context) ([]domain.Camp, error)
}

// pgCampRepo is the Postgres implementation of CampRepo.
type pgCampRepo struct {
	db db
}

// NewCampRepo constructs a CampRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewCampRepo(db db) CampRepo {
	return &pgCampRepo{db: db}
}

// Create inserts a new camp row and returns the full persisted record.
func (r *pgCampRepo) Create(ctx context.Context, camp domain.Camp) (domain.Camp, error) {
	const q = `
		INSERT INTO camps (title, description, address, latitude, longitude,
			date, start_time, end_time, organizer_name, organizer_phone,
			image_url, source, is_active, is_recurring)
		VALUES (@title, @description, @address, @latitude, @longitude,
			@date, @start_time, @end_time, @organizer_name, @organizer_phone,
			@image_url, @source, @is_active, @is_recurring)
		RETURNING ` + campColumns

	args := pgx.NamedArgs{
		"title":           camp.Title,
		"description":     camp.Description,
		"address":         camp.Address,
		"latitude":        camp.Latitude,
		"longitude":       camp.Longitude,
		"date":            camp.Date,
		"start_time":      camp.StartTime,
		"end_time":        camp.EndTime,
		"organizer_name":  camp.OrganizerName,
		"organizer_phone": camp.OrganizerPhone,
		"image_url":       camp.ImageURL,
		"source":          camp.Source,
		"is_active":       camp.IsActive,
		"is_recurring":    camp.IsRecurring,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanCamp(row)
	if err != nil {
		return domain.Camp{}, fmt.Errorf("repo.CampRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a camp by primary key.
func (r *pgCampRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Camp, error) {
	const q = `
		SELECT ` + campColumns + `
		FROM camps
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanCamp(row)
	if err != nil {
		return domain.Camp{}, fmt.Errorf("repo.CampRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListActive returns all non-deactivated camps in creation order.
// Lifecycle filtering, geo filtering, and ranking are in-memory concerns of
// the service layer; the store only applies the administrative flag.
func (r *pgCampRepo) ListActive(ctx context.Context) ([]domain.Camp, error) {
	const q = `
		SELECT ` + campColumns + `
		FROM camps
		WHERE is_active
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.CampRepo.ListActive: %w", err)
	}
	defer rows.Close()

	var camps []domain.Camp
	for rows.Next() {
		c, err := scanCamp(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.CampRepo.ListActive: scan: %w", err)
		}
		camps = append(camps, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CampRepo.ListActive: rows: %w", err)
	}

	return camps, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanCamp to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanCamp maps a single database row into a domain.Camp.
func scanCamp(s scanner) (domain.Camp, error) {
	var (
		c  domain.Camp
		id pgtype.UUID
	)

	err := s.Scan(&id, &c.Title, &c.Description, &c.Address,
		&c.Latitude, &c.Longitude, &c.Date, &c.StartTime, &c.EndTime,
		&c.OrganizerName, &c.OrganizerPhone, &c.ImageURL, &c.Source,
		&c.IsActive, &c.IsRecurring, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Camp{}, domain.ErrNotFound
		}
		return domain.Camp{}, err
	}

	c.ID = uuid.UUID(id.Bytes)
	return c, nil
}
