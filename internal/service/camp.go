// Package service contains the business logic for the Bhandara API.
// The heart of it is the camp search engine in search.go; this file holds
// the service type, ingestion validation, and single-camp lookups.
// No SQL lives here — the service depends on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bhandara-web/backend/internal/domain"
	"github.com/bhandara-web/backend/internal/repo"
)

// CampCache is the read-through cache for single-camp lookups.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". The cache is
// best-effort — a miss or a cache failure just falls through to the store.
type CampCache interface {
	// Get returns the cached camp and true, or false on a miss.
	Get(ctx context.Context, id uuid.UUID) (domain.Camp, bool)
	// Set stores the camp. Failures are swallowed by the implementation.
	Set(ctx context.Context, camp domain.Camp)
}

// CampService implements business logic for camp operations.
type CampService struct {
	repo  repo.CampRepo
	cache CampCache

	// now is the clock used to resolve camp lifecycle status.
	// Injectable so tests can pin the query instant.
	now func() time.Time
}

// Option configures a CampService.
type Option func(*CampService)

// WithClock overrides the service clock. Intended for tests that need a
// deterministic "now".
func WithClock(now func() time.Time) Option {
	return func(s *CampService) { s.now = now }
}

// NewCampService constructs a CampService backed by the provided repo and
// cache.
func NewCampService(r repo.CampRepo, cache CampCache, opts ...Option) *CampService {
	s := &CampService{repo: r, cache: cache, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetByID returns a single camp by ID, consulting the cache first.
// Returns domain.ErrNotFound if no camp with that ID exists.
func (s *CampService) GetByID(ctx context.Context, id uuid.UUID) (domain.Camp, error) {
	if c, ok := s.cache.Get(ctx, id); ok {
		return c, nil
	}

	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Camp{}, fmt.Errorf("service.CampService.GetByID: %w", err)
	}

	s.cache.Set(ctx, result)
	return result, nil
}

// Create validates and persists a new camp.
//
// The date defaults to today (UTC) for recurring camps that omit it; the
// camp is always stored active. Returns domain.ErrValidation if input
// violates the ingestion rules.
func (s *CampService) Create(ctx context.Context, camp domain.Camp) (domain.Camp, error) {
	camp.Title = strings.TrimSpace(camp.Title)
	camp.Address = strings.TrimSpace(camp.Address)
	camp.Description = strings.TrimSpace(camp.Description)
	camp.OrganizerName = strings.TrimSpace(camp.OrganizerName)
	camp.OrganizerPhone = strings.TrimSpace(camp.OrganizerPhone)

	if camp.Source == "" {
		camp.Source = domain.SourceUser
	}
	if camp.IsRecurring && camp.Date == "" {
		camp.Date = s.now().UTC().Format("2006-01-02")
	}
	camp.IsActive = true

	if err := validateCamp(camp); err != nil {
		return domain.Camp{}, err
	}

	result, err := s.repo.Create(ctx, camp)
	if err != nil {
		return domain.Camp{}, fmt.Errorf("service.CampService.Create: %w", err)
	}

	s.cache.Set(ctx, result)
	return result, nil
}

// Zero-padded forms only. The search engine compares dates and times as
// text, so anything that would break lexicographic ordering is rejected
// here, at the store boundary.
var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// validateCamp enforces the ingestion rules:
//   - Title and address must be non-empty.
//   - Coordinates must be within valid ranges. Camps without usable
//     coordinates are rejected outright rather than handled case-by-case in
//     the engine.
//   - Date must be a real calendar date in "YYYY-MM-DD" form.
//   - Start time is required; times must be zero-padded "HH:MM".
//   - The end time, when present, must not precede the start time on the
//     same day (overnight spans are not supported).
//   - Source must be one of the known provenance tags.
func validateCamp(camp domain.Camp) error {
	if camp.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if camp.Address == "" {
		return fmt.Errorf("%w: address is required", domain.ErrValidation)
	}
	if camp.Latitude < -90 || camp.Latitude > 90 {
		return fmt.Errorf("%w: latitude must be between -90 and 90", domain.ErrValidation)
	}
	if camp.Longitude < -180 || camp.Longitude > 180 {
		return fmt.Errorf("%w: longitude must be between -180 and 180", domain.ErrValidation)
	}
	if !dateRe.MatchString(camp.Date) {
		return fmt.Errorf("%w: date must be in YYYY-MM-DD form", domain.ErrValidation)
	}
	if _, err := time.Parse("2006-01-02", camp.Date); err != nil {
		return fmt.Errorf("%w: date is not a valid calendar date", domain.ErrValidation)
	}
	if camp.StartTime == "" {
		return fmt.Errorf("%w: start_time is required", domain.ErrValidation)
	}
	if !timeRe.MatchString(camp.StartTime) {
		return fmt.Errorf("%w: start_time must be in 24-hour HH:MM form", domain.ErrValidation)
	}
	if camp.EndTime != "" {
		if !timeRe.MatchString(camp.EndTime) {
			return fmt.Errorf("%w: end_time must be in 24-hour HH:MM form", domain.ErrValidation)
		}
		if camp.EndTime < camp.StartTime {
			return fmt.Errorf("%w: end_time must not be before start_time", domain.ErrValidation)
		}
	}
	switch camp.Source {
	case domain.SourceUser, domain.SourceVerified, domain.SourceCron:
	default:
		return fmt.Errorf("%w: unknown source %q", domain.ErrValidation, camp.Source)
	}
	return nil
}
