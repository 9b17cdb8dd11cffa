package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhandara-web/backend/internal/cache"
	"github.com/bhandara-web/backend/internal/domain"
	"github.com/bhandara-web/backend/internal/repo"
	"github.com/bhandara-web/backend/internal/service"
)

// mockCampRepo is a hand-written test double for repo.CampRepo.
// Each method is a function field — set only the ones your test needs.
type mockCampRepo struct {
	create     func(ctx context.Context, camp domain.Camp) (domain.Camp, error)
	getByID    func(ctx context.Context, id uuid.UUID) (domain.Camp, error)
	listActive func(ctx context.Context) ([]domain.Camp, error)
}

func (m *mockCampRepo) Create(ctx context.Context, camp domain.Camp) (domain.Camp, error) {
	return m.create(ctx, camp)
}
func (m *mockCampRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Camp, error) {
	return m.getByID(ctx, id)
}
func (m *mockCampRepo) ListActive(ctx context.Context) ([]domain.Camp, error) {
	return m.listActive(ctx)
}

// compile-time check: mockCampRepo must satisfy repo.CampRepo.
var _ repo.CampRepo = (*mockCampRepo)(nil)

// mapCache is an in-memory CampCache for asserting cache interactions.
type mapCache struct {
	camps map[uuid.UUID]domain.Camp
}

func newMapCache() *mapCache {
	return &mapCache{camps: make(map[uuid.UUID]domain.Camp)}
}

func (m *mapCache) Get(_ context.Context, id uuid.UUID) (domain.Camp, bool) {
	c, ok := m.camps[id]
	return c, ok
}

func (m *mapCache) Set(_ context.Context, camp domain.Camp) {
	m.camps[camp.ID] = camp
}

var _ service.CampCache = (*mapCache)(nil)

// ---- helpers ---------------------------------------------------------------

func ptrF(v float64) *float64 { return &v }
func ptrI(v int) *int         { return &v }
func ptrS(v string) *string   { return &v }

func validNewCamp() domain.Camp {
	return domain.Camp{
		Title:     "Shiv Bhandara",
		Address:   "Hanuman Mandir, Karol Bagh, New Delhi",
		Latitude:  28.6519,
		Longitude: 77.1903,
		Date:      "2025-06-15",
		StartTime: "09:00",
		EndTime:   "11:00",
	}
}

// echoRepo echoes whatever it receives back — useful for Create tests that
// only care about validation and defaulting, not what the DB returns.
func echoRepo() *mockCampRepo {
	return &mockCampRepo{
		create: func(_ context.Context, c domain.Camp) (domain.Camp, error) { return c, nil },
	}
}

func newCreateService() *service.CampService {
	return service.NewCampService(echoRepo(), cache.Noop{},
		service.WithClock(func() time.Time { return queryInstant }))
}

// ---- Create tests ----------------------------------------------------------

func TestCampService_Create_Valid(t *testing.T) {
	svc := newCreateService()

	got, err := svc.Create(context.Background(), validNewCamp())

	require.NoError(t, err)
	assert.Equal(t, "Shiv Bhandara", got.Title)
	assert.Equal(t, domain.SourceUser, got.Source, "source defaults to user")
	assert.True(t, got.IsActive, "new camps are always active")
}

func TestCampService_Create_TrimsText(t *testing.T) {
	svc := newCreateService()

	camp := validNewCamp()
	camp.Title = "  Shiv Bhandara  "
	camp.OrganizerName = " Ram Sewa Samiti "

	got, err := svc.Create(context.Background(), camp)

	require.NoError(t, err)
	assert.Equal(t, "Shiv Bhandara", got.Title)
	assert.Equal(t, "Ram Sewa Samiti", got.OrganizerName)
}

func TestCampService_Create_MissingTitle(t *testing.T) {
	svc := newCreateService()

	camp := validNewCamp()
	camp.Title = "   "

	_, err := svc.Create(context.Background(), camp)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCampService_Create_MissingAddress(t *testing.T) {
	svc := newCreateService()

	camp := validNewCamp()
	camp.Address = ""

	_, err := svc.Create(context.Background(), camp)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCampService_Create_LatitudeOutOfRange(t *testing.T) {
	svc := newCreateService()

	camp := validNewCamp()
	camp.Latitude = 91

	_, err := svc.Create(context.Background(), camp)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCampService_Create_LongitudeOutOfRange(t *testing.T) {
	svc := newCreateService()

	camp := validNewCamp()
	camp.Longitude = -181

	_, err := svc.Create(context.Background(), camp)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCampService_Create_UnpaddedDateRejected(t *testing.T) {
	// "2025-6-1" would break lexicographic date comparison.
	svc := newCreateService()

	camp := validNewCamp()
	camp.Date = "2025-6-1"

	_, err := svc.Create(context.Background(), camp)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCampService_Create_ImpossibleDateRejected(t *testing.T) {
	svc := newCreateService()

	camp := validNewCamp()
	camp.Date = "2025-02-30"

	_, err := svc.Create(context.Background(), camp)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCampService_Create_UnpaddedStartTimeRejected(t *testing.T) {
	svc := newCreateService()

	camp := validNewCamp()
	camp.StartTime = "9:00"

	_, err := svc.Create(context.Background(), camp)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCampService_Create_MissingStartTimeRejected(t *testing.T) {
	svc := newCreateService()

	camp := validNewCamp()
	camp.StartTime = ""

	_, err := svc.Create(context.Background(), camp)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCampService_Create_OvernightSpanRejected(t *testing.T) {
	svc := newCreateService()

	camp := validNewCamp()
	camp.StartTime = "22:00"
	camp.EndTime = "02:00"

	_, err := svc.Create(context.Background(), camp)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCampService_Create_EmptyEndTimeAllowed(t *testing.T) {
	svc := newCreateService()

	camp := validNewCamp()
	camp.EndTime = ""

	_, err := svc.Create(context.Background(), camp)

	assert.NoError(t, err)
}

func TestCampService_Create_UnknownSourceRejected(t *testing.T) {
	svc := newCreateService()

	camp := validNewCamp()
	camp.Source = "scraper"

	_, err := svc.Create(context.Background(), camp)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCampService_Create_RecurringDefaultsDateToToday(t *testing.T) {
	svc := newCreateService()

	camp := validNewCamp()
	camp.IsRecurring = true
	camp.Date = ""

	got, err := svc.Create(context.Background(), camp)

	require.NoError(t, err)
	assert.Equal(t, "2025-06-10", got.Date)
}

func TestCampService_Create_OneOffRequiresDate(t *testing.T) {
	svc := newCreateService()

	camp := validNewCamp()
	camp.Date = ""

	_, err := svc.Create(context.Background(), camp)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCampService_Create_PopulatesCache(t *testing.T) {
	id := uuid.New()
	repo := &mockCampRepo{
		create: func(_ context.Context, c domain.Camp) (domain.Camp, error) {
			c.ID = id
			return c, nil
		},
	}
	c := newMapCache()
	svc := service.NewCampService(repo, c)

	_, err := svc.Create(context.Background(), validNewCamp())

	require.NoError(t, err)
	_, ok := c.camps[id]
	assert.True(t, ok, "created camp should be cached")
}

// ---- GetByID tests ---------------------------------------------------------

func TestCampService_GetByID_CacheHitSkipsStore(t *testing.T) {
	id := uuid.New()
	cached := validNewCamp()
	cached.ID = id

	c := newMapCache()
	c.camps[id] = cached

	repo := &mockCampRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Camp, error) {
			t.Fatal("store must not be hit on a cache hit")
			return domain.Camp{}, nil
		},
	}
	svc := service.NewCampService(repo, c)

	got, err := svc.GetByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestCampService_GetByID_CacheMissFetchesAndCaches(t *testing.T) {
	id := uuid.New()
	stored := validNewCamp()
	stored.ID = id

	c := newMapCache()
	repo := &mockCampRepo{
		getByID: func(_ context.Context, gotID uuid.UUID) (domain.Camp, error) {
			assert.Equal(t, id, gotID)
			return stored, nil
		},
	}
	svc := service.NewCampService(repo, c)

	got, err := svc.GetByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, stored, got)
	_, ok := c.camps[id]
	assert.True(t, ok, "fetched camp should be cached")
}

func TestCampService_GetByID_NotFound(t *testing.T) {
	repo := &mockCampRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Camp, error) {
			return domain.Camp{}, domain.ErrNotFound
		},
	}
	svc := service.NewCampService(repo, cache.Noop{})

	_, err := svc.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCampService_GetByID_StoreErrorPropagates(t *testing.T) {
	storeErr := errors.New("timeout")
	repo := &mockCampRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Camp, error) {
			return domain.Camp{}, storeErr
		},
	}
	svc := service.NewCampService(repo, cache.Noop{})

	_, err := svc.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, storeErr)
}
