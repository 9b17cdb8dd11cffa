package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/bhandara-web/backend/internal/domain"
)

// noDistanceSentinel orders camps without a computed distance after every
// camp that has one, within the same status/date/time group.
const noDistanceSentinel = 99999

// scoredCamp pairs a camp with its request-scoped computed values. Each
// search builds its own scoredCamp slice over the snapshot fetched from the
// store, so computed status and distance never touch shared records and
// never leak across requests.
type scoredCamp struct {
	camp        domain.Camp
	status      domain.Status
	distanceKm  float64
	hasDistance bool
}

// sortDistance returns the distance used for ranking.
func (s scoredCamp) sortDistance() float64 {
	if s.hasDistance {
		return s.distanceKm
	}
	return noDistanceSentinel
}

// Search runs the camp query pipeline: fetch the active set, drop expired
// camps, apply the geo/city filters, rank, and paginate.
//
// The geo and city filters OR-combine: a camp is retained if it is within
// RadiusKm of the query point, or if its address matches the city text.
// When coordinates are supplied, the distance is computed for every
// candidate — including city-only matches — so ranking can still order by
// proximity.
//
// The returned total is the size of the full filtered set, before the page
// slice is taken. An out-of-range page yields an empty slice, not an error.
// Store failures propagate unchanged; nothing else can fail.
func (s *CampService) Search(ctx context.Context, f domain.SearchFilter) ([]domain.Camp, int, error) {
	camps, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("service.CampService.Search: %w", err)
	}

	now := s.now().UTC()
	today := now.Format("2006-01-02")
	city := f.CityQuery()
	hasGeo := f.HasGeo()
	hasCity := city != ""

	scored := make([]scoredCamp, 0, len(camps))
	for _, c := range camps {
		status := domain.ResolveStatus(c, now)
		if status == domain.StatusExpired {
			continue
		}
		sc := scoredCamp{camp: c, status: status}

		if hasGeo || hasCity {
			geoOK := false
			if hasGeo {
				sc.distanceKm = domain.DistanceKm(*f.Lat, *f.Lng, c.Latitude, c.Longitude)
				sc.hasDistance = true
				geoOK = sc.distanceKm <= f.RadiusKm
			}
			cityOK := hasCity && domain.MatchesLocation(c, city)
			if !geoOK && !cityOK {
				continue
			}
		}

		scored = append(scored, sc)
	}

	// Stable sort keeps the original relative order for equal keys, so
	// pagination is deterministic across identical requests.
	slices.SortStableFunc(scored, func(a, b scoredCamp) int {
		if c := cmp.Compare(a.status, b.status); c != 0 {
			return c
		}
		if c := strings.Compare(effectiveDate(a.camp, today), effectiveDate(b.camp, today)); c != 0 {
			return c
		}
		if c := strings.Compare(a.camp.StartTime, b.camp.StartTime); c != 0 {
			return c
		}
		return cmp.Compare(a.sortDistance(), b.sortDistance())
	})

	total := len(scored)

	start := f.Page.Offset()
	if start > total {
		start = total
	}
	end := start + f.Page.Limit
	if end > total {
		end = total
	}

	// Only the plain camps leave the engine; computed status and distance
	// stay behind in the scoredCamp wrappers.
	page := make([]domain.Camp, 0, end-start)
	for _, sc := range scored[start:end] {
		page = append(page, sc.camp)
	}

	return page, total, nil
}

// effectiveDate is the date used for ranking: recurring camps run every day,
// so they rank as if scheduled for today regardless of their stored date.
func effectiveDate(c domain.Camp, today string) string {
	if c.IsRecurring {
		return today
	}
	return c.Date
}
