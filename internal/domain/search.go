package domain

import "strings"

// DefaultRadiusKm is the geo-filter radius applied when the client supplies
// coordinates but no explicit radius.
const DefaultRadiusKm = 50

// SearchFilter carries the camp search parameters from the HTTP layer to the
// service layer. Range validation (coordinate bounds, radius/page/limit caps)
// is the HTTP layer's job; by the time a SearchFilter reaches the service it
// is assumed well-formed.
type SearchFilter struct {
	// Lat and Lng are the query point for the geo-radius filter.
	// Geo filtering requires both; a lone coordinate is ignored.
	Lat *float64
	Lng *float64

	// RadiusKm is the geo-filter radius. Only meaningful when Lat/Lng are set.
	RadiusKm float64

	// City is a free-text location filter matched against camp addresses.
	// Blank (after trimming) means no city filtering.
	City string

	Page PaginationParams
}

// NewSearchFilter builds a SearchFilter from optional HTTP query params.
// Nil pointers fall back to the documented defaults (radius_km=50, page=1,
// limit=20).
func NewSearchFilter(lat, lng, radiusKm *float64, city *string, page, limit *int) SearchFilter {
	f := SearchFilter{
		Lat:      lat,
		Lng:      lng,
		RadiusKm: DefaultRadiusKm,
		Page:     NewPaginationParams(page, limit),
	}
	if radiusKm != nil {
		f.RadiusKm = *radiusKm
	}
	if city != nil {
		f.City = *city
	}
	return f
}

// HasGeo reports whether both coordinates are present, enabling the
// geo-radius filter.
func (f SearchFilter) HasGeo() bool {
	return f.Lat != nil && f.Lng != nil
}

// CityQuery returns the trimmed city filter text, or "" when the filter is
// absent or blank.
func (f SearchFilter) CityQuery() string {
	return strings.TrimSpace(f.City)
}

// PaginationParams carries page/limit values from the HTTP layer down to the
// search slicing step. Page is 1-indexed. Limit is capped at 100 by
// NewPaginationParams.
type PaginationParams struct {
	// Page is the current page number, starting at 1.
	Page int
	// Limit is the maximum number of items to return.
	Limit int
}

// NewPaginationParams builds a PaginationParams from optional HTTP query
// params. Nil pointers fall back to sane defaults (page=1, limit=20).
// The limit is capped at 100 to prevent runaway result pages.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: 20}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = *limit
		if p.Limit > 100 {
			p.Limit = 100
		}
	}
	return p
}

// Offset returns the zero-based index of the first item on the page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
