package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bhandara-web/backend/internal/domain"
)

func TestDistanceKm_IdenticalPoints(t *testing.T) {
	assert.Zero(t, domain.DistanceKm(28.6264, 77.2090, 28.6264, 77.2090))
}

func TestDistanceKm_Symmetric(t *testing.T) {
	d1 := domain.DistanceKm(28.6264, 77.2090, 28.5790, 77.3490)
	d2 := domain.DistanceKm(28.5790, 77.3490, 28.6264, 77.2090)

	assert.InDelta(t, d1, d2, 1e-9)
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	// Bangla Sahib Gurudwara to Karol Bagh — roughly 4.4 km apart.
	d := domain.DistanceKm(28.6519, 77.1903, 28.6264, 77.2090)

	assert.InDelta(t, 4.4, d, 0.5)
}

func TestDistanceKm_LongRange(t *testing.T) {
	// New Delhi to Mumbai is about 1150 km great-circle.
	d := domain.DistanceKm(28.6139, 77.2090, 19.0760, 72.8777)

	assert.InDelta(t, 1150, d, 25)
}
