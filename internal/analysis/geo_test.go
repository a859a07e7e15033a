package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_SamePoint(t *testing.T) {
	assert.Zero(t, DistanceKm(5.6037, -0.1870, 5.6037, -0.1870))
}

func TestDistanceKm_OneDegreeLatitude(t *testing.T) {
	// A degree of latitude is roughly 111.2km everywhere.
	d := DistanceKm(0, 0, 1, 0)
	assert.InDelta(t, 111.19, d, 0.2)
}

func TestDistanceKm_Symmetric(t *testing.T) {
	a := DistanceKm(9.0333, -2.4833, 9.4008, -0.8393)
	b := DistanceKm(9.4008, -0.8393, 9.0333, -2.4833)
	assert.InDelta(t, a, b, 1e-9)
}

func TestDistanceKm_AccraToTamale(t *testing.T) {
	// Accra to Tamale is roughly 430km great-circle.
	d := DistanceKm(5.6037, -0.1870, 9.4008, -0.8393)
	assert.InDelta(t, 428, d, 8)
}
