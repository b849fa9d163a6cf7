package ephemeris

import (
	"math"
	"sync"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/base"
	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/moonposition"
	"github.com/mooncaker816/learnmeeus/v3/nutation"
	"github.com/mooncaker816/learnmeeus/v3/parallax"
	"github.com/mooncaker816/learnmeeus/v3/sidereal"
	"github.com/mooncaker816/learnmeeus/v3/solar"
	"github.com/soniakeys/unit"

	"github.com/yanqian/panchang-api/internal/domain/astro"
)

// Provider computes topocentric ecliptic longitudes of the Sun and the Moon
// with the Meeus algorithms.
//
// The observer position is mutable configuration shared by both body queries,
// so setting it and reading the two longitudes run as one serialized unit;
// concurrent calculations with different observers cannot interleave.
type Provider struct {
	mu       sync.Mutex
	observer astro.Observer
}

// NewProvider constructs the Meeus-backed ephemeris provider.
func NewProvider() *Provider {
	return &Provider{}
}

// JulianDay converts a UTC instant to a fractional Julian Day.
func (p *Provider) JulianDay(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}

// Time converts a fractional Julian Day back to a UTC instant.
func (p *Provider) Time(jd float64) time.Time {
	return julian.JDToTime(jd).UTC()
}

// Longitudes returns the topocentric ecliptic longitudes of the Moon and the
// Sun, in degrees normalized to [0,360), at the given Julian Day.
func (p *Provider) Longitudes(jd float64, obs astro.Observer) (moon, sun float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observer = obs

	Δψ, Δε := nutation.Nutation(jd)
	ε := nutation.MeanObliquity(jd) + Δε

	// Meeus counts geographic longitude positive westward.
	west := unit.AngleFromDeg(-obs.Longitude)
	θ := sidereal.Apparent(jd) - west.Time()
	φ := unit.AngleFromDeg(obs.Latitude)

	moonλ, moonβ, moonΔ := moonposition.Position(jd)
	moonλ += Δψ
	moonTopo, _, _ := parallax.TopocentricEcliptical(
		moonλ, moonβ, 0, φ, obs.Elevation, ε, θ, moonposition.Parallax(moonΔ))

	T := base.J2000Century(jd)
	sunλ := solar.ApparentLongitude(T)
	sunTopo, _, _ := parallax.TopocentricEcliptical(
		sunλ, 0, 0, φ, obs.Elevation, ε, θ, parallax.Horizontal(solar.Radius(T)))

	return normalize(moonTopo.Deg()), normalize(sunTopo.Deg())
}

func normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
