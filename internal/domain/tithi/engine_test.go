package tithi

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/panchang-api/internal/domain/astro"
	apperrors "github.com/yanqian/panchang-api/pkg/errors"
)

// linearEphemeris grows the Moon's longitude at a constant rate with the Sun
// pinned at zero, so elongation(jd) = rate * (jd - epoch) and every boundary
// instant has a closed form to check the solver against.
type linearEphemeris struct {
	epochJD float64
	rate    float64 // degrees per day
}

func (f *linearEphemeris) Longitudes(jd float64, _ astro.Observer) (float64, float64) {
	return f.rate * (jd - f.epochJD), 0
}

func (f *linearEphemeris) JulianDay(t time.Time) float64 {
	return float64(t.UTC().Unix()) / 86400.0
}

func (f *linearEphemeris) Time(jd float64) time.Time {
	return time.Unix(int64(math.Round(jd*86400)), 0).UTC()
}

// constantEphemeris never moves; no boundary crossing exists.
type constantEphemeris struct{ elongation float64 }

func (f constantEphemeris) Longitudes(float64, astro.Observer) (float64, float64) {
	return f.elongation, 0
}
func (f constantEphemeris) JulianDay(t time.Time) float64 { return float64(t.UTC().Unix()) / 86400.0 }
func (f constantEphemeris) Time(jd float64) time.Time {
	return time.Unix(int64(math.Round(jd*86400)), 0).UTC()
}

// Mean synodic elongation rate, close to the real sky.
const testRate = 12.19

func newLinearEngine(t *testing.T, moment time.Time, elongationAtMoment float64) (*Engine, *linearEphemeris) {
	t.Helper()
	eph := &linearEphemeris{rate: testRate}
	eph.epochJD = eph.JulianDay(moment) - elongationAtMoment/testRate
	return NewEngine(eph), eph
}

func TestComputeMidTithi(t *testing.T) {
	moment := time.Date(2025, 11, 15, 12, 0, 0, 0, time.UTC)
	engine, eph := newLinearEngine(t, moment, 30) // middle of the 24-36 window

	state, err := engine.Compute(moment, astro.Observer{})
	require.NoError(t, err)

	require.Equal(t, 3, state.Number)
	require.Equal(t, "Tritiya (Shukla)", state.Name)
	require.Equal(t, PakshaShukla, state.Paksha)
	require.Equal(t, 4, state.NextNumber)
	require.Equal(t, "Chaturthi (Shukla)", state.NextName)
	require.InDelta(t, 30, state.ElongationDegrees, 1e-9)
	require.InDelta(t, 0.5, state.Progress, 1e-3)

	require.True(t, state.Start.Before(moment))
	require.True(t, state.End.After(moment))

	// Solved boundaries must sit on the 12-degree multiples of the window.
	require.InDelta(t, 24, engine.Elongation(eph.JulianDay(state.Start), astro.Observer{}), 5e-4)
	require.InDelta(t, 36, engine.Elongation(eph.JulianDay(state.End), astro.Observer{}), 5e-4)

	// With a constant rate the window spans 12/rate days.
	spanHours := 12.0 / testRate * 24
	wantSpan := time.Duration(spanHours * float64(time.Hour))
	require.InDelta(t, float64(wantSpan), float64(state.End.Sub(state.Start)), float64(2*time.Second))
}

func TestComputeKrishnaPaksha(t *testing.T) {
	moment := time.Date(2025, 11, 15, 12, 0, 0, 0, time.UTC)
	engine, _ := newLinearEngine(t, moment, 200) // inside the 192-204 window, waning half

	state, err := engine.Compute(moment, astro.Observer{})
	require.NoError(t, err)

	require.Equal(t, 17, state.Number)
	require.Equal(t, PakshaKrishna, state.Paksha)
	require.Equal(t, 18, state.NextNumber)
}

func TestComputeAmavasyaWrapsToPratipada(t *testing.T) {
	moment := time.Date(2025, 11, 15, 12, 0, 0, 0, time.UTC)
	engine, eph := newLinearEngine(t, moment, 355) // last window, 348-360

	state, err := engine.Compute(moment, astro.Observer{})
	require.NoError(t, err)

	require.Equal(t, 30, state.Number)
	require.Equal(t, "Amavasya", state.Name)
	require.Equal(t, 1, state.NextNumber)
	require.Equal(t, "Pratipada (Shukla)", state.NextName)

	// The upper boundary sits on the 0/360 seam; the solver must converge on
	// it despite the wrap.
	end := engine.Elongation(eph.JulianDay(state.End), astro.Observer{})
	require.InDelta(t, 0, signedDelta(end, 360), 5e-4)
	require.True(t, state.End.After(state.Start))
}

func TestComputeBoundaryInstantIsItsOwnStart(t *testing.T) {
	moment := time.Date(2025, 11, 15, 12, 0, 0, 0, time.UTC)
	engine, _ := newLinearEngine(t, moment, 24.00005) // a hair past the boundary

	state, err := engine.Compute(moment, astro.Observer{})
	require.NoError(t, err)

	require.Equal(t, 3, state.Number)
	require.InDelta(t, 0, state.Progress, 1e-3)
	require.LessOrEqual(t, state.Progress, 1.0)
	require.GreaterOrEqual(t, state.Progress, 0.0)
}

func TestComputeNumberStableAcrossWindow(t *testing.T) {
	moment := time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)
	engine, _ := newLinearEngine(t, moment, 48.5) // just inside the 48-60 window

	state, err := engine.Compute(moment, astro.Observer{})
	require.NoError(t, err)
	require.Equal(t, 5, state.Number)

	// Every probe until just before the end must resolve the same tithi.
	for _, offset := range []time.Duration{time.Hour, 6 * time.Hour, 12 * time.Hour} {
		probe := moment.Add(offset)
		if !probe.Before(state.End) {
			continue
		}
		got, err := engine.Compute(probe, astro.Observer{})
		require.NoError(t, err)
		require.Equal(t, state.Number, got.Number, "offset %s", offset)
		require.WithinDuration(t, state.Start, got.Start, 2*time.Second)
		require.WithinDuration(t, state.End, got.End, 2*time.Second)
	}
}

func TestComputeFailsWithoutCrossing(t *testing.T) {
	engine := NewEngine(constantEphemeris{elongation: 30})

	_, err := engine.Compute(time.Date(2025, 11, 15, 12, 0, 0, 0, time.UTC), astro.Observer{})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInternal))
	require.Contains(t, err.Error(), "no elongation crossing")
}

func TestSignedDelta(t *testing.T) {
	require.InDelta(t, -2, signedDelta(359, 1), 1e-12)
	require.InDelta(t, 2, signedDelta(1, 359), 1e-12)
	require.InDelta(t, 0, signedDelta(42, 42), 1e-12)
	require.InDelta(t, -180, signedDelta(180, 0), 1e-12)
}

func TestNormalizeDegrees(t *testing.T) {
	require.InDelta(t, 330, normalizeDegrees(-30), 1e-12)
	require.InDelta(t, 0, normalizeDegrees(720), 1e-12)
	require.InDelta(t, 359.5, normalizeDegrees(359.5), 1e-12)
}
