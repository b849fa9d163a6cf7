package tithi

import (
	"fmt"
	"math"
	"time"

	"github.com/yanqian/panchang-api/internal/domain/astro"
	apperrors "github.com/yanqian/panchang-api/pkg/errors"
)

// Ephemeris yields topocentric ecliptic longitudes of the Sun and the Moon.
// Implementations own any shared observer state; a call must behave as one
// atomic unit of "set observer, query both bodies".
type Ephemeris interface {
	// Longitudes returns the topocentric ecliptic longitudes of the Moon and
	// the Sun, in degrees, at the given Julian Day for the observer.
	Longitudes(jd float64, obs astro.Observer) (moon, sun float64)
	// JulianDay converts a UTC instant to a fractional Julian Day.
	JulianDay(t time.Time) float64
	// Time converts a fractional Julian Day back to a UTC instant.
	Time(jd float64) time.Time
}

const (
	degreesPerTithi = 12.0

	// Boundary solving: bracket in one-hour steps up to 72 hours, then bisect
	// to 1e-4 degrees. Elongation grows ~0.55 degrees per hour, so a 12
	// degree window always brackets well inside the search limit.
	bracketStepDays   = 1.0 / 24.0
	bracketLimitSteps = 72
	bisectMaxIter     = 60
	angleToleranceDeg = 1e-4
)

// Engine computes lunar-day state from Sun-Moon elongation.
type Engine struct {
	eph Ephemeris
}

// NewEngine constructs a tithi engine over an ephemeris provider.
func NewEngine(eph Ephemeris) *Engine {
	return &Engine{eph: eph}
}

// Elongation returns the Moon-Sun elongation in degrees, normalized to
// [0,360).
func (e *Engine) Elongation(jd float64, obs astro.Observer) float64 {
	moon, sun := e.eph.Longitudes(jd, obs)
	return normalizeDegrees(moon - sun)
}

// Compute resolves the tithi running at the given instant, including the
// solved start and end boundaries of its 12 degree elongation window.
func (e *Engine) Compute(moment time.Time, obs astro.Observer) (State, error) {
	utc := moment.UTC()
	jd := e.eph.JulianDay(utc)

	elong := e.Elongation(jd, obs)
	index := int(elong / degreesPerTithi)
	number := index + 1
	if number > 30 {
		// Floating point at exactly 360 degrees; fold back onto Amavasya.
		number = 30
		index = 29
	}

	lower := float64(index) * degreesPerTithi
	upper := lower + degreesPerTithi

	startJD, err := e.solveBoundary(jd, lower, -1, obs)
	if err != nil {
		return State{}, err
	}
	endJD, err := e.solveBoundary(jd, upper, +1, obs)
	if err != nil {
		return State{}, err
	}

	start := e.eph.Time(startJD)
	end := e.eph.Time(endJD)
	progress := 0.0
	if span := end.Sub(start); span > 0 {
		progress = clamp(float64(utc.Sub(start))/float64(span), 0, 1)
	}

	name := Name(number)
	next := number%30 + 1

	return State{
		Number:            number,
		Name:              name,
		Paksha:            pakshaFor(number),
		ElongationDegrees: elong,
		Progress:          progress,
		Start:             start,
		End:               end,
		NextNumber:        next,
		NextName:          Name(next),
		Significance:      Significance(name),
		CalculatedAt:      utc,
	}, nil
}

// solveBoundary locates the instant, searching from jd in the given
// direction, at which the elongation crosses targetAngle. There is no closed
// form inverse of elongation(t), so the crossing is bracketed on the signed
// angular difference and refined by bisection; the bracket is valid because
// elongation increases monotonically across a single tithi window.
func (e *Engine) solveBoundary(jd, targetAngle float64, direction int, obs astro.Observer) (float64, error) {
	prev := jd
	prevDiff := signedDelta(e.Elongation(prev, obs), targetAngle)
	if prevDiff == 0 {
		return prev, nil
	}

	for step := 1; step <= bracketLimitSteps; step++ {
		next := jd + float64(direction)*float64(step)*bracketStepDays
		diff := signedDelta(e.Elongation(next, obs), targetAngle)
		if diff == 0 {
			return next, nil
		}
		if (diff < 0) != (prevDiff < 0) {
			return e.bisect(prev, next, targetAngle, obs)
		}
		prev, prevDiff = next, diff
	}
	return 0, apperrors.Wrap(apperrors.CodeInternal,
		fmt.Sprintf("no elongation crossing of %.4f within %d hours", targetAngle, bracketLimitSteps), nil)
}

func (e *Engine) bisect(low, high, targetAngle float64, obs astro.Observer) (float64, error) {
	lowDiff := signedDelta(e.Elongation(low, obs), targetAngle)
	highDiff := signedDelta(e.Elongation(high, obs), targetAngle)
	if (lowDiff < 0) == (highDiff < 0) {
		return 0, apperrors.Wrap(apperrors.CodeInternal, "bracket endpoints do not straddle the target angle", nil)
	}

	mid := low
	for i := 0; i < bisectMaxIter; i++ {
		mid = (low + high) / 2
		diff := signedDelta(e.Elongation(mid, obs), targetAngle)
		if math.Abs(diff) < angleToleranceDeg {
			return mid, nil
		}
		if (diff < 0) == (lowDiff < 0) {
			low, lowDiff = mid, diff
		} else {
			high = mid
		}
	}
	return mid, nil
}

// signedDelta returns a-b wrapped into [-180,180), robust to the 0/360 seam.
func signedDelta(a, b float64) float64 {
	return math.Mod(a-b+540, 360) - 180
}

func normalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

func pakshaFor(number int) string {
	if number <= 15 {
		return PakshaShukla
	}
	return PakshaKrishna
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
