package chaughadiya

import (
	"time"

	"github.com/yanqian/panchang-api/internal/domain/astro"
)

const slotsPerSegment = 8

// SunEvents resolves sunrise and sunset instants for a calendar date and
// location. Implementations may be unable to produce an event near polar
// conditions; that failure is surfaced as a domain error.
type SunEvents interface {
	Sunrise(date time.Time, c astro.Coordinates) (time.Time, error)
	Sunset(date time.Time, c astro.Coordinates) (time.Time, error)
}

// Engine partitions a solar day into muhurat slots using the fixed weekly
// rotation tables.
type Engine struct {
	sun SunEvents
}

// NewEngine constructs the chaughadiya engine over a sun-event provider.
func NewEngine(sun SunEvents) *Engine {
	return &Engine{sun: sun}
}

// ComputeSolarDay fetches the four anchor instants for the date, corrects
// their ordering and builds the 24 slots. date is interpreted as a civil date;
// only its year, month and day are used.
func (e *Engine) ComputeSolarDay(date time.Time, c astro.Coordinates) (SolarDay, error) {
	sunrise, err := e.sun.Sunrise(date, c)
	if err != nil {
		return SolarDay{}, err
	}
	sunset, err := e.sun.Sunset(date, c)
	if err != nil {
		return SolarDay{}, err
	}
	prevSunset, err := e.sun.Sunset(date.AddDate(0, 0, -1), c)
	if err != nil {
		return SolarDay{}, err
	}
	nextSunrise, err := e.sun.Sunrise(date.AddDate(0, 0, 1), c)
	if err != nil {
		return SolarDay{}, err
	}

	// At extreme latitudes the provider can hand back a sunset ordered before
	// the sunrise of the same civil date; that sunset belongs to the previous
	// day. Shift until prevSunset < sunrise <= sunset holds.
	for sunset.Before(sunrise) {
		prevSunset = sunset
		sunset = sunset.Add(24 * time.Hour)
	}

	weekday := WeekdayIndex(int(date.Weekday()))

	return SolarDay{
		Date:          date,
		Weekday:       weekday,
		PrevSunset:    prevSunset,
		Sunrise:       sunrise,
		Sunset:        sunset,
		NextSunrise:   nextSunrise,
		PreDawnLength: sunrise.Sub(prevSunset) / slotsPerSegment,
		DayLength:     sunset.Sub(sunrise) / slotsPerSegment,
		NightLength:   nextSunrise.Sub(sunset) / slotsPerSegment,
		Slots:         buildSlots(weekday, prevSunset, sunrise, sunset, nextSunrise),
	}, nil
}

// slotBoundary interpolates the index-th boundary of a segment. Multiplying
// before dividing keeps boundary 8 exactly equal to the segment end, so the
// 24 slots tile [prevSunset, nextSunrise) without nanosecond gaps.
func slotBoundary(segStart, segEnd time.Time, index int) time.Time {
	return segStart.Add(segEnd.Sub(segStart) * time.Duration(index) / slotsPerSegment)
}

// buildSlots emits the 24 ordered slots: 8 pre-dawn, 8 day, 8 night. The
// muhurat id is always taken from the weekday's day row while the name varies
// by segment; the id/name asymmetry matches the upstream tables and must not
// be "corrected" without product confirmation.
func buildSlots(weekday int, prevSunset, sunrise, sunset, nextSunrise time.Time) []Slot {
	prevDay := (weekday + 6) % 7
	slots := make([]Slot, 0, 3*slotsPerSegment)

	segments := []struct {
		phase      Phase
		start, end time.Time
		nameRow    [8]int
	}{
		{PhasePreDawn, prevSunset, sunrise, rotation[prevDay][nightRow]},
		{PhaseDay, sunrise, sunset, rotation[weekday][dayRow]},
		{PhaseNight, sunset, nextSunrise, rotation[weekday][nightRow]},
	}

	for _, seg := range segments {
		for index := 0; index < slotsPerSegment; index++ {
			slots = append(slots, Slot{
				Index:     index,
				MuhuratID: rotation[weekday][dayRow][index],
				Name:      muhuratNames[seg.nameRow[index]],
				Phase:     seg.phase,
				Start:     slotBoundary(seg.start, seg.end, index),
				End:       slotBoundary(seg.start, seg.end, index+1),
			})
		}
	}
	return slots
}
