package chaughadiya

import (
	"fmt"
	"time"

	apperrors "github.com/yanqian/panchang-api/pkg/errors"
)

// Phase identifies which of the three solar-day segments a slot belongs to.
type Phase string

const (
	PhasePreDawn Phase = "pre-dawn"
	PhaseDay     Phase = "day"
	PhaseNight   Phase = "night"
)

// Slot is one of the 24 muhurat windows of a solar day. The interval is
// half-open: Start inclusive, End exclusive.
type Slot struct {
	Index     int
	MuhuratID int
	Name      string
	Phase     Phase
	Start     time.Time
	End       time.Time
}

// Contains reports whether the instant falls inside the slot.
func (s Slot) Contains(moment time.Time) bool {
	return !moment.Before(s.Start) && moment.Before(s.End)
}

// SolarDay is the partition of [prevSunset, nextSunrise) for one civil date
// and location. All instants are UTC; Slots holds the 24 contiguous windows.
type SolarDay struct {
	Date        time.Time
	Weekday     int
	PrevSunset  time.Time
	Sunrise     time.Time
	Sunset      time.Time
	NextSunrise time.Time

	PreDawnLength time.Duration
	DayLength     time.Duration
	NightLength   time.Duration

	Slots []Slot
}

// FindSlotFor locates the unique slot containing the instant. Instants outside
// [prevSunset, nextSunrise) are a domain failure, not an internal one.
func (d SolarDay) FindSlotFor(moment time.Time) (Slot, error) {
	for _, slot := range d.Slots {
		if slot.Contains(moment) {
			return slot, nil
		}
	}
	return Slot{}, apperrors.Domain(
		fmt.Sprintf("timestamp %s is outside of calculated muhurats", moment.UTC().Format(time.RFC3339)), nil)
}
