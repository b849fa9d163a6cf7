package chaughadiya

import (
	"github.com/yanqian/panchang-api/internal/domain/astro"
	"github.com/yanqian/panchang-api/pkg/util"
)

// The wire schema keeps the hyphenated keys of the original public API.

// SlotPayload is the wire form of a single muhurat slot.
type SlotPayload struct {
	MuhuratID int    `json:"muhurat-id"`
	Muhurat   string `json:"muhurat"`
	Phase     string `json:"phase"`
	StartTime string `json:"start-time"`
	EndTime   string `json:"end-time"`
}

// LocationPayload echoes the request coordinates.
type LocationPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DailyResponse is the wire form of a computed solar day.
type DailyResponse struct {
	Date               string          `json:"date"`
	Weekday            string          `json:"weekday"`
	PrevSunsetTime     string          `json:"prev-sunset-time"`
	SunriseTime        string          `json:"sunrise-time"`
	SunsetTime         string          `json:"sunset-time"`
	NextSunriseTime    string          `json:"next-sunrise-time"`
	DayMuhuratLength   string          `json:"day-muhurat-length"`
	NightMuhuratLength string          `json:"night-muhurat-length"`
	Chaughadiya        []SlotPayload   `json:"chaughadiya"`
	Location           LocationPayload `json:"location"`
}

// MuhuratResponse extends the daily payload with the slot containing the
// queried timestamp.
type MuhuratResponse struct {
	DailyResponse
	CurrentMuhuratID        int         `json:"current-muhurat-id"`
	CurrentMuhurat          string      `json:"current-muhurat"`
	CurrentMuhuratStartTime string      `json:"current-muhurat-start-time"`
	CurrentMuhuratEndTime   string      `json:"current-muhurat-end-time"`
	CurrentSlot             SlotPayload `json:"current_muhurat"`
}

func (s Slot) toPayload() SlotPayload {
	return SlotPayload{
		MuhuratID: s.MuhuratID,
		Muhurat:   s.Name,
		Phase:     string(s.Phase),
		StartTime: util.FormatClock(s.Start),
		EndTime:   util.FormatClock(s.End),
	}
}

func (d SolarDay) toPayload(c astro.Coordinates) DailyResponse {
	slots := make([]SlotPayload, 0, len(d.Slots))
	for _, slot := range d.Slots {
		slots = append(slots, slot.toPayload())
	}
	return DailyResponse{
		Date:               d.Date.Format(util.LayoutDate),
		Weekday:            WeekdayName(d.Weekday),
		PrevSunsetTime:     util.FormatClock(d.PrevSunset),
		SunriseTime:        util.FormatClock(d.Sunrise),
		SunsetTime:         util.FormatClock(d.Sunset),
		NextSunriseTime:    util.FormatClock(d.NextSunrise),
		DayMuhuratLength:   util.FormatSegment(d.DayLength),
		NightMuhuratLength: util.FormatSegment(d.NightLength),
		Chaughadiya:        slots,
		Location:           LocationPayload{Latitude: c.Latitude, Longitude: c.Longitude},
	}
}
