package chaughadiya

import (
	"context"
	"log/slog"
	"time"

	"github.com/yanqian/panchang-api/internal/domain/astro"
	"github.com/yanqian/panchang-api/pkg/util"
)

// DailyQuery asks for the full chaughadiya of one civil date.
type DailyQuery struct {
	Date        time.Time
	Coordinates astro.Coordinates
}

// MuhuratQuery asks for the slot containing a specific instant.
type MuhuratQuery struct {
	Timestamp   time.Time
	Coordinates astro.Coordinates
}

// Service exposes the chaughadiya calculations to the transport layer.
type Service interface {
	Daily(ctx context.Context, q DailyQuery) (DailyResponse, error)
	CurrentMuhurat(ctx context.Context, q MuhuratQuery) (MuhuratResponse, error)
}

type service struct {
	engine *Engine
	logger *slog.Logger
}

// NewService wires up the chaughadiya domain.
func NewService(engine *Engine, logger *slog.Logger) Service {
	return &service{
		engine: engine,
		logger: logger.With("component", "chaughadiya.service"),
	}
}

func (s *service) Daily(_ context.Context, q DailyQuery) (DailyResponse, error) {
	if err := q.Coordinates.Validate(); err != nil {
		return DailyResponse{}, err
	}
	day, err := s.engine.ComputeSolarDay(q.Date, q.Coordinates)
	if err != nil {
		return DailyResponse{}, err
	}
	s.logger.Debug("solar day computed",
		"date", q.Date.Format(util.LayoutDate),
		"sunrise", day.Sunrise, "sunset", day.Sunset)
	return day.toPayload(q.Coordinates), nil
}

func (s *service) CurrentMuhurat(_ context.Context, q MuhuratQuery) (MuhuratResponse, error) {
	if err := q.Coordinates.Validate(); err != nil {
		return MuhuratResponse{}, err
	}
	day, err := s.engine.ComputeSolarDay(q.Timestamp.Truncate(24*time.Hour), q.Coordinates)
	if err != nil {
		return MuhuratResponse{}, err
	}
	slot, err := day.FindSlotFor(q.Timestamp)
	if err != nil {
		return MuhuratResponse{}, err
	}
	return MuhuratResponse{
		DailyResponse:           day.toPayload(q.Coordinates),
		CurrentMuhuratID:        slot.MuhuratID,
		CurrentMuhurat:          slot.Name,
		CurrentMuhuratStartTime: util.FormatClock(slot.Start),
		CurrentMuhuratEndTime:   util.FormatClock(slot.End),
		CurrentSlot:             slot.toPayload(),
	}, nil
}
