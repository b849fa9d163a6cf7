package tithi

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/yanqian/panchang-api/internal/domain/astro"
	apperrors "github.com/yanqian/panchang-api/pkg/errors"
	"github.com/yanqian/panchang-api/pkg/util"
)

// Query asks for the tithi at a single localized moment.
type Query struct {
	Moment      time.Time
	InputValue  string
	Coordinates astro.Coordinates
	Timezone    *time.Location
	Elevation   float64
}

// RangeQuery asks for one tithi per civil date, both endpoints inclusive.
type RangeQuery struct {
	StartDate   time.Time
	EndDate     time.Time
	Coordinates astro.Coordinates
	Timezone    *time.Location
	Elevation   float64
}

// Response is the wire form of a computed tithi.
type Response struct {
	TithiNumber        int     `json:"tithi_number"`
	TithiName          string  `json:"tithi_name"`
	Paksha             string  `json:"paksha"`
	ElongationDegrees  float64 `json:"elongation_degrees"`
	ProgressPercentage float64 `json:"progress_percentage"`
	StartTime          string  `json:"start_time"`
	EndTime            string  `json:"end_time"`
	NextTithiNumber    int     `json:"next_tithi_number"`
	NextTithiName      string  `json:"next_tithi_name"`
	Significance       string  `json:"significance"`
	CalculationTime    string  `json:"calculation_time"`
	InputDate          string  `json:"input_date"`
	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
	Timezone           string  `json:"timezone"`
}

// RangeResponse wraps the per-day payloads.
type RangeResponse struct {
	Tithis []Response `json:"tithis"`
}

// Service exposes the tithi calculations to the transport layer.
type Service interface {
	Tithi(ctx context.Context, q Query) (Response, error)
	TithiRange(ctx context.Context, q RangeQuery) (RangeResponse, error)
}

type service struct {
	engine *Engine
	store  Store
	logger *slog.Logger
}

// NewService wires up the tithi domain.
func NewService(engine *Engine, store Store, logger *slog.Logger) Service {
	if store == nil {
		store = NopStore{}
	}
	return &service{
		engine: engine,
		store:  store,
		logger: logger.With("component", "tithi.service"),
	}
}

func (s *service) Tithi(ctx context.Context, q Query) (Response, error) {
	if err := q.Coordinates.Validate(); err != nil {
		return Response{}, err
	}

	key := cacheKey(q)
	if cached, ok := s.store.Get(ctx, key); ok {
		s.logger.Debug("tithi cache hit", "key", key)
		return cached, nil
	}

	obs := astro.Observer{Coordinates: q.Coordinates, Elevation: q.Elevation}
	state, err := s.engine.Compute(q.Moment, obs)
	if err != nil {
		return Response{}, err
	}

	resp := toResponse(state, q)
	s.store.Set(ctx, key, resp)
	return resp, nil
}

func (s *service) TithiRange(ctx context.Context, q RangeQuery) (RangeResponse, error) {
	if q.EndDate.Before(q.StartDate) {
		return RangeResponse{}, apperrors.Invalid("end_date must be on or after start_date")
	}
	if err := q.Coordinates.Validate(); err != nil {
		return RangeResponse{}, err
	}

	out := RangeResponse{Tithis: []Response{}}
	for date := q.StartDate; !date.After(q.EndDate); date = date.AddDate(0, 0, 1) {
		moment := time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, q.Timezone)
		resp, err := s.Tithi(ctx, Query{
			Moment:      moment,
			InputValue:  date.Format(util.LayoutDate),
			Coordinates: q.Coordinates,
			Timezone:    q.Timezone,
			Elevation:   q.Elevation,
		})
		if err != nil {
			return RangeResponse{}, err
		}
		out.Tithis = append(out.Tithis, resp)
	}
	return out, nil
}

func toResponse(state State, q Query) Response {
	return Response{
		TithiNumber:        state.Number,
		TithiName:          state.Name,
		Paksha:             state.Paksha,
		ElongationDegrees:  round2(state.ElongationDegrees),
		ProgressPercentage: round2(state.Progress * 100),
		StartTime:          state.Start.Format(time.RFC3339),
		EndTime:            state.End.Format(time.RFC3339),
		NextTithiNumber:    state.NextNumber,
		NextTithiName:      state.NextName,
		Significance:       state.Significance,
		CalculationTime:    state.CalculatedAt.Format(time.RFC3339),
		InputDate:          q.InputValue,
		Latitude:           q.Coordinates.Latitude,
		Longitude:          q.Coordinates.Longitude,
		Timezone:           q.Timezone.String(),
	}
}

func cacheKey(q Query) string {
	return fmt.Sprintf("tithi:%d:%.6f:%.6f:%.1f:%s",
		q.Moment.UTC().Unix(), q.Coordinates.Latitude, q.Coordinates.Longitude, q.Elevation, q.Timezone)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
