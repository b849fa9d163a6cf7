package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/panchang-api/internal/domain/astro"
	"github.com/yanqian/panchang-api/internal/domain/chaughadiya"
	"github.com/yanqian/panchang-api/internal/domain/tithi"
	"github.com/yanqian/panchang-api/internal/infra/config"
)

// Handler wires the HTTP transport to the domain services.
type Handler struct {
	chaughadiyaSvc chaughadiya.Service
	tithiSvc       tithi.Service
	defaults       config.AstronomyConfig
	logger         *slog.Logger
	now            func() time.Time
}

// NewHandler constructs the root HTTP handler.
func NewHandler(cfg *config.Config, chaughadiyaSvc chaughadiya.Service, tithiSvc tithi.Service, logger *slog.Logger) *Handler {
	return &Handler{
		chaughadiyaSvc: chaughadiyaSvc,
		tithiSvc:       tithiSvc,
		defaults:       cfg.Astronomy,
		logger:         logger.With("component", "http.handler"),
		now:            time.Now,
	}
}

// GetChaughadiya returns the full 24-slot chaughadiya for a civil date.
func (h *Handler) GetChaughadiya(c *gin.Context) {
	coords, err := parseCoordinates(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	date, err := parseDateParam(c, "date")
	if err != nil {
		abortWithError(c, err)
		return
	}

	resp, err := h.chaughadiyaSvc.Daily(c.Request.Context(), chaughadiya.DailyQuery{
		Date:        date,
		Coordinates: coords,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetMuhurat returns the chaughadiya plus the slot containing the timestamp.
func (h *Handler) GetMuhurat(c *gin.Context) {
	coords, err := parseCoordinates(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	ts, err := parseTimestampParam(c, "timestamp")
	if err != nil {
		abortWithError(c, err)
		return
	}

	resp, err := h.chaughadiyaSvc.CurrentMuhurat(c.Request.Context(), chaughadiya.MuhuratQuery{
		Timestamp:   ts,
		Coordinates: coords,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetTithi returns the lunar day at a moment, with solved boundaries.
func (h *Handler) GetTithi(c *gin.Context) {
	coords, err := parseCoordinates(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	tz, err := parseTimezoneParam(c, h.defaults.DefaultTimezone)
	if err != nil {
		abortWithError(c, err)
		return
	}
	moment, raw, err := parseMomentParam(c, "date", tz)
	if err != nil {
		abortWithError(c, err)
		return
	}
	elevation, err := parseOptionalFloatParam(c, "elevation", h.defaults.DefaultElevationMeters)
	if err != nil {
		abortWithError(c, err)
		return
	}

	resp, err := h.tithiSvc.Tithi(c.Request.Context(), tithi.Query{
		Moment:      moment,
		InputValue:  raw,
		Coordinates: coords,
		Timezone:    tz,
		Elevation:   elevation,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetTithiRange returns one tithi per day between two dates, inclusive.
func (h *Handler) GetTithiRange(c *gin.Context) {
	coords, err := parseCoordinates(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	tz, err := parseTimezoneParam(c, h.defaults.DefaultTimezone)
	if err != nil {
		abortWithError(c, err)
		return
	}
	start, err := parseDateParam(c, "start_date")
	if err != nil {
		abortWithError(c, err)
		return
	}
	end, err := parseDateParam(c, "end_date")
	if err != nil {
		abortWithError(c, err)
		return
	}
	elevation, err := parseOptionalFloatParam(c, "elevation", h.defaults.DefaultElevationMeters)
	if err != nil {
		abortWithError(c, err)
		return
	}

	resp, err := h.tithiSvc.TithiRange(c.Request.Context(), tithi.RangeQuery{
		StartDate:   start,
		EndDate:     end,
		Coordinates: coords,
		Timezone:    tz,
		Elevation:   elevation,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Health reports liveness for the keep-alive pinger and platform probes.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}

func parseCoordinates(c *gin.Context) (astro.Coordinates, error) {
	latitude, err := parseFloatParam(c, "latitude", -90, 90)
	if err != nil {
		return astro.Coordinates{}, err
	}
	longitude, err := parseFloatParam(c, "longitude", -180, 180)
	if err != nil {
		return astro.Coordinates{}, err
	}
	return astro.Coordinates{Latitude: latitude, Longitude: longitude}, nil
}
