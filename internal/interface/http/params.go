package http

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yanqian/panchang-api/pkg/errors"
	"github.com/yanqian/panchang-api/pkg/util"
)

// Query parameter parsing mirrors the public API contract: every failure is a
// validation error naming the offending field.

func requireParam(c *gin.Context, field string) (string, error) {
	value := c.Query(field)
	if value == "" {
		return "", apperrors.Invalid(fmt.Sprintf("%s parameter is required", field))
	}
	return value, nil
}

func parseFloatParam(c *gin.Context, field string, min, max float64) (float64, error) {
	text, err := requireParam(c, field)
	if err != nil {
		return 0, err
	}
	number, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, apperrors.Invalid(fmt.Sprintf("%s must be a valid number", field))
	}
	if number < min {
		return 0, apperrors.Invalid(fmt.Sprintf("%s must be >= %g", field, min))
	}
	if number > max {
		return 0, apperrors.Invalid(fmt.Sprintf("%s must be <= %g", field, max))
	}
	return number, nil
}

func parseOptionalFloatParam(c *gin.Context, field string, fallback float64) (float64, error) {
	text := c.Query(field)
	if text == "" {
		return fallback, nil
	}
	number, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, apperrors.Invalid(fmt.Sprintf("%s must be a valid number", field))
	}
	return number, nil
}

func parseDateParam(c *gin.Context, field string) (time.Time, error) {
	text, err := requireParam(c, field)
	if err != nil {
		return time.Time{}, err
	}
	date, err := time.ParseInLocation(util.LayoutDate, text, time.UTC)
	if err != nil {
		return time.Time{}, apperrors.Invalid(fmt.Sprintf("%s must match format %s", field, util.LayoutDate))
	}
	return date, nil
}

func parseTimestampParam(c *gin.Context, field string) (time.Time, error) {
	text, err := requireParam(c, field)
	if err != nil {
		return time.Time{}, err
	}
	ts, err := time.ParseInLocation(util.LayoutTimestamp, text, time.UTC)
	if err != nil {
		return time.Time{}, apperrors.Invalid(fmt.Sprintf("%s must match format %s", field, util.LayoutTimestamp))
	}
	return ts, nil
}

// parseMomentParam accepts either a bare date (interpreted as local noon for
// better mid-day accuracy) or a full timestamp, in the supplied timezone.
func parseMomentParam(c *gin.Context, field string, tz *time.Location) (time.Time, string, error) {
	text, err := requireParam(c, field)
	if err != nil {
		return time.Time{}, "", err
	}
	if len(text) == len(util.LayoutDate) {
		date, err := time.ParseInLocation(util.LayoutDate, text, tz)
		if err != nil {
			return time.Time{}, "", apperrors.Invalid(fmt.Sprintf("%s must match format %s", field, util.LayoutDate))
		}
		noon := time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, tz)
		return noon, text, nil
	}
	moment, err := time.ParseInLocation(util.LayoutTimestamp, text, tz)
	if err != nil {
		return time.Time{}, "", apperrors.Invalid(fmt.Sprintf("%s must match format %s or %s", field, util.LayoutDate, util.LayoutTimestamp))
	}
	return moment, text, nil
}

func parseTimezoneParam(c *gin.Context, fallback string) (*time.Location, error) {
	name := c.Query("timezone")
	if name == "" {
		name = fallback
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, apperrors.Invalid("timezone parameter is invalid")
	}
	return loc, nil
}
