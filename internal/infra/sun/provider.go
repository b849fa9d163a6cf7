package sun

import (
	"fmt"
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/yanqian/panchang-api/internal/domain/astro"
	apperrors "github.com/yanqian/panchang-api/pkg/errors"
)

// Provider resolves sunrise and sunset instants using the NOAA solar
// calculation implemented by go-sunrise. Returned instants are UTC.
//
// Near polar day or polar night the underlying calculation has no event to
// report and both instants come back zero; that is surfaced as a domain
// error rather than recovered locally.
type Provider struct{}

// NewProvider constructs the sun-event provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Sunrise returns the sunrise instant for the civil date at the coordinates.
func (p *Provider) Sunrise(date time.Time, c astro.Coordinates) (time.Time, error) {
	rise, _, err := p.events(date, c)
	return rise, err
}

// Sunset returns the sunset instant for the civil date at the coordinates.
func (p *Provider) Sunset(date time.Time, c astro.Coordinates) (time.Time, error) {
	_, set, err := p.events(date, c)
	return set, err
}

func (p *Provider) events(date time.Time, c astro.Coordinates) (time.Time, time.Time, error) {
	rise, set := sunrise.SunriseSunset(c.Latitude, c.Longitude, date.Year(), date.Month(), date.Day())
	if rise.IsZero() || set.IsZero() {
		return time.Time{}, time.Time{}, apperrors.Domain(
			fmt.Sprintf("unable to calculate sun times for %s", date.Format("2006-01-02")), nil)
	}
	return rise.UTC(), set.UTC(), nil
}
