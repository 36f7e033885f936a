package configs

import "time"

// Display holds presentation settings.
type Display struct {
	// TimeZone is an IANA location used to render contract timestamps.
	TimeZone string `env:"TIME_ZONE" envDefault:"UTC"`
	// CarouselInterval is the auto-advance period of the home carousel.
	CarouselInterval time.Duration `env:"CAROUSEL_INTERVAL" envDefault:"5s"`
}

// Location resolves TimeZone, falling back to UTC when it is unknown.
func (d Display) Location() *time.Location {
	loc, err := time.LoadLocation(d.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}
