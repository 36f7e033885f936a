package domain

import "time"

// Slide is one promotional carousel entry.
type Slide struct {
	Title       string
	Description string
	ImageSrc    string
}

// DefaultSlides are the fixed promotional slides of the home page.
var DefaultSlides = []Slide{
	{
		Title:       "Save Lives Today",
		Description: "Help fund critical medical treatments for those who can't afford them",
		ImageSrc:    "/static/images/carousel/save_lives.svg",
	},
	{
		Title:       "Feed the Hungry",
		Description: "Support food banks and meal programs for vulnerable communities",
		ImageSrc:    "/static/images/carousel/feed_the_hungry.svg",
	},
	{
		Title:       "Children's Emergency Fund",
		Description: "Provide shelter, care, and support for children in crisis",
		ImageSrc:    "/static/images/carousel/children.svg",
	},
	{
		Title:       "Disaster Relief",
		Description: "Deliver immediate aid to communities affected by natural disasters",
		ImageSrc:    "/static/images/carousel/disaster_relief.svg",
	},
}

// Carousel is a fixed slide set advancing on a timer.
type Carousel struct {
	Slides   []Slide
	Interval time.Duration
}

// NewCarousel returns a carousel over slides. A non-positive interval falls
// back to five seconds.
func NewCarousel(slides []Slide, interval time.Duration) Carousel {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return Carousel{Slides: slides, Interval: interval}
}

// Normalize wraps i into the slide range.
func (c Carousel) Normalize(i int) int {
	n := len(c.Slides)
	if n == 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Next returns the slide after i.
func (c Carousel) Next(i int) int {
	return c.Normalize(i + 1)
}

// RefreshSeconds is the auto-advance period rounded up to whole seconds,
// as used by a meta refresh.
func (c Carousel) RefreshSeconds() int {
	secs := int((c.Interval + time.Second - 1) / time.Second)
	return max(secs, 1)
}
