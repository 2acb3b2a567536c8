package dateparse

import "time"

type component struct {
	date  time.Time
	known map[Field]int
}

// NewComponent builds a Component from a resolved naive time and the set of
// fields the source text stated explicitly.
func NewComponent(date time.Time, known map[Field]int) Component {
	return &component{date: date, known: known}
}

func (c *component) Get(field Field) (int, bool) {
	v, ok := c.known[field]
	return v, ok
}

func (c *component) Date() time.Time {
	return c.date
}
