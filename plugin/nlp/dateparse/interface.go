// Package dateparse wraps a natural-language date parser behind a stable
// contract. A parse yields structured results whose components expose which
// calendar fields the text stated explicitly, alongside the fully resolved
// naive time, so callers can rebuild the instant in another timezone without
// guessing which parts were inferred from the base time.
package dateparse

import (
	"context"
	"time"
)

// Field identifies one calendar component of a parsed date.
type Field int

const (
	FieldYear Field = iota
	FieldMonth
	FieldDay
	FieldHour
	FieldMinute
	FieldSecond
)

// Component is one endpoint of a parsed date expression.
type Component interface {
	// Get returns the value of a field and whether the source text stated
	// it explicitly.
	Get(field Field) (int, bool)
	// Date returns the fully resolved naive time for this endpoint.
	Date() time.Time
}

// Result is a single parsed date expression: a start and an optional end.
type Result struct {
	Start Component
	End   Component
}

// Parser parses natural-language date expressions relative to a base time.
// Implementations return an empty slice and a nil error when the text
// contains no recognizable date.
type Parser interface {
	Parse(ctx context.Context, text string, base time.Time) ([]Result, error)
}
