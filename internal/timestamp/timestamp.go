// Package timestamp renders the current instant with a caller-supplied
// pattern, falling back to DefaultPattern when the pattern is empty.
package timestamp

import (
	"time"

	"github.com/lucax88x/datestamp/internal/clock"
	"github.com/lucax88x/datestamp/internal/phpdate"
)

const DefaultPattern = phpdate.DateTime

// Renderer is immutable and safe for concurrent use; every call samples the
// clock once.
type Renderer struct {
	clock    clock.Clock
	fallback string
}

func New(c clock.Clock) *Renderer {
	if c == nil {
		c = clock.NewSystemClock()
	}

	return &Renderer{
		clock:    c,
		fallback: DefaultPattern,
	}
}

// WithDefault returns a copy of r that falls back to pattern instead of
// DefaultPattern. An empty pattern keeps the current fallback.
func (r *Renderer) WithDefault(pattern string) *Renderer {
	if pattern == "" {
		return r
	}

	return &Renderer{
		clock:    r.clock,
		fallback: pattern,
	}
}

func (r *Renderer) Default() string {
	return r.fallback
}

func (r *Renderer) Render(pattern string) string {
	return r.RenderAt(pattern, r.clock.Now())
}

func (r *Renderer) RenderAt(pattern string, t time.Time) string {
	return phpdate.Format(r.resolve(pattern), t)
}

func (r *Renderer) resolve(pattern string) string {
	if pattern == "" {
		return r.fallback
	}
	return pattern
}

//nolint:gochecknoglobals // system clock renderer
var system = New(nil)

// Render formats the current local time.
func Render(pattern string) string {
	return system.Render(pattern)
}
