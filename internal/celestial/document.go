package celestial

import (
	"fmt"
	"math"
)

type Document struct {
	DtMultiplier float64 `json:"dt_multiplier"`
	Bodies       []Body  `json:"bodies"`
}

func (d *Document) Validate() error {
	if math.IsNaN(d.DtMultiplier) || math.IsInf(d.DtMultiplier, 0) {
		return Invalid("dt_multiplier", d.DtMultiplier, "must be finite")
	}
	for i, b := range d.Bodies {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("body %d: %w", i, err)
		}
	}
	return nil
}

// Builder accumulates bodies in simulation input order.
type Builder struct {
	dt     float64
	bodies []Body
}

func NewBuilder(dtMultiplier float64) *Builder {
	return &Builder{dt: dtMultiplier, bodies: make([]Body, 0, 16)}
}

// Add validates b and appends it. Rejected bodies leave the builder unchanged.
func (b *Builder) Add(body Body) error {
	if err := body.Validate(); err != nil {
		return fmt.Errorf("body %d: %w", len(b.bodies), err)
	}
	b.bodies = append(b.bodies, body)
	return nil
}

func (b *Builder) Len() int { return len(b.bodies) }

func (b *Builder) SetDtMultiplier(dt float64) { b.dt = dt }

// Document returns a snapshot; later Adds do not affect it.
func (b *Builder) Document() *Document {
	bodies := make([]Body, len(b.bodies))
	copy(bodies, b.bodies)
	return &Document{DtMultiplier: b.dt, Bodies: bodies}
}
