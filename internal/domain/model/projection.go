// Package model contains domain models passed between layers.
package model

import (
	"github.com/google/uuid"

	"github.com/okian/dime/internal/domain/projection"
)

// Projection is one completed projection request.
type Projection struct {
	ID     string            // correlation id, stable across logs and reports
	Inputs projection.Inputs // exactly what the engine saw
	Result projection.Result // every intermediate value
	Caps   projection.Caps   // caps in force when the result was computed
}

// NewProjection stamps a fresh ID on a computed result.
func NewProjection(in projection.Inputs, res projection.Result, caps projection.Caps) Projection {
	return Projection{
		ID:     uuid.NewString(),
		Inputs: in,
		Result: res,
		Caps:   caps,
	}
}
