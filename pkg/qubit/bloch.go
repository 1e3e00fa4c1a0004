package qubit

import (
	"errors"
	"fmt"
	"math/cmplx"
	"strconv"
	"strings"
)

// ErrUnknownProjection is returned by ParseProjection for unsupported names.
var ErrUnknownProjection = errors.New("unknown projection")

// Projection selects how a State is mapped onto the Bloch sphere.
type Projection string

const (
	// ProjectionFull is the standard Bloch vector.
	ProjectionFull Projection = "full"
	// ProjectionLegacy plots (Re a0, Re a1, 0).
	ProjectionLegacy Projection = "legacy"
)

// Projections lists the supported projections, default first.
func Projections() []Projection {
	return []Projection{ProjectionFull, ProjectionLegacy}
}

// ParseProjection resolves a projection name. Matching is case-insensitive.
func ParseProjection(name string) (Projection, error) {
	switch p := Projection(strings.ToLower(strings.TrimSpace(name))); p {
	case ProjectionFull, ProjectionLegacy:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProjection, name)
}

// Vector is a point on (or inside) the unit Bloch sphere.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Scale returns v multiplied by k.
func (v Vector) Scale(k float64) Vector {
	return Vector{X: canonical(v.X * k), Y: canonical(v.Y * k), Z: canonical(v.Z * k)}
}

// Project maps s onto the Bloch sphere. An unrecognised projection falls
// back to ProjectionFull.
func Project(s State, p Projection) Vector {
	if p == ProjectionLegacy {
		return Vector{
			X: canonical(real(s.A0)),
			Y: canonical(real(s.A1)),
			Z: 0,
		}
	}

	c := cmplx.Conj(s.A0) * s.A1
	return Vector{
		X: canonical(2 * real(c)),
		Y: canonical(2 * imag(c)),
		Z: canonical(abs2(s.A0) - abs2(s.A1)),
	}
}

// FormatCoordinate formats a vector coordinate for display with six
// significant digits, so rounding noise such as 0.9999999999999998 reads 1.
func FormatCoordinate(f float64) string {
	return strconv.FormatFloat(canonical(f), 'g', 6, 64)
}

// canonical folds negative zero into +0.
func canonical(f float64) float64 {
	if f == 0 {
		return 0
	}
	return f
}
