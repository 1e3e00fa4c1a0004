package bloch

import (
	"fmt"
	"strings"

	"github.com/aretw0/bloch/pkg/gate"
	"github.com/aretw0/bloch/pkg/plot"
	"github.com/aretw0/bloch/pkg/qubit"
)

// Scene is everything displayed for one gate selection.
type Scene struct {
	Gate        gate.Symbol      `json:"gate"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Family      gate.Family      `json:"family"`
	Projection  qubit.Projection `json:"projection"`
	State       qubit.State      `json:"state"`
	Vector      qubit.Vector     `json:"vector"`
	Figure      plot.Figure      `json:"figure"`
	Circuit     string           `json:"circuit"`
	CircuitPNG  []byte           `json:"circuit_png,omitempty"`
}

// Readout returns the x, y and z lines shown next to the sphere.
func (s *Scene) Readout() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "x: %s\n", qubit.FormatCoordinate(s.Vector.X))
	fmt.Fprintf(&sb, "y: %s\n", qubit.FormatCoordinate(s.Vector.Y))
	fmt.Fprintf(&sb, "z: %s\n", qubit.FormatCoordinate(s.Vector.Z))
	return sb.String()
}

// Markdown renders the description section of the scene.
func (s *Scene) Markdown() string {
	return gate.Entry{Name: s.Name, Description: s.Description}.Markdown()
}
