package qubit

import (
	"encoding/json"
	"fmt"
	"math"
)

// Tolerance is the absolute error allowed when checking normalisation.
const Tolerance = 1e-9

// State is a single-qubit pure state a0|0> + a1|1>.
type State struct {
	A0 complex128
	A1 complex128
}

// Zero returns |0>, the initial state of every render.
func Zero() State {
	return State{A0: 1, A1: 0}
}

// Evaluate applies the unitary m to |0>.
func Evaluate(m Matrix) State {
	return m.Apply(Zero())
}

// Norm returns |a0|^2 + |a1|^2.
func (s State) Norm() float64 {
	return abs2(s.A0) + abs2(s.A1)
}

// IsNormalized reports whether the state norm is 1 within Tolerance.
func (s State) IsNormalized() bool {
	return math.Abs(s.Norm()-1) <= Tolerance
}

// Amplitudes returns the state as JSON-friendly amplitude pairs, |0> first.
func (s State) Amplitudes() []Amplitude {
	return []Amplitude{newAmplitude(s.A0), newAmplitude(s.A1)}
}

// MarshalJSON encodes the state as its amplitude pair.
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Amplitudes())
}

// UnmarshalJSON decodes an amplitude pair produced by MarshalJSON.
func (s *State) UnmarshalJSON(data []byte) error {
	var amps []Amplitude
	if err := json.Unmarshal(data, &amps); err != nil {
		return err
	}
	if len(amps) != 2 {
		return fmt.Errorf("qubit state needs 2 amplitudes, got %d", len(amps))
	}
	s.A0, s.A1 = amps[0].Complex(), amps[1].Complex()
	return nil
}

// String formats the state in ket notation, e.g. "(0.7071+0i)|0> + (0.7071+0i)|1>".
func (s State) String() string {
	return fmt.Sprintf("%s|0> + %s|1>", formatComplex(s.A0), formatComplex(s.A1))
}

// Amplitude is a complex amplitude split into its real and imaginary parts.
type Amplitude struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

func newAmplitude(c complex128) Amplitude {
	return Amplitude{Re: canonical(real(c)), Im: canonical(imag(c))}
}

// Complex converts the amplitude back to complex128.
func (a Amplitude) Complex() complex128 {
	return complex(a.Re, a.Im)
}

func abs2(c complex128) float64 {
	return real(c)*real(c) + imag(c)*imag(c)
}

func formatComplex(c complex128) string {
	re, im := canonical(real(c)), canonical(imag(c))
	sign := "+"
	if im < 0 {
		sign = "-"
		im = -im
	}
	return fmt.Sprintf("(%.4g%s%.4gi)", re, sign, im)
}
