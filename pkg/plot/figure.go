// Package plot builds the Plotly figure for the Bloch scene. Rendering happens
// client side in plotly.js; this package only produces the figure document.
package plot

import (
	"math"

	"github.com/aretw0/bloch/pkg/qubit"
	"gonum.org/v1/gonum/floats"
)

// Sphere configures the reference surface drawn behind the vector.
type Sphere struct {
	Radius     float64
	Resolution int
	ColorScale string
	Opacity    float64
	// ScaleVector stretches the plotted vector to the sphere radius.
	ScaleVector bool
}

// DefaultSphere returns the sphere drawn by the web page: radius 1.5, a
// 100x100 grid and a translucent orange surface.
func DefaultSphere() Sphere {
	return Sphere{
		Radius:     1.5,
		Resolution: 100,
		ColorScale: "Oranges",
		Opacity:    0.5,
	}
}

// Figure is a Plotly figure: a list of traces plus a layout.
// It serialises directly to the object plotly.js expects.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is a single Plotly trace. Only the fields used by the Bloch scene
// are modelled.
type Trace struct {
	Type       string   `json:"type"`
	Name       string   `json:"name,omitempty"`
	Mode       string   `json:"mode,omitempty"`
	X          any      `json:"x"`
	Y          any      `json:"y"`
	Z          any      `json:"z"`
	Marker     *Marker  `json:"marker,omitempty"`
	Line       *Line    `json:"line,omitempty"`
	ColorScale string   `json:"colorscale,omitempty"`
	Opacity    *float64 `json:"opacity,omitempty"`
	ShowScale  *bool    `json:"showscale,omitempty"`
}

type Marker struct {
	Size  int    `json:"size"`
	Color string `json:"color"`
}

type Line struct {
	Width int `json:"width"`
}

type Layout struct {
	Scene    Scene `json:"scene"`
	AutoSize bool  `json:"autosize"`
}

type Scene struct {
	XAxis      Axis   `json:"xaxis"`
	YAxis      Axis   `json:"yaxis"`
	ZAxis      Axis   `json:"zaxis"`
	AspectMode string `json:"aspectmode"`
}

type Axis struct {
	Title AxisTitle `json:"title"`
}

type AxisTitle struct {
	Text string `json:"text"`
}

// NewFigure builds the Bloch scene for v: the vector trace first, then the
// translucent sphere.
func NewFigure(v qubit.Vector, sphere Sphere) Figure {
	if sphere.ScaleVector {
		v = v.Scale(sphere.Radius)
	}
	return Figure{
		Data: []Trace{
			vectorTrace(v),
			sphereTrace(sphere),
		},
		Layout: Layout{
			AutoSize: true,
			Scene: Scene{
				XAxis:      Axis{Title: AxisTitle{Text: "X"}},
				YAxis:      Axis{Title: AxisTitle{Text: "Y"}},
				ZAxis:      Axis{Title: AxisTitle{Text: "Z"}},
				AspectMode: "data",
			},
		},
	}
}

func vectorTrace(v qubit.Vector) Trace {
	return Trace{
		Type:   "scatter3d",
		Name:   "Bloch Vector",
		Mode:   "lines+markers",
		X:      []float64{0, v.X},
		Y:      []float64{0, v.Y},
		Z:      []float64{0, v.Z},
		Marker: &Marker{Size: 10, Color: "red"},
		Line:   &Line{Width: 5},
	}
}

func sphereTrace(s Sphere) Trace {
	x, y, z := SphereGrid(s.Radius, s.Resolution)
	hide := false
	opacity := s.Opacity
	return Trace{
		Type:       "surface",
		X:          x,
		Y:          y,
		Z:          z,
		ColorScale: s.ColorScale,
		Opacity:    &opacity,
		ShowScale:  &hide,
	}
}

// SphereGrid samples a sphere of radius r on an n×n grid, u over [0, 2π]
// (rows) and v over [0, π] (columns).
func SphereGrid(r float64, n int) (x, y, z [][]float64) {
	if n < 2 {
		n = 2
	}
	u := floats.Span(make([]float64, n), 0, 2*math.Pi)
	v := floats.Span(make([]float64, n), 0, math.Pi)

	x = make([][]float64, n)
	y = make([][]float64, n)
	z = make([][]float64, n)
	for i := range u {
		x[i] = make([]float64, n)
		y[i] = make([]float64, n)
		z[i] = make([]float64, n)
		cu, su := math.Cos(u[i]), math.Sin(u[i])
		for j := range v {
			sv := math.Sin(v[j])
			x[i][j] = r * cu * sv
			y[i][j] = r * su * sv
			z[i][j] = r * math.Cos(v[j])
		}
	}
	return x, y, z
}
