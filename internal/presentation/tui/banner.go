package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/bloch/pkg/qubit"
	"github.com/muesli/termenv"
)

// PrintBanner writes the application banner with the version to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text, color string
	}{
		{"  ___  _         _    ", "#818cf8"},
		{" | _ )| | ___  __| |_  ", "#a78bfa"},
		{" | _ \\| |/ _ \\/ _| ' \\ ", "#c084fc"},
		{" |___/|_|\\___/\\__|_||_|", "#e879f9"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintf(w, " %s\n\n", out.String("v"+strings.TrimSpace(version)).Faint())
}

// PrintReadout writes the x, y, z lines with the axis names highlighted.
func PrintReadout(w io.Writer, v qubit.Vector) {
	out := termenv.NewOutput(w)
	axes := []struct {
		name  string
		value float64
		color string
	}{
		{"x", v.X, "#f87171"},
		{"y", v.Y, "#4ade80"},
		{"z", v.Z, "#60a5fa"},
	}
	for _, a := range axes {
		fmt.Fprintf(w, "%s: %s\n", out.String(a.name).Bold().Foreground(out.Color(a.color)), qubit.FormatCoordinate(a.value))
	}
}
