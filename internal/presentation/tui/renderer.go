// Package tui holds terminal presentation helpers: markdown rendering and
// coloured output.
package tui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// Renderer transforms markdown for display.
type Renderer func(string) (string, error)

// NewRenderer returns a Renderer backed by glamour.
// It detects light/dark backgrounds automatically and wraps at width columns.
func NewRenderer(width int) (Renderer, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return r.Render, nil
}

// Plain is the identity Renderer, used when output is not a terminal.
func Plain(markdown string) (string, error) {
	return markdown, nil
}

// ForStdout picks glamour when stdout is a terminal and Plain otherwise.
func ForStdout(width int) Renderer {
	if !IsTerminal(os.Stdout) {
		return Plain
	}
	r, err := NewRenderer(width)
	if err != nil {
		return Plain
	}
	return r
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
