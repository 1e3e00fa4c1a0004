package gate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownGate is returned by Parse when the input names no catalog gate.
var ErrUnknownGate = errors.New("unknown gate")

// Symbol identifies a gate by its conventional one-letter name.
type Symbol string

const (
	I Symbol = "I"
	X Symbol = "X"
	Y Symbol = "Y"
	Z Symbol = "Z"
	H Symbol = "H"
	S Symbol = "S"
	T Symbol = "T"
)

// All returns every symbol in selector order.
func All() []Symbol {
	return []Symbol{I, X, Y, Z, H, S, T}
}

// Parse resolves user input such as " h " into a Symbol.
func Parse(input string) (Symbol, error) {
	sym := Symbol(strings.ToUpper(strings.TrimSpace(input)))
	if _, ok := catalog[sym]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownGate, input)
	}
	return sym, nil
}

// Valid reports whether s is in the catalog.
func (s Symbol) Valid() bool {
	_, ok := catalog[s]
	return ok
}

func (s Symbol) String() string {
	return string(s)
}
