package gate

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/aretw0/bloch/pkg/qubit"
)

// Family groups gates for diagram styling.
type Family string

const (
	FamilyIdentity    Family = "identity"
	FamilyPauli       Family = "pauli"
	FamilyClifford    Family = "clifford"
	FamilyNonClifford Family = "non-clifford"
)

// Entry describes one catalog gate.
type Entry struct {
	Symbol      Symbol       `json:"symbol"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Family      Family       `json:"family"`
	Unitary     qubit.Matrix `json:"-"`
}

var (
	invSqrt2 = complex(1/math.Sqrt2, 0)
	eighth   = cmplx.Exp(complex(0, math.Pi/4))
)

var catalog = map[Symbol]Entry{
	I: {
		Symbol: I,
		Name:   "Identity Gate (No change)",
		Description: "The Identity gate, denoted as I, does not alter the state of the qubit. " +
			"It is effectively a 'do nothing' operation, leaving the qubit in its current state.",
		Family:  FamilyIdentity,
		Unitary: qubit.Identity2,
	},
	X: {
		Symbol: X,
		Name:   "Pauli-X Gate (Bit-flip)",
		Description: "The Pauli-X gate, represented as X, flips the state of the qubit, " +
			"changing |0> to |1> and |1> to |0>. It's also known as the 'bit-flip' gate.",
		Family:  FamilyPauli,
		Unitary: qubit.Matrix{{0, 1}, {1, 0}},
	},
	Y: {
		Symbol: Y,
		Name:   "Pauli-Y Gate",
		Description: "The Pauli-Y gate, denoted as Y, performs a combination of bit-flip and phase-flip operations. " +
			"It transforms |0> to i|1> and |1> to -i|0>. It is often used in various quantum algorithms.",
		Family:  FamilyPauli,
		Unitary: qubit.Matrix{{0, -1i}, {1i, 0}},
	},
	Z: {
		Symbol: Z,
		Name:   "Pauli-Z Gate (Phase-flip)",
		Description: "The Pauli-Z gate, represented as Z, only affects the phase of the qubit. " +
			"It leaves |0> unchanged and adds a phase of π (180 degrees) to |1>. It's the 'phase-flip' gate.",
		Family:  FamilyPauli,
		Unitary: qubit.Matrix{{1, 0}, {0, -1}},
	},
	H: {
		Symbol: H,
		Name:   "Hadamard Gate",
		Description: "The Hadamard gate, denoted as H, creates superposition. It maps |0> to (|0> + |1>)/√2 " +
			"and |1> to (|0> - |1>)/√2, effectively putting the qubit into an equal superposition state.",
		Family:  FamilyClifford,
		Unitary: qubit.Matrix{{invSqrt2, invSqrt2}, {invSqrt2, -invSqrt2}},
	},
	S: {
		Symbol: S,
		Name:   "S Gate (Phase Gate)",
		Description: "The S gate, represented as S, applies a 90-degree phase shift to |1>. " +
			"It transforms |0> to |0> and |1> to i|1>. It is commonly used for creating quantum interference.",
		Family:  FamilyClifford,
		Unitary: qubit.Matrix{{1, 0}, {0, 1i}},
	},
	T: {
		Symbol: T,
		Name:   "T Gate (T Phase Gate)",
		Description: "The T gate, denoted as T, introduces a π/4 (45-degree) phase shift to |1>. " +
			"It transforms |0> to |0> and |1> to e^(iπ/4)|1>. It's important in quantum algorithms like Shor's.",
		Family:  FamilyNonClifford,
		Unitary: qubit.Matrix{{1, 0}, {0, eighth}},
	},
}

// Lookup returns the catalog entry for s.
func Lookup(s Symbol) (Entry, bool) {
	e, ok := catalog[s]
	return e, ok
}

// MustLookup is like Lookup but panics when s is not a catalog symbol.
// Symbols obtained from Parse or All are always present.
func MustLookup(s Symbol) Entry {
	e, ok := catalog[s]
	if !ok {
		panic(fmt.Sprintf("gate: symbol %q is not in the catalog", string(s)))
	}
	return e
}

// Catalog returns all entries in selector order.
func Catalog() []Entry {
	syms := All()
	out := make([]Entry, len(syms))
	for i, s := range syms {
		out[i] = catalog[s]
	}
	return out
}

// Markdown renders the entry as a short markdown section.
func (e Entry) Markdown() string {
	return fmt.Sprintf("## %s\n\n%s\n", e.Name, e.Description)
}
