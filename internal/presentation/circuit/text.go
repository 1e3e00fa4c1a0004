// Package circuit draws the one-qubit circuit for a catalog gate, either as a
// line of text for terminals or as a PNG with a transparent background.
package circuit

import (
	"fmt"

	"github.com/aretw0/bloch/pkg/gate"
)

const wireSegment = "──"

// Text returns a single-line diagram such as "q: ──[H]──".
// The identity gate is drawn as a bare wire of the same width.
func Text(sym gate.Symbol) string {
	if sym == gate.I {
		return "q: " + wireSegment + "───" + wireSegment
	}
	return fmt.Sprintf("q: %s[%s]%s", wireSegment, sym, wireSegment)
}
