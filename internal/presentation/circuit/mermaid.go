package circuit

import (
	"fmt"
	"strings"

	"github.com/aretw0/bloch/pkg/gate"
)

// Mermaid produces a left-to-right Mermaid flowchart of the circuit:
// - Input |0>: ((Circle))
// - Gate: [Rectangle], filled with its family colour
// - Output state: [/Parallelogram/]
// The identity gate connects the input straight to the output.
func Mermaid(sym gate.Symbol) string {
	entry := gate.MustLookup(sym)

	var sb strings.Builder
	sb.WriteString("graph LR\n")
	sb.WriteString("    q0((\"|0>\"))\n")
	sb.WriteString("    psi[/\"psi\"/]\n")

	if sym == gate.I {
		sb.WriteString("    q0 --> psi\n")
		return sb.String()
	}

	id := "g_" + sym.String()
	sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", id, sym))
	sb.WriteString(fmt.Sprintf("    q0 --> %s --> psi\n", id))

	if c, ok := familyFill[entry.Family]; ok {
		class := strings.ReplaceAll(string(entry.Family), "-", "_")
		sb.WriteString(fmt.Sprintf("    classDef %s fill:#%02x%02x%02x,stroke:#000,stroke-width:2px,color:#000;\n", class, c.R, c.G, c.B))
		sb.WriteString(fmt.Sprintf("    class %s %s;\n", id, class))
	}
	return sb.String()
}
