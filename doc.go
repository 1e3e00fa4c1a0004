/*
Package bloch is a single-qubit gate explorer: it applies one of seven gates
to a qubit prepared in |0> and renders the result on a Bloch sphere.

Every interaction is one pure render pass:

	GateSymbol -> QuantumState -> BlochVector -> Scene

The Engine holds only immutable configuration, so one instance can serve
any number of concurrent requests. Transports (HTTP, MCP, the CLI) parse
user input with gate.Parse and qubit.ParseProjection before calling Render.

# Usage

	eng, err := bloch.New(bloch.WithProjection(qubit.ProjectionFull))
	if err != nil {
		log.Fatal(err)
	}

	scene, err := eng.Render(ctx, bloch.Request{Gate: gate.H})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(scene.Readout())

The Scene carries the gate description, the evaluated state, the Bloch
vector, a Plotly figure of the sphere and the circuit diagram in both text
and PNG form.
*/
package bloch
