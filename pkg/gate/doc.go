/*
Package gate is the static catalog of single-qubit gates offered by the
explorer: Identity, the three Pauli gates, Hadamard, S and T.

Each Entry carries the gate's display name, a markdown description and the
unitary it represents. The catalog is a fixed table; lookups on a valid
Symbol never fail. Only Parse can reject input, which makes it the function
to call at the boundaries (HTTP, CLI, MCP).
*/
package gate
