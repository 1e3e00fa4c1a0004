/*
Package qubit models the pure state of a single qubit and its Bloch-sphere
projection.

A State holds the two complex amplitudes of |0> and |1>. States are produced
by applying a 2x2 unitary Matrix to the fixed initial state |0> and are then
projected onto the sphere as a Vector.

# Projections

Two projections are supported:

  - ProjectionFull: the standard Bloch vector,
    x = 2 Re(conj(a0) a1), y = 2 Im(conj(a0) a1), z = |a0|^2 - |a1|^2.
  - ProjectionLegacy: x = Re(a0), y = Re(a1), z = 0. This is the simplified
    mapping used by earlier versions of the demo and is kept for
    compatibility. Phase gates are indistinguishable from Identity under it.

Everything in this package is a pure function of its inputs.
*/
package qubit
