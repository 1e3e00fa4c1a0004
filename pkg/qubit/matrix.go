package qubit

import "math/cmplx"

// Matrix is a 2x2 complex matrix in row-major order.
type Matrix [2][2]complex128

// Identity2 is the 2x2 identity matrix.
var Identity2 = Matrix{
	{1, 0},
	{0, 1},
}

// Apply returns m·s.
func (m Matrix) Apply(s State) State {
	return State{
		A0: m[0][0]*s.A0 + m[0][1]*s.A1,
		A1: m[1][0]*s.A0 + m[1][1]*s.A1,
	}
}

// Mul returns the product m·n.
func (m Matrix) Mul(n Matrix) Matrix {
	var out Matrix
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j]
		}
	}
	return out
}

// Dagger returns the conjugate transpose of m.
func (m Matrix) Dagger() Matrix {
	return Matrix{
		{cmplx.Conj(m[0][0]), cmplx.Conj(m[1][0])},
		{cmplx.Conj(m[0][1]), cmplx.Conj(m[1][1])},
	}
}

// IsUnitary reports whether m·m† equals the identity within tol.
func (m Matrix) IsUnitary(tol float64) bool {
	p := m.Mul(m.Dagger())
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if cmplx.Abs(p[i][j]-Identity2[i][j]) > tol {
				return false
			}
		}
	}
	return true
}
