package likelihood

import (
	"gonum.org/v1/gonum/mat"
)

// SecondDifferenceMatrix builds the curvature penalty C = D'*D over n
// unfolding bins, where D is the discrete second-derivative operator with
// one-sided boundary rows: row 0 is (-1, 1, 0, ...), interior row i carries
// -2 on the diagonal and +1 on each neighbor, and the last row mirrors row 0
// at the far boundary. x'*C*x is the sum of squared second differences of x,
// so adding 0.5*tau*x'*C*x to a likelihood penalizes jagged spectra.
//
// The boundary rows are only well formed for n >= 3; callers guard that.
// The result is symmetric positive semi-definite, immutable by convention,
// and reusable across objective instances of the same dimension.
func SecondDifferenceMatrix(n int) *mat.SymDense {
	d := mat.NewDense(n, n, nil)
	d.Set(0, 0, -1)
	d.Set(0, 1, 1)
	for i := 1; i < n-1; i++ {
		d.Set(i, i-1, 1)
		d.Set(i, i, -2)
		d.Set(i, i+1, 1)
	}
	d.Set(n-1, n-1, -1)
	d.Set(n-1, n-2, 1)

	var c mat.Dense
	c.Mul(d.T(), d)

	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, c.At(i, j))
		}
	}
	return sym
}
