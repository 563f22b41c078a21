package model

import (
	"gonum.org/v1/gonum/mat"

	"gounfold/ports"
)

// LinearModel folds a true spectrum through a fixed m x n response matrix.
type LinearModel struct {
	a    *mat.Dense
	m, n int
}

var _ ports.LinearForwardModel = (*LinearModel)(nil)

// NewLinearModel wraps an m x n response matrix (rows = observed bins,
// columns = true bins). The matrix is shared, not copied.
func NewLinearModel(a *mat.Dense) *LinearModel {
	m, n := a.Dims()
	return &LinearModel{a: a, m: m, n: n}
}

// NewLinearModelFromCounts builds a column-normalized response matrix from a
// joint count matrix: counts[i][j] is the number of events generated in true
// bin j and observed in bin i. Columns with no events stay zero.
func NewLinearModelFromCounts(counts [][]float64) *LinearModel {
	m := len(counts)
	n := len(counts[0])
	a := mat.NewDense(m, n, nil)
	for j := 0; j < n; j++ {
		colTotal := 0.0
		for i := 0; i < m; i++ {
			colTotal += counts[i][j]
		}
		if colTotal == 0 {
			continue
		}
		for i := 0; i < m; i++ {
			a.Set(i, j, counts[i][j]/colTotal)
		}
	}
	return NewLinearModel(a)
}

// DimF returns the number of true bins.
func (lm *LinearModel) DimF() int { return lm.n }

// DimG returns the number of observed bins.
func (lm *LinearModel) DimG() int { return lm.m }

// Response returns the response matrix A.
func (lm *LinearModel) Response() *mat.Dense { return lm.a }

// Evaluate computes gEst = A*f. The candidate itself is what regularization
// applies to.
func (lm *LinearModel) Evaluate(f []float64) (gEst, fOut, fReg []float64) {
	g := mat.NewVecDense(lm.m, nil)
	g.MulVec(lm.a, mat.NewVecDense(lm.n, f))
	return g.RawVector().Data, f, f
}
