package model

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"gounfold/ports"
)

// LogScaleModel folds exp(x) through a fixed response matrix: candidates
// live in log-space, so the true spectrum is positive by construction. The
// mapping is nonlinear in the candidate, which keeps analytic derivative
// support switched off in consuming objectives.
type LogScaleModel struct {
	a    *mat.Dense
	m, n int
}

var _ ports.ForwardModel = (*LogScaleModel)(nil)

// NewLogScaleModel wraps an m x n response matrix for log-space candidates.
func NewLogScaleModel(a *mat.Dense) *LogScaleModel {
	m, n := a.Dims()
	return &LogScaleModel{a: a, m: m, n: n}
}

// DimF returns the number of true bins.
func (lm *LogScaleModel) DimF() int { return lm.n }

// DimG returns the number of observed bins.
func (lm *LogScaleModel) DimG() int { return lm.m }

// Evaluate maps the log-space candidate x to f = exp(x) and folds it.
func (lm *LogScaleModel) Evaluate(x []float64) (gEst, fOut, fReg []float64) {
	f := make([]float64, lm.n)
	for i, v := range x {
		f[i] = math.Exp(v)
	}
	g := mat.NewVecDense(lm.m, nil)
	g.MulVec(lm.a, mat.NewVecDense(lm.n, f))
	return g.RawVector().Data, f, f
}
