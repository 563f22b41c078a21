package ports

import (
	"gonum.org/v1/gonum/mat"
)

// Objective is the minimal surface an external minimizer or sampler needs to
// drive an unfolding estimate. Once initialized, implementations are pure
// functions of the candidate spectrum and safe for concurrent use.
//
// Infeasible candidates yield a signed infinity from Evaluate rather than an
// error, so gradient-free and gradient-based drivers alike can treat them as
// "reject this point".
type Objective interface {
	Evaluate(f []float64) (float64, error)
	EvaluateGradient(f []float64) ([]float64, error)
	EvaluateHesseMatrix(f []float64) (*mat.Dense, error)

	// GradientDefined reports whether EvaluateGradient is supported for the
	// current configuration.
	GradientDefined() bool
	// HesseMatrixDefined reports whether EvaluateHesseMatrix is supported for
	// the current configuration.
	HesseMatrixDefined() bool
}
