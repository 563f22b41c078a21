package ports

import (
	"gonum.org/v1/gonum/mat"
)

// ForwardModel maps a candidate true spectrum onto its expected observed
// counts. Evaluate returns the folded estimate gEst, the (possibly
// processed) candidate f, and the vector fReg that regularization applies
// to. Implementations must be pure: no state mutation during Evaluate.
type ForwardModel interface {
	// DimF is the number of true (unfolding) bins.
	DimF() int
	// DimG is the number of observed bins.
	DimG() int
	Evaluate(f []float64) (gEst, fOut, fReg []float64)
}

// LinearForwardModel marks models whose Evaluate is a plain response-matrix
// multiply. Only this capability unlocks analytic derivatives in the
// objectives that consume the model.
type LinearForwardModel interface {
	ForwardModel
	// Response exposes the m x n response matrix A
	// (rows = observed bins, columns = true bins).
	Response() *mat.Dense
}
