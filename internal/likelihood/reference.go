package likelihood

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ReferenceLLH re-derives the Poisson-Tikhonov value, gradient and Hessian
// with nothing but scalar loops over the raw response matrix. It carries no
// feasibility guard, no sign convention and no total-count prior: it exists
// as an independent, harder-to-get-wrong derivation for the vectorized
// StandardLLH to agree with, never for production use.
//
// EvaluateHesseMatrix recomputes the folded estimate inside the innermost
// loop, an O(n^3*m) cost. Validation-sized problems (tens of bins) only.
type ReferenceLLH struct {
	a    *mat.Dense
	vecG []float64
	c    *mat.SymDense
	tau  float64
}

// NewReferenceLLH builds the reference objective from a response matrix,
// observed counts and regularization strength. The curvature matrix is built
// with SecondDifferenceMatrix over the column count of a.
func NewReferenceLLH(a *mat.Dense, vecG []float64, tau float64) *ReferenceLLH {
	_, n := a.Dims()
	return &ReferenceLLH{a: a, vecG: vecG, c: SecondDifferenceMatrix(n), tau: tau}
}

// EvaluateLLH returns the negative log-likelihood plus curvature penalty.
func (r *ReferenceLLH) EvaluateLLH(f []float64) float64 {
	m, n := r.a.Dims()

	poisson := 0.0
	for i := 0; i < m; i++ {
		gEst := 0.0
		for j := 0; j < n; j++ {
			gEst += r.a.At(i, j) * f[j]
		}
		poisson += gEst - r.vecG[i]*math.Log(gEst)
	}

	reg := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			reg += r.c.At(i, j) * f[i] * f[j]
		}
	}
	reg *= 0.5 * r.tau

	return poisson + reg
}

// EvaluateGradient returns the gradient of EvaluateLLH, component by
// component.
func (r *ReferenceLLH) EvaluateGradient(f []float64) []float64 {
	m, n := r.a.Dims()

	grad := make([]float64, n)
	for k := 0; k < n; k++ {
		poisson := 0.0
		for i := 0; i < m; i++ {
			gEst := 0.0
			for j := 0; j < n; j++ {
				gEst += r.a.At(i, j) * f[j]
			}
			aik := r.a.At(i, k)
			poisson += aik - r.vecG[i]*aik/gEst
		}
		creg := 0.0
		for i := 0; i < n; i++ {
			creg += r.c.At(i, k) * f[i]
		}
		grad[k] = poisson + r.tau*creg
	}
	return grad
}

// EvaluateHesseMatrix returns the Hessian of EvaluateLLH.
func (r *ReferenceLLH) EvaluateHesseMatrix(f []float64) *mat.Dense {
	m, n := r.a.Dims()

	hess := mat.NewDense(n, n, nil)
	for k := 0; k < n; k++ {
		for l := 0; l < n; l++ {
			poisson := 0.0
			for i := 0; i < m; i++ {
				aik := r.a.At(i, k)
				ail := r.a.At(i, l)
				gEst := 0.0
				for j := 0; j < n; j++ {
					gEst += r.a.At(i, j) * f[j]
				}
				poisson += r.vecG[i] * aik * ail / (gEst * gEst)
			}
			hess.Set(k, l, poisson+r.tau*r.c.At(k, l))
		}
	}
	return hess
}
