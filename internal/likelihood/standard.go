package likelihood

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"gounfold/domain/spectrum"
	"gounfold/ports"
)

// StandardConfig holds the objective tunables frozen at Initialize.
type StandardConfig struct {
	// Tau weighs the curvature penalty against the Poisson term. Zero
	// disables regularization.
	Tau float64
	// NPrior adds a Poisson-style penalty pulling the total unfolded yield
	// toward the total observed count.
	NPrior bool
	// NegLLH selects the negative log-likelihood sign convention (factor +1,
	// suitable for minimizers). False flips value, gradient and Hessian.
	NegLLH bool
}

// DefaultStandardConfig returns the production configuration: negative
// log-likelihood, no total-count prior.
func DefaultStandardConfig(tau float64) StandardConfig {
	return StandardConfig{Tau: tau, NegLLH: true}
}

// StandardLLH is the production Poisson-Tikhonov objective: negative log
// Poisson likelihood of the observed counts under the folded candidate, plus
// a curvature penalty, plus the optional total-count prior.
//
// Every evaluation is a pure function of the candidate given the frozen
// initialization state, so one initialized instance may be evaluated from
// many goroutines at once.
type StandardLLH struct {
	base

	vecG   spectrum.Counts
	model  ports.ForwardModel
	linear ports.LinearForwardModel // non-nil iff derivatives are defined
	c      *mat.SymDense
	cfg    StandardConfig
	total  float64 // N = sum(vecG)
	factor float64
	n      int
}

var _ ports.Objective = (*StandardLLH)(nil)

// NewStandardLLH returns an uninitialized objective.
func NewStandardLLH() *StandardLLH {
	return &StandardLLH{base: newBase("StandardLLH")}
}

// Initialize freezes the observed counts, forward model, curvature matrix
// and configuration. Derivative capabilities switch on only when the model
// is a true linear forward model.
//
// Shape consistency between the model, c and vecG is the caller's
// responsibility; mismatches surface as panics from the matrix operations.
func (s *StandardLLH) Initialize(vecG spectrum.Counts, fm ports.ForwardModel, c *mat.SymDense, cfg StandardConfig) {
	s.vecG = vecG
	s.model = fm
	s.c = c
	s.cfg = cfg
	s.n = fm.DimF()
	s.total = vecG.Total()
	s.factor = 1
	if !cfg.NegLLH {
		s.factor = -1
	}
	if lm, ok := fm.(ports.LinearForwardModel); ok {
		s.linear = lm
		s.gradientDefined = true
		s.hesseDefined = true
	}
	s.markInitialized()
}

// Evaluate returns the objective value at f. A candidate with negative
// predicted or true counts is infeasible and yields +Inf under the negative
// log-likelihood convention (-Inf otherwise) instead of an error.
func (s *StandardLLH) Evaluate(f []float64) (float64, error) {
	if err := s.checkEvaluate(); err != nil {
		return 0, err
	}
	gEst, fOut, fReg := s.model.Evaluate(f)
	if anyNegative(gEst) || anyNegative(fOut) {
		return math.Inf(1) * s.factor, nil
	}

	poisson := 0.0
	for i, g := range gEst {
		poisson += g - s.vecG[i]*math.Log(g)
	}
	reg := 0.5 * s.cfg.Tau * quadForm(s.c, fReg)
	if s.cfg.NPrior {
		sumF := floats.Sum(fOut)
		reg += sumF - s.total*math.Log(sumF)
	}
	return (poisson + reg) * s.factor, nil
}

// EvaluateGradient returns the analytic gradient at f:
// columnsums(A) - A'*(g/gEst) for the Poisson term, tau*C*fReg for the
// regularization, the sum scaled by the sign factor.
func (s *StandardLLH) EvaluateGradient(f []float64) ([]float64, error) {
	if err := s.checkGradient(); err != nil {
		return nil, err
	}
	gEst, _, fReg := s.model.Evaluate(f)
	a := s.linear.Response()
	m, n := a.Dims()

	ratio := make([]float64, m)
	for i := range ratio {
		ratio[i] = s.vecG[i] / gEst[i]
	}

	colSum := mat.NewVecDense(n, nil)
	colSum.MulVec(a.T(), ones(m))
	weighted := mat.NewVecDense(n, nil)
	weighted.MulVec(a.T(), mat.NewVecDense(m, ratio))
	creg := mat.NewVecDense(n, nil)
	creg.MulVec(s.c, mat.NewVecDense(n, fReg))

	grad := make([]float64, n)
	for j := range grad {
		grad[j] = (colSum.AtVec(j) - weighted.AtVec(j) + s.cfg.Tau*creg.AtVec(j)) * s.factor
	}
	return grad, nil
}

// EvaluateHesseMatrix returns the analytic Hessian at f:
// A'*diag(g/gEst^2)*A plus tau*C, scaled by the sign factor.
func (s *StandardLLH) EvaluateHesseMatrix(f []float64) (*mat.Dense, error) {
	if err := s.checkHesse(); err != nil {
		return nil, err
	}
	gEst, _, _ := s.model.Evaluate(f)
	a := s.linear.Response()
	m, _ := a.Dims()

	w := make([]float64, m)
	for i := range w {
		w[i] = s.vecG[i] / (gEst[i] * gEst[i])
	}

	var wa mat.Dense
	wa.Mul(mat.NewDiagDense(m, w), a)
	var h mat.Dense
	h.Mul(a.T(), &wa)

	var reg mat.Dense
	reg.Scale(s.cfg.Tau, s.c)
	h.Add(&h, &reg)
	h.Scale(s.factor, &h)
	return &h, nil
}

func anyNegative(xs []float64) bool {
	for _, x := range xs {
		if x < 0 {
			return true
		}
	}
	return false
}

func quadForm(c *mat.SymDense, x []float64) float64 {
	v := mat.NewVecDense(len(x), x)
	return mat.Inner(v, c, v)
}

func ones(n int) *mat.VecDense {
	v := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		v.SetVec(i, 1)
	}
	return v
}
