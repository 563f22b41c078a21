package likelihood

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"gounfold/adapters/model"
	"gounfold/domain/spectrum"
)

// The vectorized StandardLLH must reproduce the scalar loop re-derivation to
// numeric tolerance: same value, gradient and Hessian for a feasible
// candidate under the negative log-likelihood convention.

const crossTol = 1e-8

func assertClose(t *testing.T, want, got float64, what string) {
	t.Helper()
	assert.InDelta(t, want, got, crossTol*math.Max(1, math.Abs(want)), what)
}

func crossCheckFixture() (*mat.Dense, spectrum.Counts, []float64) {
	// 6 observed bins folding 4 true bins, columns normalized the way a
	// simulated response comes out.
	a := mat.NewDense(6, 4, []float64{
		0.60, 0.10, 0.02, 0.01,
		0.25, 0.55, 0.10, 0.03,
		0.10, 0.20, 0.55, 0.10,
		0.03, 0.10, 0.20, 0.50,
		0.01, 0.04, 0.10, 0.25,
		0.01, 0.01, 0.03, 0.11,
	})
	vecG := spectrum.Counts{120, 180, 170, 140, 70, 25}
	f := []float64{150, 200, 160, 90}
	return a, vecG, f
}

func TestStandardMatchesReference(t *testing.T) {
	for _, tau := range []float64{0, 0.7, 3.2} {
		a, vecG, f := crossCheckFixture()

		std := NewStandardLLH()
		std.Initialize(vecG, model.NewLinearModel(a), SecondDifferenceMatrix(4), DefaultStandardConfig(tau))
		ref := NewReferenceLLH(a, vecG, tau)

		gotV, err := std.Evaluate(f)
		require.NoError(t, err)
		assertClose(t, ref.EvaluateLLH(f), gotV, "value")

		gotG, err := std.EvaluateGradient(f)
		require.NoError(t, err)
		wantG := ref.EvaluateGradient(f)
		require.Len(t, gotG, len(wantG))
		for j := range wantG {
			assertClose(t, wantG[j], gotG[j], "gradient component")
		}

		gotH, err := std.EvaluateHesseMatrix(f)
		require.NoError(t, err)
		wantH := ref.EvaluateHesseMatrix(f)
		rows, cols := wantH.Dims()
		gr, gc := gotH.Dims()
		require.Equal(t, rows, gr)
		require.Equal(t, cols, gc)
		for k := 0; k < rows; k++ {
			for l := 0; l < cols; l++ {
				assertClose(t, wantH.At(k, l), gotH.At(k, l), "hessian entry")
			}
		}
	}
}

// TestStandardMatchesReferenceFromCounts repeats the cross-check with a
// response matrix built from a joint count matrix, the way responses arise
// from simulation.
func TestStandardMatchesReferenceFromCounts(t *testing.T) {
	counts := [][]float64{
		{120, 20, 5, 2},
		{50, 110, 20, 6},
		{20, 40, 110, 20},
		{6, 20, 40, 100},
		{2, 8, 20, 50},
		{2, 2, 5, 22},
	}
	lm := model.NewLinearModelFromCounts(counts)
	vecG := spectrum.Counts{90, 140, 150, 130, 60, 20}
	f := []float64{130, 180, 170, 110}
	tau := 1.3

	std := NewStandardLLH()
	std.Initialize(vecG, lm, SecondDifferenceMatrix(4), DefaultStandardConfig(tau))
	ref := NewReferenceLLH(lm.Response(), vecG, tau)

	gotV, err := std.Evaluate(f)
	require.NoError(t, err)
	assertClose(t, ref.EvaluateLLH(f), gotV, "value")

	gotG, err := std.EvaluateGradient(f)
	require.NoError(t, err)
	for j, want := range ref.EvaluateGradient(f) {
		assertClose(t, want, gotG[j], "gradient component")
	}
}
