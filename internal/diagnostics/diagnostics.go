package diagnostics

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"gounfold/domain/spectrum"
)

// GOFResult reports how well a folded estimate describes the observed
// counts.
type GOFResult struct {
	Deviance float64
	NDF      int
	PValue   float64
}

// GoodnessOfFit compares observed counts against the folded estimate of an
// unfolded spectrum using the Poisson deviance
// 2*sum(gEst - g + g*log(g/gEst)), with a chi-square p-value on ndf degrees
// of freedom (conventionally m - n). Bins with zero observed counts
// contribute only their predicted count.
func GoodnessOfFit(vecG spectrum.Counts, gEst []float64, ndf int) GOFResult {
	dev := 0.0
	for i, g := range vecG {
		dev += gEst[i] - g
		if g > 0 && gEst[i] > 0 {
			dev += g * math.Log(g/gEst[i])
		}
	}
	dev *= 2

	result := GOFResult{Deviance: dev, NDF: ndf, PValue: 1}
	if ndf > 0 && dev > 0 {
		chi := distuv.ChiSquared{K: float64(ndf)}
		result.PValue = 1 - chi.CDF(dev)
	}
	return result
}

// SpectrumProfile summarizes the bin contents of a spectrum.
type SpectrumProfile struct {
	Total  float64
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
	Q25    float64
	Q75    float64
}

// Profile computes summary statistics over the bins of f.
func Profile(f spectrum.Counts) SpectrumProfile {
	data := []float64(f)

	mean, _ := stats.Mean(data)
	median, _ := stats.Median(data)
	stdDev, _ := stats.StandardDeviation(data)
	min, _ := stats.Min(data)
	max, _ := stats.Max(data)
	q25, _ := stats.Percentile(data, 25)
	q75, _ := stats.Percentile(data, 75)

	return SpectrumProfile{
		Total:  f.Total(),
		Mean:   mean,
		Median: median,
		StdDev: stdDev,
		Min:    min,
		Max:    max,
		Q25:    q25,
		Q75:    q75,
	}
}
