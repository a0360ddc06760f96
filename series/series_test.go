package series

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestA1A2Vanish(t *testing.T) {
	for order := 0; order <= MaxOrder; order++ {
		assert.Equal(t, 0.0, A1(order, 0))
		assert.Equal(t, 0.0, A2(order, 0))
	}
}

func TestA1A2LowOrder(t *testing.T) {
	const eps = 0.05
	// At orders 2 and 3 the polynomial part reduces to a single term.
	assert.InDelta(t, (eps*eps/4+eps)/(1-eps), A1(2, eps), 1e-16)
	assert.InDelta(t, (-3*eps*eps/4-eps)/(1+eps), A2(2, eps), 1e-16)
}

func TestA1Converges(t *testing.T) {
	const eps = 0.01
	// Successive truncation orders agree to roughly eps^order.
	assert.InDelta(t, A1(8, eps), A1(6, eps), 1e-12)
	assert.InDelta(t, A2(8, eps), A2(6, eps), 1e-12)
}

func TestCoeffsA3Sphere(t *testing.T) {
	c := make([]float64, MaxOrder)
	CoeffsA3(c, 0)
	want := []float64{1, -1. / 2, -1. / 4, -1. / 16, -3. / 64, -3. / 128, -5. / 256, -25. / 2048}
	assert.True(t, floats.EqualApprox(c, want, 1e-15))
}

func TestA3Evaluation(t *testing.T) {
	c := make([]float64, MaxOrder)
	CoeffsA3(c, 0)
	// Leading behavior: A3 = 1 - eps/2 + O(eps^2).
	const eps = 1e-4
	assert.InDelta(t, 1-eps/2, A3(c, eps), 1e-8)
}

func TestSinCosSeriesZero(t *testing.T) {
	c := make([]float64, MaxOrder+1)
	sinx, cosx := math.Sincos(0.7)
	assert.Equal(t, 0.0, SinCosSeries(sinx, cosx, c))
}

func TestSinCosSeriesEmpty(t *testing.T) {
	sinx, cosx := math.Sincos(0.7)
	assert.Equal(t, 0.0, SinCosSeries(sinx, cosx, nil))
	assert.Equal(t, 0.0, SinCosSeries(sinx, cosx, []float64{}))
}

func TestSinCosSeriesSingleTerm(t *testing.T) {
	const k = 0.25
	c := []float64{0, k}
	for _, x := range []float64{-1.2, -0.3, 0, 0.4, 1.1} {
		sinx, cosx := math.Sincos(x)
		assert.InDelta(t, k*math.Sin(2*x), SinCosSeries(sinx, cosx, c), 1e-15)
	}
}

func TestSinCosSeriesMatchesDirectSum(t *testing.T) {
	c := []float64{0, 0.5, -0.125, 0.03, -0.007, 0.0011, -0.0002, 0.00004, -0.000008}
	for x := -3.0; x <= 3.0; x += 0.17 {
		sinx, cosx := math.Sincos(x)
		var want float64
		for l := 1; l < len(c); l++ {
			want += c[l] * math.Sin(2*float64(l)*x)
		}
		assert.InDelta(t, want, SinCosSeries(sinx, cosx, c), 1e-13)
	}
}

func TestCoeffsC1C1pInverse(t *testing.T) {
	const eps = 0.01
	c1 := make([]float64, MaxOrder+1)
	c1p := make([]float64, MaxOrder+1)
	CoeffsC1(c1, eps)
	CoeffsC1p(c1p, eps)
	// The C1' series inverts the C1 distance series to within the
	// truncation error of the expansion.
	for sigma := -1.5; sigma <= 1.5; sigma += 0.25 {
		ssig, csig := math.Sincos(sigma)
		tau := sigma + SinCosSeries(ssig, csig, c1)
		stau, ctau := math.Sincos(tau)
		back := tau + SinCosSeries(stau, ctau, c1p)
		assert.InDelta(t, sigma, back, 1e-12)
	}
}

func TestCoeffsC2Leading(t *testing.T) {
	const eps = 1e-3
	c := make([]float64, MaxOrder+1)
	CoeffsC2(c, eps)
	assert.InDelta(t, eps/2, c[1], 1e-9)
	assert.InDelta(t, 3*eps*eps/16, c[2], 1e-12)
}

func TestCoeffsC3xSizeMismatch(t *testing.T) {
	require.Panics(t, func() {
		CoeffsC3x(MaxOrder, make([]float64, 5), 0.1)
	})
}

func TestCoeffsC3Reduction(t *testing.T) {
	const n, eps = 0.3, 0.02
	c3x := make([]float64, 2*(2-1)/2)
	CoeffsC3x(2, c3x, n)
	c := make([]float64, 2)
	CoeffsC3(c, c3x, eps)
	assert.InDelta(t, eps*(1-n)/4, c[1], 1e-16)
}

func TestCoeffsC3FullOrder(t *testing.T) {
	const n, eps = 0.05, 0.03
	c3x := make([]float64, MaxOrder*(MaxOrder-1)/2)
	CoeffsC3x(MaxOrder, c3x, n)
	c := make([]float64, MaxOrder)
	CoeffsC3(c, c3x, eps)
	// The leading coefficient dominates; at full order it also carries the
	// higher Horner terms of its block, so match the first two explicitly.
	assert.InDelta(t, eps*(1-n)/4+eps*eps*(1-n*n)/8, c[1], 1e-5)
	for l := 2; l < len(c); l++ {
		assert.Less(t, math.Abs(c[l]), math.Abs(c[1]))
	}
}
