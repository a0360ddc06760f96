// Package series evaluates the truncated series expansions of the geodesic
// integrals of Karney's "Algorithms for geodesics" (2013): the scale factors
// A1, A2 and A3, the Fourier coefficients C1, C1', C2 and C3, and the
// Clenshaw summation of the resulting sine series. The expansion parameter
// eps and the third flattening n follow the substitutions
// k2 = 4 eps / (1 - eps)^2 and f = 2n / (1 + n). Coefficient polynomials
// were generated in Maxima and are truncated at the requested order, at most
// MaxOrder.
package series

// MaxOrder is the highest supported expansion order.
const MaxOrder = 8

// A1 evaluates the scale factor of the first geodesic integral, returning
// A1 - 1 for accuracy near eps = 0.
func A1(order int, eps float64) float64 {
	eps2 := eps * eps
	var t float64
	switch order / 2 {
	case 0:
		t = 0
	case 1:
		t = eps2 / 4
	case 2:
		t = eps2 * (eps2 + 16) / 64
	case 3:
		t = eps2 * (eps2*(eps2+4) + 64) / 256
	default:
		t = eps2 * (eps2*(eps2*(25*eps2+64)+256) + 4096) / 16384
	}
	return (t + eps) / (1 - eps)
}

// A2 evaluates the scale factor of the second geodesic integral, returning
// A2 - 1.
func A2(order int, eps float64) float64 {
	eps2 := eps * eps
	var t float64
	switch order / 2 {
	case 0:
		t = 0
	case 1:
		t = -3 * eps2 / 4
	case 2:
		t = (-7*eps2 - 48) * eps2 / 64
	case 3:
		t = eps2 * ((-11*eps2-28)*eps2 - 192) / 256
	default:
		t = eps2 * (eps2*((-375*eps2-704)*eps2-1792) - 12288) / 16384
	}
	return (t - eps) / (1 + eps)
}

// CoeffsA3 fills c with the coefficients of the A3 polynomial in eps; the
// truncation order is len(c).
func CoeffsA3(c []float64, n float64) {
	switch len(c) {
	case 0:
	case 1:
		c[0] = 1
	case 2:
		c[0] = 1
		c[1] = -1. / 2
	case 3:
		c[0] = 1
		c[1] = (n - 1) / 2
		c[2] = -1. / 4
	case 4:
		c[0] = 1
		c[1] = (n - 1) / 2
		c[2] = (-n - 2) / 8
		c[3] = -1. / 16
	case 5:
		c[0] = 1
		c[1] = (n - 1) / 2
		c[2] = (n*(3*n-1) - 2) / 8
		c[3] = (-3*n - 1) / 16
		c[4] = -3. / 64
	case 6:
		c[0] = 1
		c[1] = (n - 1) / 2
		c[2] = (n*(3*n-1) - 2) / 8
		c[3] = ((-n-3)*n - 1) / 16
		c[4] = (-2*n - 3) / 64
		c[5] = -3. / 128
	case 7:
		c[0] = 1
		c[1] = (n - 1) / 2
		c[2] = (n*(3*n-1) - 2) / 8
		c[3] = (n*(n*(5*n-1)-3) - 1) / 16
		c[4] = ((-10*n-2)*n - 3) / 64
		c[5] = (-5*n - 3) / 128
		c[6] = -5. / 256
	default:
		c[0] = 1
		c[1] = (n - 1) / 2
		c[2] = (n*(3*n-1) - 2) / 8
		c[3] = (n*(n*(5*n-1)-3) - 1) / 16
		c[4] = (n*((-5*n-20)*n-4) - 6) / 128
		c[5] = ((-5*n-10)*n - 6) / 256
		c[6] = (-15*n - 20) / 1024
		c[7] = -25. / 2048
	}
}

// CoeffsC1 fills c[1:] with the Fourier coefficients C1[l]; c[0] is unused.
// The truncation order is len(c) - 1.
func CoeffsC1(c []float64, eps float64) {
	eps2 := eps * eps
	d := eps
	switch len(c) - 1 {
	case 0:
	case 1:
		c[1] = -d / 2
	case 2:
		c[1] = -d / 2
		d *= eps
		c[2] = -d / 16
	case 3:
		c[1] = d * (3*eps2 - 8) / 16
		d *= eps
		c[2] = -d / 16
		d *= eps
		c[3] = -d / 48
	case 4:
		c[1] = d * (3*eps2 - 8) / 16
		d *= eps
		c[2] = d * (eps2 - 2) / 32
		d *= eps
		c[3] = -d / 48
		d *= eps
		c[4] = -5 * d / 512
	case 5:
		c[1] = d * ((6-eps2)*eps2 - 16) / 32
		d *= eps
		c[2] = d * (eps2 - 2) / 32
		d *= eps
		c[3] = d * (9*eps2 - 16) / 768
		d *= eps
		c[4] = -5 * d / 512
		d *= eps
		c[5] = -7 * d / 1280
	case 6:
		c[1] = d * ((6-eps2)*eps2 - 16) / 32
		d *= eps
		c[2] = d * ((64-9*eps2)*eps2 - 128) / 2048
		d *= eps
		c[3] = d * (9*eps2 - 16) / 768
		d *= eps
		c[4] = d * (3*eps2 - 5) / 512
		d *= eps
		c[5] = -7 * d / 1280
		d *= eps
		c[6] = -7 * d / 2048
	case 7:
		c[1] = d * (eps2*(eps2*(19*eps2-64)+384) - 1024) / 2048
		d *= eps
		c[2] = d * ((64-9*eps2)*eps2 - 128) / 2048
		d *= eps
		c[3] = d * ((72-9*eps2)*eps2 - 128) / 6144
		d *= eps
		c[4] = d * (3*eps2 - 5) / 512
		d *= eps
		c[5] = d * (35*eps2 - 56) / 10240
		d *= eps
		c[6] = -7 * d / 2048
		d *= eps
		c[7] = -33 * d / 14336
	default:
		c[1] = d * (eps2*(eps2*(19*eps2-64)+384) - 1024) / 2048
		d *= eps
		c[2] = d * (eps2*(eps2*(7*eps2-18)+128) - 256) / 4096
		d *= eps
		c[3] = d * ((72-9*eps2)*eps2 - 128) / 6144
		d *= eps
		c[4] = d * ((96-11*eps2)*eps2 - 160) / 16384
		d *= eps
		c[5] = d * (35*eps2 - 56) / 10240
		d *= eps
		c[6] = d * (9*eps2 - 14) / 4096
		d *= eps
		c[7] = -33 * d / 14336
		d *= eps
		c[8] = -429 * d / 262144
	}
}

// CoeffsC1p fills c[1:] with the coefficients C1'[l] of the inverse of the
// C1 series; c[0] is unused. The truncation order is len(c) - 1.
func CoeffsC1p(c []float64, eps float64) {
	eps2 := eps * eps
	d := eps
	switch len(c) - 1 {
	case 0:
	case 1:
		c[1] = d / 2
	case 2:
		c[1] = d / 2
		d *= eps
		c[2] = 5 * d / 16
	case 3:
		c[1] = d * (16 - 9*eps2) / 32
		d *= eps
		c[2] = 5 * d / 16
		d *= eps
		c[3] = 29 * d / 96
	case 4:
		c[1] = d * (16 - 9*eps2) / 32
		d *= eps
		c[2] = d * (30 - 37*eps2) / 96
		d *= eps
		c[3] = 29 * d / 96
		d *= eps
		c[4] = 539 * d / 1536
	case 5:
		c[1] = d * (eps2*(205*eps2-432) + 768) / 1536
		d *= eps
		c[2] = d * (30 - 37*eps2) / 96
		d *= eps
		c[3] = d * (116 - 225*eps2) / 384
		d *= eps
		c[4] = 539 * d / 1536
		d *= eps
		c[5] = 3467 * d / 7680
	case 6:
		c[1] = d * (eps2*(205*eps2-432) + 768) / 1536
		d *= eps
		c[2] = d * (eps2*(4005*eps2-4736) + 3840) / 12288
		d *= eps
		c[3] = d * (116 - 225*eps2) / 384
		d *= eps
		c[4] = d * (2695 - 7173*eps2) / 7680
		d *= eps
		c[5] = 3467 * d / 7680
		d *= eps
		c[6] = 38081 * d / 61440
	case 7:
		c[1] = d * (eps2*((9840-4879*eps2)*eps2-20736) + 36864) / 73728
		d *= eps
		c[2] = d * (eps2*(4005*eps2-4736) + 3840) / 12288
		d *= eps
		c[3] = d * (eps2*(8703*eps2-7200) + 3712) / 12288
		d *= eps
		c[4] = d * (2695 - 7173*eps2) / 7680
		d *= eps
		c[5] = d * (41604 - 141115*eps2) / 92160
		d *= eps
		c[6] = 38081 * d / 61440
		d *= eps
		c[7] = 459485 * d / 516096
	default:
		c[1] = d * (eps2*((9840-4879*eps2)*eps2-20736) + 36864) / 73728
		d *= eps
		c[2] = d * (eps2*((120150-86171*eps2)*eps2-142080) + 115200) / 368640
		d *= eps
		c[3] = d * (eps2*(8703*eps2-7200) + 3712) / 12288
		d *= eps
		c[4] = d * (eps2*(1082857*eps2-688608) + 258720) / 737280
		d *= eps
		c[5] = d * (41604 - 141115*eps2) / 92160
		d *= eps
		c[6] = d * (533134 - 2200311*eps2) / 860160
		d *= eps
		c[7] = 459485 * d / 516096
		d *= eps
		c[8] = 109167851 * d / 82575360
	}
}

// CoeffsC2 fills c[1:] with the Fourier coefficients C2[l]; c[0] is unused.
// The truncation order is len(c) - 1.
func CoeffsC2(c []float64, eps float64) {
	eps2 := eps * eps
	d := eps
	switch len(c) - 1 {
	case 0:
	case 1:
		c[1] = d / 2
	case 2:
		c[1] = d / 2
		d *= eps
		c[2] = 3 * d / 16
	case 3:
		c[1] = d * (eps2 + 8) / 16
		d *= eps
		c[2] = 3 * d / 16
		d *= eps
		c[3] = 5 * d / 48
	case 4:
		c[1] = d * (eps2 + 8) / 16
		d *= eps
		c[2] = d * (eps2 + 6) / 32
		d *= eps
		c[3] = 5 * d / 48
		d *= eps
		c[4] = 35 * d / 512
	case 5:
		c[1] = d * (eps2*(eps2+2) + 16) / 32
		d *= eps
		c[2] = d * (eps2 + 6) / 32
		d *= eps
		c[3] = d * (15*eps2 + 80) / 768
		d *= eps
		c[4] = 35 * d / 512
		d *= eps
		c[5] = 63 * d / 1280
	case 6:
		c[1] = d * (eps2*(eps2+2) + 16) / 32
		d *= eps
		c[2] = d * (eps2*(35*eps2+64) + 384) / 2048
		d *= eps
		c[3] = d * (15*eps2 + 80) / 768
		d *= eps
		c[4] = d * (7*eps2 + 35) / 512
		d *= eps
		c[5] = 63 * d / 1280
		d *= eps
		c[6] = 77 * d / 2048
	case 7:
		c[1] = d * (eps2*(eps2*(41*eps2+64)+128) + 1024) / 2048
		d *= eps
		c[2] = d * (eps2*(35*eps2+64) + 384) / 2048
		d *= eps
		c[3] = d * (eps2*(69*eps2+120) + 640) / 6144
		d *= eps
		c[4] = d * (7*eps2 + 35) / 512
		d *= eps
		c[5] = d * (105*eps2 + 504) / 10240
		d *= eps
		c[6] = 77 * d / 2048
		d *= eps
		c[7] = 429 * d / 14336
	default:
		c[1] = d * (eps2*(eps2*(41*eps2+64)+128) + 1024) / 2048
		d *= eps
		c[2] = d * (eps2*(eps2*(47*eps2+70)+128) + 768) / 4096
		d *= eps
		c[3] = d * (eps2*(69*eps2+120) + 640) / 6144
		d *= eps
		c[4] = d * (eps2*(133*eps2+224) + 1120) / 16384
		d *= eps
		c[5] = d * (105*eps2 + 504) / 10240
		d *= eps
		c[6] = d * (33*eps2 + 154) / 4096
		d *= eps
		c[7] = 429 * d / 14336
		d *= eps
		c[8] = 6435 * d / 262144
	}
}

// CoeffsC3x fills c with the coefficients of the C3[l] polynomials in eps,
// stored as order-1 consecutive blocks of decreasing length; within a block
// the coefficients are ascending in eps. The required length of c is
// order*(order-1)/2; CoeffsC3x panics on a mismatch.
func CoeffsC3x(order int, c []float64, n float64) {
	if len(c) != order*(order-1)/2 {
		panic("series: C3x coefficient buffer does not match order")
	}
	n2 := n * n
	switch order {
	case 0, 1:
	case 2:
		c[0] = (1 - n) / 4
	case 3:
		c[0] = (1 - n) / 4
		c[1] = (1 - n2) / 8
		c[2] = ((n-3)*n + 2) / 32
	case 4:
		c[0] = (1 - n) / 4
		c[1] = (1 - n2) / 8
		c[2] = (n*((-5*n-1)*n+3) + 3) / 64
		c[3] = ((n-3)*n + 2) / 32
		c[4] = (n*(n*(2*n-3)-2) + 3) / 64
		c[5] = (n*((5-n)*n-9) + 5) / 192
	case 5:
		c[0] = (1 - n) / 4
		c[1] = (1 - n2) / 8
		c[2] = (n*((-5*n-1)*n+3) + 3) / 64
		c[3] = (n*((2-2*n)*n+2) + 5) / 128
		c[4] = ((n-3)*n + 2) / 32
		c[5] = (n*(n*(2*n-3)-2) + 3) / 64
		c[6] = (n*((-6*n-9)*n+2) + 6) / 256
		c[7] = (n*((5-n)*n-9) + 5) / 192
		c[8] = (n*(n*(10*n-6)-10) + 9) / 384
		c[9] = (n*((20-7*n)*n-28) + 14) / 1024
	case 6:
		c[0] = (1 - n) / 4
		c[1] = (1 - n2) / 8
		c[2] = (n*((-5*n-1)*n+3) + 3) / 64
		c[3] = (n*((2-2*n)*n+2) + 5) / 128
		c[4] = (n*(3*n+11) + 12) / 512
		c[5] = ((n-3)*n + 2) / 32
		c[6] = (n*(n*(2*n-3)-2) + 3) / 64
		c[7] = (n*((-6*n-9)*n+2) + 6) / 256
		c[8] = ((1-2*n)*n + 5) / 256
		c[9] = (n*((5-n)*n-9) + 5) / 192
		c[10] = (n*(n*(10*n-6)-10) + 9) / 384
		c[11] = ((-77*n-8)*n + 42) / 3072
		c[12] = (n*((20-7*n)*n-28) + 14) / 1024
		c[13] = ((-7*n-40)*n + 28) / 2048
		c[14] = (n*(75*n-90) + 42) / 5120
	case 7:
		c[0] = (1 - n) / 4
		c[1] = (1 - n2) / 8
		c[2] = (n*((-5*n-1)*n+3) + 3) / 64
		c[3] = (n*((2-2*n)*n+2) + 5) / 128
		c[4] = (n*(3*n+11) + 12) / 512
		c[5] = (10*n + 21) / 1024
		c[6] = ((n-3)*n + 2) / 32
		c[7] = (n*(n*(2*n-3)-2) + 3) / 64
		c[8] = (n*((-6*n-9)*n+2) + 6) / 256
		c[9] = ((1-2*n)*n + 5) / 256
		c[10] = (69*n + 108) / 8192
		c[11] = (n*((5-n)*n-9) + 5) / 192
		c[12] = (n*(n*(10*n-6)-10) + 9) / 384
		c[13] = ((-77*n-8)*n + 42) / 3072
		c[14] = (12 - n) / 1024
		c[15] = (n*((20-7*n)*n-28) + 14) / 1024
		c[16] = ((-7*n-40)*n + 28) / 2048
		c[17] = (72 - 43*n) / 8192
		c[18] = (n*(75*n-90) + 42) / 5120
		c[19] = (9 - 15*n) / 1024
		c[20] = (44 - 99*n) / 8192
	default:
		c[0] = (1 - n) / 4
		c[1] = (1 - n2) / 8
		c[2] = (n*((-5*n-1)*n+3) + 3) / 64
		c[3] = (n*((2-2*n)*n+2) + 5) / 128
		c[4] = (n*(3*n+11) + 12) / 512
		c[5] = (10*n + 21) / 1024
		c[6] = 243. / 16384
		c[7] = ((n-3)*n + 2) / 32
		c[8] = (n*(n*(2*n-3)-2) + 3) / 64
		c[9] = (n*((-6*n-9)*n+2) + 6) / 256
		c[10] = ((1-2*n)*n + 5) / 256
		c[11] = (69*n + 108) / 8192
		c[12] = 187. / 16384
		c[13] = (n*((5-n)*n-9) + 5) / 192
		c[14] = (n*(n*(10*n-6)-10) + 9) / 384
		c[15] = ((-77*n-8)*n + 42) / 3072
		c[16] = (12 - n) / 1024
		c[17] = 139. / 16384
		c[18] = (n*((20-7*n)*n-28) + 14) / 1024
		c[19] = ((-7*n-40)*n + 28) / 2048
		c[20] = (72 - 43*n) / 8192
		c[21] = 127. / 16384
		c[22] = (n*(75*n-90) + 42) / 5120
		c[23] = (9 - 15*n) / 1024
		c[24] = 99. / 16384
		c[25] = (44 - 99*n) / 8192
		c[26] = 99. / 16384
		c[27] = 429. / 114688
	}
}

// CoeffsC3 reduces the C3x coefficient blocks to the Fourier coefficients
// C3[l] at a given eps, filling c[1:]; c[0] is unused and the truncation
// order is len(c).
func CoeffsC3(c, c3x []float64, eps float64) {
	mult := 1.0
	offset := 0
	for l := 1; l < len(c); l++ {
		m := len(c) - l
		mult *= eps
		c[l] = mult * horner(eps, c3x[offset:offset+m])
		offset += m
	}
}

// horner evaluates a polynomial with coefficients ascending in x.
func horner(x float64, c []float64) float64 {
	var r float64
	for i := len(c) - 1; i >= 0; i-- {
		r = r*x + c[i]
	}
	return r
}

// SinCosSeries evaluates sum(c[l] * sin(2*l*x), l, 1, len(c)-1) by Clenshaw
// summation given sin(x) and cos(x); c[0] is ignored. An empty coefficient
// slice is an empty sum.
func SinCosSeries(sinx, cosx float64, c []float64) float64 {
	if len(c) == 0 {
		return 0
	}
	n := len(c) - 1
	index := n + 1
	ar := 2 * (cosx - sinx) * (cosx + sinx)

	var k0, k1 float64
	if n&1 != 0 {
		index--
		k0 = c[index]
	}
	for n /= 2; n > 0; n-- {
		index--
		k1 = ar*k0 - k1 + c[index]
		index--
		k0 = ar*k1 - k0 + c[index]
	}
	return 2 * sinx * cosx * k0
}

// A3 evaluates the A3 scale factor from its coefficient polynomial at eps.
func A3(c []float64, eps float64) float64 {
	return horner(eps, c)
}
