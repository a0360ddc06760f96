package mapproj

import "math"

// Meridian arc length helpers, after the classical PROJ meridional distance
// routines. The series coefficients come from expanding
// M = a * integral((1 - es*sin(phi)^2)^(-3/2), phi) and truncating at es^4.
const (
	mlfnC00 = 1.
	mlfnC02 = .25
	mlfnC04 = .046875
	mlfnC06 = .01953125
	mlfnC08 = .01068115234375
	mlfnC22 = .75
	mlfnC44 = .46875
	mlfnC46 = .01302083333333333333
	mlfnC48 = .00712076822916666666
	mlfnC66 = .36458333333333333333
	mlfnC68 = .00569661458333333333
	mlfnC88 = .3076171875
)

const enSize = 5

// enfn derives the meridian-arc series coefficients from the squared
// eccentricity. It fails for a degenerate eccentricity (es outside [0, 1))
// for which the series cannot be constructed.
func enfn(es float64) ([enSize]float64, error) {
	var en [enSize]float64
	if es < 0 || es >= 1 || math.IsNaN(es) {
		return en, errEccentricity
	}
	t := es * es
	en[0] = mlfnC00 - es*(mlfnC02+es*(mlfnC04+es*(mlfnC06+es*mlfnC08)))
	en[1] = es * (mlfnC22 - es*(mlfnC04+es*(mlfnC06+es*mlfnC08)))
	en[2] = t * (mlfnC44 - es*(mlfnC46+es*mlfnC48))
	t *= es
	en[3] = t * (mlfnC66 - es*mlfnC68)
	en[4] = t * es * mlfnC88
	return en, nil
}

// mlfn evaluates the meridian arc length at latitude phi, given its sine and
// cosine and the coefficients from enfn.
func mlfn(phi, sphi, cphi float64, en *[enSize]float64) float64 {
	cphi *= sphi
	sphi *= sphi
	return en[0]*phi - cphi*(en[1]+sphi*(en[2]+sphi*(en[3]+sphi*en[4])))
}

const (
	invMlfnEps     = 1e-11
	invMlfnMaxIter = 10
)

// invMlfn inverts mlfn by Newton iteration. For arc lengths reachable on a
// real ellipsoid it converges well inside the budget; for out-of-domain
// arguments the budget can run out, in which case the last iterate is
// returned rather than an error.
func invMlfn(arg, es float64, en *[enSize]float64) float64 {
	k := 1. / (1. - es)
	phi := arg
	for i := invMlfnMaxIter; i > 0; i-- {
		s := math.Sin(phi)
		t := 1. - es*s*s
		t = (mlfn(phi, s, math.Cos(phi), en) - arg) * (t * math.Sqrt(t)) * k
		phi -= t
		if math.Abs(t) < invMlfnEps {
			break
		}
	}
	return phi
}

// msfn is the parallel radius scale m = cos(phi)/sqrt(1 - es*sin(phi)^2).
func msfn(sphi, cphi, es float64) float64 {
	return cphi / math.Sqrt(1.-es*sphi*sphi)
}
