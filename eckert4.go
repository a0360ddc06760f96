package mapproj

import (
	"math"

	"github.com/golang/geo/s2"
)

// Constants of the Eckert IV development: Cx = 2/sqrt(pi*(4+pi)),
// Cy = 2*sqrt(pi/(4+pi)), Cp = 2 + pi/2.
const (
	eck4Cx = .42223820031577120149
	eck4Cy = 1.32650042817700232218
	eck4Cp = 3.57079632679489661922

	eck4Eps   = 1e-7
	eck4NIter = 6
)

// EckertIV is the Eckert IV pseudocylindrical projection. It has no
// ellipsoidal form: construction forces the spherical case regardless of the
// eccentricity in the parameter record.
type EckertIV struct {
	base
}

// NewEckertIV constructs an Eckert IV projection from the parameter record.
func NewEckertIV(p Params) (*EckertIV, error) {
	p.Es = 0
	return &EckertIV{base: newBase(p)}, nil
}

// Name reports the projection id.
func (e *EckertIV) Name() string { return "eck4" }

// Forward solves theta + sin(theta)*(cos(theta)+2) = Cp*sin(phi) for the
// auxiliary angle theta by Newton iteration, seeded with a polynomial
// approximation of theta(phi^2). When the budget runs out the root is
// ill-conditioned (this happens at the poles, where the Newton denominator
// vanishes) and the exact boundary closed form is used instead.
func (e *EckertIV) Forward(ll s2.LatLng) PlanarCoord {
	lam, phi := e.local(ll)
	p := eck4Cp * math.Sin(phi)
	v := phi * phi
	theta := phi * (0.895168 + v*(0.0218849+v*0.00826809))
	i := eck4NIter
	for ; i > 0; i-- {
		c := math.Cos(theta)
		s := math.Sin(theta)
		v = (theta + s*(c+2.) - p) / (1. + c*(c+2.) - s*s)
		theta -= v
		if math.Abs(v) < eck4Eps {
			break
		}
	}
	if i == 0 {
		y := eck4Cy
		if theta < 0 {
			y = -eck4Cy
		}
		return e.planar(eck4Cx*lam, y)
	}
	return e.planar(eck4Cx*lam*(1.+math.Cos(theta)), eck4Cy*math.Sin(theta))
}

// Inverse is the exact algebraic inverse of the forward substitution; no
// iteration is needed.
func (e *EckertIV) Inverse(xy PlanarCoord) s2.LatLng {
	x, y := e.localXY(xy)
	theta := aasin(y / eck4Cy)
	c := math.Cos(theta)
	lam := x / (eck4Cx * (1. + c))
	phi := aasin((theta + math.Sin(theta)*(c+2.)) / eck4Cp)
	return e.geographic(lam, phi)
}
