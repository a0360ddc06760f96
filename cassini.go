package mapproj

import (
	"math"

	"github.com/golang/geo/s2"
)

// Fixed rational constants of the classical Cassini series development.
const (
	cassC1 = 1. / 6.
	cassC2 = 1. / 120.
	cassC3 = 1. / 24.
	cassC4 = 1. / 3.
	cassC5 = 1. / 15.
)

// Cassini is the Cassini-Soldner projection. On an ellipsoid it uses a
// truncated power series in the longitude offset from the central meridian;
// on a sphere the closed trigonometric forms apply and no derived state is
// needed.
type Cassini struct {
	base
	spherical bool
	m0        float64
	en        [enSize]float64
}

// NewCassini constructs a Cassini projection from the parameter record. The
// spherical or ellipsoidal variant is chosen by the eccentricity.
func NewCassini(p Params) (*Cassini, error) {
	c := &Cassini{base: newBase(p)}
	if p.Es != 0 {
		en, err := enfn(p.Es)
		if err != nil {
			return nil, err
		}
		c.en = en
		c.m0 = mlfn(p.Phi0, math.Sin(p.Phi0), math.Cos(p.Phi0), &c.en)
	} else {
		c.spherical = true
	}
	return c, nil
}

// Name reports the projection id.
func (c *Cassini) Name() string { return "cass" }

// Forward projects geographic (lon, lat) to planar (x, y).
func (c *Cassini) Forward(ll s2.LatLng) PlanarCoord {
	lam, phi := c.local(ll)
	if c.spherical {
		x := math.Asin(math.Cos(phi) * math.Sin(lam))
		y := math.Atan2(math.Tan(phi), math.Cos(lam)) - c.phi0
		return c.planar(x, y)
	}
	n := math.Sin(phi)
	cosphi := math.Cos(phi)
	y := mlfn(phi, n, cosphi, &c.en)
	n = 1. / math.Sqrt(1.-c.es*n*n)
	tn := math.Tan(phi)
	t := tn * tn
	a1 := lam * cosphi
	cc := c.es * cosphi * cosphi / (1 - c.es)
	a2 := a1 * a1
	x := n * a1 * (1. - a2*t*(cassC1-(8.-t+8.*cc)*a2*cassC2))
	y -= c.m0 - n*tn*a2*(.5+(5.-t+6.*cc)*a2*cassC3)
	return c.planar(x, y)
}

// Inverse projects planar (x, y) back to geographic (lon, lat).
func (c *Cassini) Inverse(xy PlanarCoord) s2.LatLng {
	x, y := c.localXY(xy)
	if c.spherical {
		dd := y + c.phi0
		phi := math.Asin(math.Sin(dd) * math.Cos(x))
		lam := math.Atan2(math.Tan(x), math.Cos(dd))
		return c.geographic(lam, phi)
	}
	ph1 := invMlfn(c.m0+y, c.es, &c.en)
	tn := math.Tan(ph1)
	t := tn * tn
	n := math.Sin(ph1)
	r := 1. / (1. - c.es*n*n)
	n = math.Sqrt(r)
	r *= (1. - c.es) * n
	dd := x / n
	d2 := dd * dd
	phi := ph1 - (n*tn/r)*d2*(.5-(1.+3.*t)*d2*cassC3)
	lam := dd * (1. + t*d2*(-cassC4+(1.+3.*t)*d2*cassC5)) / math.Cos(ph1)
	return c.geographic(lam, phi)
}
