package mapproj

import (
	"math"

	"github.com/golang/geo/s2"
)

// EquidistantConic is the equidistant conic projection: meridians are
// straight lines spaced by true arc distance, parallels are concentric
// circular arcs. The cone is tangent when the two standard parallels
// coincide and secant otherwise.
type EquidistantConic struct {
	base
	phi1   float64
	phi2   float64
	n      float64
	rho0   float64
	c      float64
	ellips bool
	en     [enSize]float64
}

// NewEquidistantConic constructs the projection from the parameter record,
// reading the standard parallels from Lat1 and Lat2. A degenerate cone
// (lat_1 = -lat_2) is rejected.
func NewEquidistantConic(p Params) (*EquidistantConic, error) {
	q := &EquidistantConic{base: newBase(p), phi1: p.Lat1, phi2: p.Lat2}
	if math.Abs(q.phi1+q.phi2) < eps10 {
		return nil, errConicParallels
	}
	en, err := enfn(p.Es)
	if err != nil {
		return nil, err
	}
	q.en = en
	sinphi := math.Sin(q.phi1)
	cosphi := math.Cos(q.phi1)
	q.n = sinphi
	secant := math.Abs(q.phi1-q.phi2) >= eps10
	q.ellips = p.Es > 0
	if q.ellips {
		m1 := msfn(sinphi, cosphi, p.Es)
		ml1 := mlfn(q.phi1, sinphi, cosphi, &q.en)
		if secant {
			sinphi = math.Sin(q.phi2)
			cosphi = math.Cos(q.phi2)
			q.n = (m1 - msfn(sinphi, cosphi, p.Es)) /
				(mlfn(q.phi2, sinphi, cosphi, &q.en) - ml1)
		}
		q.c = ml1 + m1/q.n
		q.rho0 = q.c - mlfn(p.Phi0, math.Sin(p.Phi0), math.Cos(p.Phi0), &q.en)
	} else {
		if secant {
			q.n = (cosphi - math.Cos(q.phi2)) / (q.phi2 - q.phi1)
		}
		q.c = q.phi1 + math.Cos(q.phi1)/q.n
		q.rho0 = q.c - p.Phi0
	}
	return q, nil
}

// Name reports the projection id.
func (q *EquidistantConic) Name() string { return "eqdc" }

// Forward projects geographic (lon, lat) to planar (x, y).
func (q *EquidistantConic) Forward(ll s2.LatLng) PlanarCoord {
	lam, phi := q.local(ll)
	rho := q.c - phi
	if q.ellips {
		rho = q.c - mlfn(phi, math.Sin(phi), math.Cos(phi), &q.en)
	}
	lam *= q.n
	return q.planar(rho*math.Sin(lam), q.rho0-rho*math.Cos(lam))
}

// Inverse projects planar (x, y) back to geographic (lon, lat). At the cone
// apex (rho == 0) the longitude is indeterminate and fixed to 0, with the
// latitude snapped to the pole the cone points at.
func (q *EquidistantConic) Inverse(xy PlanarCoord) s2.LatLng {
	x, y := q.localXY(xy)
	y = q.rho0 - y
	rho := math.Hypot(x, y)
	if rho == 0 {
		phi := halfPi
		if q.n < 0 {
			phi = -halfPi
		}
		return q.geographic(0, phi)
	}
	if q.n < 0 {
		rho = -rho
		x = -x
		y = -y
	}
	phi := q.c - rho
	if q.ellips {
		phi = invMlfn(phi, q.es, &q.en)
	}
	lam := math.Atan2(x, y) / q.n
	return q.geographic(lam, phi)
}
