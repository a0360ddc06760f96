package mapproj

import (
	"math"

	"github.com/golang/geo/s2"
)

// Face identifies one of the six faces of the cube circumscribing the
// sphere in the quadrilateralized spherical cube projection.
type Face int

// The six cube faces. The projection center must be one of the face
// centers: the equatorial faces at lat 0 and lon 0/90/180/-90, or the top
// and bottom faces at the poles.
const (
	FaceFront Face = iota
	FaceRight
	FaceBack
	FaceLeft
	FaceTop
	FaceBottom
)

func (f Face) String() string {
	switch f {
	case FaceFront:
		return "front"
	case FaceRight:
		return "right"
	case FaceBack:
		return "back"
	case FaceLeft:
		return "left"
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	}
	return "unknown"
}

// The four angular areas on a cube face. Area 0 is the area of definition,
// (-pi/4, +pi/4) in theta; the other three are counted counterclockwise and
// handled by rotation of area 0.
const (
	qscArea0 = iota
	qscArea1
	qscArea2
	qscArea3
)

// QSC is the quadrilateralized spherical cube projection of O'Neill and
// Laubscher, projecting onto a single cube face selected at construction
// from the projection center. On an ellipsoid the geodetic latitude is first
// shifted to the geocentric latitude, the transform runs on the sphere, and
// the inverse undoes the shift with a closed-form correction (the
// ellipsoidal cube map model of Lambers and Kolb).
//
// Inputs are assumed to belong to the configured face; coordinates from
// another face are not detected and produce out-of-face results.
type QSC struct {
	base
	face       Face
	aSquared   float64
	b          float64
	oneMinusF  float64
	oneMinusF2 float64
}

// NewQSC constructs a QSC projection, determining the cube face from the
// projection center in the parameter record.
func NewQSC(p Params) (*QSC, error) {
	q := &QSC{base: newBase(p)}
	switch {
	case p.Phi0 >= halfPi-fortPi/2.0:
		q.face = FaceTop
	case p.Phi0 <= -(halfPi - fortPi/2.0):
		q.face = FaceBottom
	case math.Abs(p.Lam0) <= fortPi:
		q.face = FaceFront
	case math.Abs(p.Lam0) <= halfPi+fortPi:
		if p.Lam0 > 0 {
			q.face = FaceRight
		} else {
			q.face = FaceLeft
		}
	default:
		q.face = FaceBack
	}
	if p.Es != 0 {
		q.aSquared = p.A * p.A
		q.b = p.A * math.Sqrt(1.0-p.Es)
		q.oneMinusF = 1.0 - (p.A-q.b)/p.A
		q.oneMinusF2 = q.oneMinusF * q.oneMinusF
	}
	return q, nil
}

// Name reports the projection id.
func (q *QSC) Name() string { return "qsc" }

// Face reports the cube face selected at construction.
func (q *QSC) Face() Face { return q.face }

// qscFaceTheta computes the face-local theta angle and area number for the
// equatorial faces.
func qscFaceTheta(phi, y, x float64) (theta float64, area int) {
	if phi < eps10 {
		return 0, qscArea0
	}
	theta = math.Atan2(y, x)
	switch {
	case math.Abs(theta) <= fortPi:
		area = qscArea0
	case theta > fortPi && theta <= halfPi+fortPi:
		area = qscArea1
		theta -= halfPi
	case theta > halfPi+fortPi || theta <= -(halfPi+fortPi):
		area = qscArea2
		if theta >= 0.0 {
			theta -= math.Pi
		} else {
			theta += math.Pi
		}
	default:
		area = qscArea3
		theta += halfPi
	}
	return theta, area
}

// shiftLon rotates a longitude about the polar axis and wraps the result to
// [-pi, pi].
func shiftLon(lon, offset float64) float64 {
	s := lon + offset
	if s < -math.Pi {
		s += 2 * math.Pi
	} else if s > math.Pi {
		s -= 2 * math.Pi
	}
	return s
}

// Forward projects geographic (lon, lat) to planar (x, y) on the configured
// cube face.
func (q *QSC) Forward(ll s2.LatLng) PlanarCoord {
	lam, lat := q.local(ll)

	// Shift from the ellipsoid to the sphere: replace the geodetic latitude
	// with its geocentric counterpart.
	if q.es != 0 {
		lat = math.Atan(q.oneMinusF2 * math.Tan(lat))
	}

	// Convert lat, lon into the face-local angles phi (colatitude-like) and
	// theta (azimuth within the area). The top and bottom faces read them
	// off directly; the equatorial faces go through unit-sphere direction
	// cosines.
	lon := lam
	var cq, r, s float64
	if q.face != FaceTop && q.face != FaceBottom {
		switch q.face {
		case FaceRight:
			lon = shiftLon(lon, +halfPi)
		case FaceBack:
			lon = shiftLon(lon, +math.Pi)
		case FaceLeft:
			lon = shiftLon(lon, -halfPi)
		}
		sinlat, coslat := math.Sincos(lat)
		sinlon, coslon := math.Sincos(lon)
		cq = coslat * coslon
		r = coslat * sinlon
		s = sinlat
	}

	var phi, theta float64
	var area int
	switch q.face {
	case FaceFront:
		phi = math.Acos(cq)
		theta, area = qscFaceTheta(phi, s, r)
	case FaceRight:
		phi = math.Acos(r)
		theta, area = qscFaceTheta(phi, s, -cq)
	case FaceBack:
		phi = math.Acos(-cq)
		theta, area = qscFaceTheta(phi, s, -r)
	case FaceLeft:
		phi = math.Acos(-r)
		theta, area = qscFaceTheta(phi, s, cq)
	case FaceTop:
		phi = halfPi - lat
		switch {
		case lon >= fortPi && lon <= halfPi+fortPi:
			area = qscArea0
			theta = lon - halfPi
		case lon > halfPi+fortPi || lon <= -(halfPi+fortPi):
			area = qscArea1
			if lon > 0.0 {
				theta = lon - math.Pi
			} else {
				theta = lon + math.Pi
			}
		case lon > -(halfPi+fortPi) && lon <= -fortPi:
			area = qscArea2
			theta = lon + halfPi
		default:
			area = qscArea3
			theta = lon
		}
	default: // FaceBottom
		phi = halfPi + lat
		switch {
		case lon >= fortPi && lon <= halfPi+fortPi:
			area = qscArea0
			theta = -lon + halfPi
		case lon < fortPi && lon >= -fortPi:
			area = qscArea1
			theta = -lon
		case lon < -fortPi && lon >= -(halfPi+fortPi):
			area = qscArea2
			theta = -lon - halfPi
		default:
			area = qscArea3
			if lon > 0.0 {
				theta = -lon + math.Pi
			} else {
				theta = -lon - math.Pi
			}
		}
	}

	// mu and t for the area of definition, Eqs. (3-21) and (3-38) of
	// O'Neill & Laubscher 1976 (with the typos of (3-21) fixed against
	// (3-14)). nu itself is never needed, only t = tan(nu).
	mu := math.Atan((12.0 / math.Pi) *
		(theta + math.Acos(math.Sin(theta)*math.Cos(fortPi)) - halfPi))
	t := math.Sqrt((1.0 - math.Cos(phi)) /
		(math.Cos(mu) * math.Cos(mu)) /
		(1.0 - math.Cos(math.Atan(1.0/math.Cos(theta)))))

	// Rotate back into the real area.
	switch area {
	case qscArea1:
		mu += halfPi
	case qscArea2:
		mu += math.Pi
	case qscArea3:
		mu += halfPi + math.Pi
	}
	return q.planar(t*math.Cos(mu), t*math.Sin(mu))
}

// Inverse projects planar (x, y) on the configured cube face back to
// geographic (lon, lat).
func (q *QSC) Inverse(xy PlanarCoord) s2.LatLng {
	x, y := q.localXY(xy)

	// Recover mu and nu, determining the area from the quadrant of (x, y)
	// directly; the axis-aligned comparisons avoid trigonometric calls.
	nu := math.Atan(math.Sqrt(x*x + y*y))
	mu := math.Atan2(y, x)
	var area int
	switch {
	case x >= 0.0 && x >= math.Abs(y):
		area = qscArea0
	case y >= 0.0 && y >= math.Abs(x):
		area = qscArea1
		mu -= halfPi
	case x < 0.0 && -x >= math.Abs(y):
		area = qscArea2
		if mu < 0.0 {
			mu += math.Pi
		} else {
			mu -= math.Pi
		}
	default:
		area = qscArea3
		mu += halfPi
	}

	// Invert the closed-form angle relations for the area of definition.
	t := (math.Pi / 12.0) * math.Tan(mu)
	theta := math.Atan(math.Sin(t) / (math.Cos(t) - 1.0/math.Sqrt2))
	cosmu := math.Cos(mu)
	tannu := math.Tan(nu)
	cosphi := 1.0 - cosmu*cosmu*tannu*tannu*
		(1.0-math.Cos(math.Atan(1.0/math.Cos(theta))))
	if cosphi < -1.0 {
		cosphi = -1.0
	} else if cosphi > 1.0 {
		cosphi = 1.0
	}

	var lam, lat float64
	switch q.face {
	case FaceTop:
		lat = halfPi - math.Acos(cosphi)
		switch area {
		case qscArea0:
			lam = theta + halfPi
		case qscArea1:
			if theta < 0.0 {
				lam = theta + math.Pi
			} else {
				lam = theta - math.Pi
			}
		case qscArea2:
			lam = theta - halfPi
		default:
			lam = theta
		}
	case FaceBottom:
		lat = math.Acos(cosphi) - halfPi
		switch area {
		case qscArea0:
			lam = -theta + halfPi
		case qscArea1:
			lam = -theta
		case qscArea2:
			lam = -theta - halfPi
		default:
			if theta < 0.0 {
				lam = -theta - math.Pi
			} else {
				lam = -theta + math.Pi
			}
		}
	default:
		// Equatorial faces go back through unit-sphere direction cosines.
		cq := cosphi
		tt := cq * cq
		var s float64
		if tt < 1.0 {
			s = math.Sqrt(1.0-tt) * math.Sin(theta)
		}
		tt += s * s
		var r float64
		if tt < 1.0 {
			r = math.Sqrt(1.0 - tt)
		}
		// Rotate into the correct area, then into the correct face.
		switch area {
		case qscArea1:
			r, s = -s, r
		case qscArea2:
			r, s = -r, -s
		case qscArea3:
			r, s = s, -r
		}
		switch q.face {
		case FaceRight:
			cq, r = -r, cq
		case FaceBack:
			cq, r = -cq, -r
		case FaceLeft:
			cq, r = r, -cq
		}
		lat = math.Acos(-s) - halfPi
		lam = math.Atan2(r, cq)
		switch q.face {
		case FaceRight:
			lam = shiftLon(lam, -halfPi)
		case FaceBack:
			lam = shiftLon(lam, -math.Pi)
		case FaceLeft:
			lam = shiftLon(lam, +halfPi)
		}
	}

	// Undo the sphere shift: recover the geodetic latitude whose geocentric
	// radius matches, using the minor axis. Closed form, no iteration.
	if q.es != 0 {
		invert := lat < 0.0
		tanphi := math.Tan(lat)
		xa := q.b / math.Sqrt(tanphi*tanphi+q.oneMinusF2)
		lat = math.Atan(math.Sqrt(q.aSquared-xa*xa) / (q.oneMinusF * xa))
		if invert {
			lat = -lat
		}
	}
	return q.geographic(lam, lat)
}
