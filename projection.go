package mapproj

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

const (
	eps10  = 1e-10
	halfPi = math.Pi / 2
	fortPi = math.Pi / 4
)

// Projection maps geographic coordinates to planar coordinates and back.
// Implementations derive their constants once at construction; Forward and
// Inverse are pure functions of those constants and the input, so a
// constructed projection is safe for concurrent use.
//
// Forward and Inverse perform no domain validation: coordinates outside a
// projection's mathematical domain yield NaN or Inf, which propagate
// silently.
type Projection interface {
	Name() string
	Forward(s2.LatLng) PlanarCoord
	Inverse(PlanarCoord) s2.LatLng
}

// Constructor builds a projection from a parameter record.
type Constructor func(Params) (Projection, error)

var registry = map[string]Constructor{}

// Register makes a constructor available to New under the given name.
// Later registrations replace earlier ones.
func Register(name string, ctor Constructor) {
	registry[name] = ctor
}

// New constructs the named projection from the parameter record.
func New(name string, p Params) (Projection, error) {
	if name == "" {
		return nil, errProjNotNamed
	}
	ctor, ok := registry[name]
	if !ok {
		return nil, errUnknownProj
	}
	return ctor(p)
}

func init() {
	Register("cass", func(p Params) (Projection, error) { return NewCassini(p) })
	Register("eck4", func(p Params) (Projection, error) { return NewEckertIV(p) })
	Register("eqdc", func(p Params) (Projection, error) { return NewEquidistantConic(p) })
	Register("qsc", func(p Params) (Projection, error) { return NewQSC(p) })
}

// base carries the parameters shared by every kernel and does the outer
// forward/inverse bookkeeping: longitudes are taken relative to the central
// meridian and wrapped to (-pi, pi], and the dimensionless kernel output is
// scaled by the semi-major axis and offset by the false origin.
type base struct {
	a    float64
	es   float64
	phi0 float64
	lam0 float64
	x0   float64
	y0   float64
}

func newBase(p Params) base {
	return base{a: p.A, es: p.Es, phi0: p.Phi0, lam0: p.Lam0, x0: p.X0, y0: p.Y0}
}

func (b *base) local(ll s2.LatLng) (lam, phi float64) {
	return adjlon(ll.Lng.Radians() - b.lam0), ll.Lat.Radians()
}

func (b *base) geographic(lam, phi float64) s2.LatLng {
	return s2.LatLng{Lat: s1.Angle(phi), Lng: s1.Angle(adjlon(lam + b.lam0))}
}

func (b *base) planar(x, y float64) PlanarCoord {
	return PlanarCoord{X: b.a*x + b.x0, Y: b.a*y + b.y0}
}

func (b *base) localXY(xy PlanarCoord) (x, y float64) {
	return (xy.X - b.x0) / b.a, (xy.Y - b.y0) / b.a
}

// adjlon reduces an angle to the range (-pi, pi].
func adjlon(lon float64) float64 {
	if math.Abs(lon) <= math.Pi {
		return lon
	}
	lon += math.Pi
	lon -= 2 * math.Pi * math.Floor(lon/(2*math.Pi))
	lon -= math.Pi
	return lon
}

// aasin is asin tolerant of arguments just beyond [-1, 1] from floating
// point overshoot; anything further out is NaN.
func aasin(v float64) float64 {
	if av := math.Abs(v); av >= 1 {
		if av > 1+eps10 {
			return math.NaN()
		}
		if v < 0 {
			return -halfPi
		}
		return halfPi
	}
	return math.Asin(v)
}
