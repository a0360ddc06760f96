package mapproj

// Params is the shared ellipsoid and projection parameter record consumed by
// the projection constructors. Constructors read it once to derive their
// constant blocks; it is never retained or mutated.
type Params struct {
	A    float64 // semi-major axis in meters
	Es   float64 // squared eccentricity, zero for a sphere
	Phi0 float64 // latitude of origin in radians
	Lam0 float64 // central meridian in radians
	X0   float64 // false easting in meters
	Y0   float64 // false northing in meters

	// Standard parallels in radians, read by the conic projections.
	Lat1 float64
	Lat2 float64
}

const wgs84SemiMajorAxis = 6378137.0
const wgs84Flattening = 1 / 298.257223563

// WGS84Params returns a parameter record for the WGS84 ellipsoid with the
// projection origin at the intersection of the equator and the Greenwich
// meridian.
func WGS84Params() Params {
	return Params{
		A:  wgs84SemiMajorAxis,
		Es: wgs84Flattening * (2 - wgs84Flattening),
	}
}

// SphereParams returns a parameter record for a sphere of the given radius.
func SphereParams(radius float64) Params {
	return Params{A: radius}
}
