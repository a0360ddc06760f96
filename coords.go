package mapproj

// PlanarCoord is a projected coordinate pair in the projection's linear
// units. Geographic coordinates travel as s2.LatLng; keeping the two
// representations in distinct types stops a (lon, lat) pair from being fed
// where an (x, y) pair is expected.
type PlanarCoord struct {
	X float64 // easting in meters
	Y float64 // northing in meters
}
