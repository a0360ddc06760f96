package mapproj_test

import (
	"math"
	"testing"

	"github.com/golang/geo/s2"

	"mapproj"
)

// Eckert IV graticule constants: Cx = 2/sqrt(pi*(4+pi)), Cy = 2*sqrt(pi/(4+pi)).
const (
	eckertCx = .42223820031577120149
	eckertCy = 1.32650042817700232218
)

func TestEckertIVRoundTrip(t *testing.T) {
	eck, err := mapproj.NewEckertIV(mapproj.SphereParams(6370997))
	if err != nil {
		t.Fatalf("error creating projection: %s", err)
	}
	const inc = 2.5
	for lng := -175.0; lng <= 175; lng += inc {
		for lat := -85.0; lat <= 85; lat += inc {
			geo := s2.LatLngFromDegrees(lat, lng)
			geo2 := eck.Inverse(eck.Forward(geo))
			if geo.Distance(geo2).Radians() > 1e-6 {
				t.Fatalf("expected %s, got %s", geo, geo2)
			}
		}
	}
}

func TestEckertIVEquator(t *testing.T) {
	eck, err := mapproj.NewEckertIV(mapproj.SphereParams(1))
	if err != nil {
		t.Fatalf("error creating projection: %s", err)
	}
	// On the equator theta is zero, so x spans twice the base width.
	for _, lng := range []float64{-120, -30, 45, 150} {
		lam := lng * math.Pi / 180
		xy := eck.Forward(s2.LatLngFromDegrees(0, lng))
		if math.Abs(xy.X-2*eckertCx*lam) > 1e-9 {
			t.Errorf("lng %v: expected x=%v, got %v", lng, 2*eckertCx*lam, xy.X)
		}
		if math.Abs(xy.Y) > 1e-9 {
			t.Errorf("lng %v: expected y=0, got %v", lng, xy.Y)
		}
	}
}

func TestEckertIVPoles(t *testing.T) {
	eck, err := mapproj.NewEckertIV(mapproj.SphereParams(1))
	if err != nil {
		t.Fatalf("error creating projection: %s", err)
	}
	// At the poles the theta iteration is ill-conditioned, exhausts its
	// budget, and the exact boundary closed form takes over: y is the edge
	// constant exactly and x collapses to Cx*lam.
	north := eck.Forward(s2.LatLngFromDegrees(90, 0))
	if north.X != 0 || north.Y != eckertCy {
		t.Errorf("north pole: got (%v, %v)", north.X, north.Y)
	}
	south := eck.Forward(s2.LatLngFromDegrees(-90, 0))
	if south.X != 0 || south.Y != -eckertCy {
		t.Errorf("south pole: got (%v, %v)", south.X, south.Y)
	}
	lam := 30 * math.Pi / 180
	edge := eck.Forward(s2.LatLngFromDegrees(90, 30))
	if math.Abs(edge.X-eckertCx*lam) > 1e-12 || edge.Y != eckertCy {
		t.Errorf("north edge: got (%v, %v)", edge.X, edge.Y)
	}
}
