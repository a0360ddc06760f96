package mapproj_test

import (
	"math"
	"testing"

	"github.com/golang/geo/s2"

	"mapproj"
)

func TestQSCFaceSelection(t *testing.T) {
	cases := []struct {
		lat, lng float64
		face     mapproj.Face
	}{
		{0, 0, mapproj.FaceFront},
		{0, 90, mapproj.FaceRight},
		{0, 180, mapproj.FaceBack},
		{0, -90, mapproj.FaceLeft},
		{90, 0, mapproj.FaceTop},
		{-90, 0, mapproj.FaceBottom},
	}
	for _, tc := range cases {
		p := mapproj.WGS84Params()
		p.Phi0 = tc.lat * math.Pi / 180
		p.Lam0 = tc.lng * math.Pi / 180
		q, err := mapproj.NewQSC(p)
		if err != nil {
			t.Fatalf("error creating projection: %s", err)
		}
		if q.Face() != tc.face {
			t.Errorf("center (%v, %v): expected face %s, got %s", tc.lat, tc.lng, tc.face, q.Face())
		}
	}
}

func TestQSCFaceCenter(t *testing.T) {
	q, err := mapproj.NewQSC(mapproj.SphereParams(6370997))
	if err != nil {
		t.Fatalf("error creating projection: %s", err)
	}
	xy := q.Forward(s2.LatLngFromDegrees(0, 0))
	if math.Abs(xy.X) > 1e-9 || math.Abs(xy.Y) > 1e-9 {
		t.Errorf("expected the face center at the planar origin, got (%v, %v)", xy.X, xy.Y)
	}
}

func TestQSCSphereRoundTrip(t *testing.T) {
	q, err := mapproj.NewQSC(mapproj.SphereParams(6370997))
	if err != nil {
		t.Fatalf("error creating projection: %s", err)
	}
	const inc = 2.5
	for lng := -40.0; lng <= 40; lng += inc {
		for lat := -40.0; lat <= 40; lat += inc {
			geo := s2.LatLngFromDegrees(lat, lng)
			geo2 := q.Inverse(q.Forward(geo))
			if geo.Distance(geo2).Radians() > 1e-9 {
				t.Fatalf("expected %s, got %s", geo, geo2)
			}
		}
	}
}

func TestQSCEllipsoidRoundTrip(t *testing.T) {
	q, err := mapproj.NewQSC(mapproj.WGS84Params())
	if err != nil {
		t.Fatalf("error creating projection: %s", err)
	}
	const inc = 2.5
	for lng := -40.0; lng <= 40; lng += inc {
		for lat := -40.0; lat <= 40; lat += inc {
			geo := s2.LatLngFromDegrees(lat, lng)
			geo2 := q.Inverse(q.Forward(geo))
			if geo.Distance(geo2).Radians() > 1e-9 {
				t.Fatalf("expected %s, got %s", geo, geo2)
			}
		}
	}
}

func TestQSCPolarFaceRoundTrip(t *testing.T) {
	p := mapproj.WGS84Params()
	p.Phi0 = math.Pi / 2
	q, err := mapproj.NewQSC(p)
	if err != nil {
		t.Fatalf("error creating projection: %s", err)
	}
	const inc = 5.0
	for lng := -175.0; lng <= 175; lng += inc {
		for lat := 60.0; lat <= 85; lat += inc {
			geo := s2.LatLngFromDegrees(lat, lng)
			geo2 := q.Inverse(q.Forward(geo))
			if geo.Distance(geo2).Radians() > 1e-9 {
				t.Fatalf("expected %s, got %s", geo, geo2)
			}
		}
	}
}

func TestQSCLateralFaceRoundTrip(t *testing.T) {
	for _, center := range []float64{90, 180, -90} {
		p := mapproj.WGS84Params()
		p.Lam0 = center * math.Pi / 180
		q, err := mapproj.NewQSC(p)
		if err != nil {
			t.Fatalf("error creating projection: %s", err)
		}
		const inc = 5.0
		for dlng := -40.0; dlng <= 40; dlng += inc {
			for lat := -40.0; lat <= 40; lat += inc {
				lng := center + dlng
				if lng > 180 {
					lng -= 360
				}
				geo := s2.LatLngFromDegrees(lat, lng)
				geo2 := q.Inverse(q.Forward(geo))
				if geo.Distance(geo2).Radians() > 1e-9 {
					t.Fatalf("face %s: expected %s, got %s", q.Face(), geo, geo2)
				}
			}
		}
	}
}
