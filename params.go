package mapproj

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Named ellipsoids accepted by the +ellps parameter.
const (
	grs80InverseFlattening = 298.257222101
	normalSphereRadius     = 6370997.0
)

// ParseParams parses a proj-style parameter string such as
// "+proj=cass +ellps=WGS84 +lat_0=10 +lon_0=20" into a projection name and a
// Params record. Angular parameters are given in degrees and converted to
// radians; linear parameters are meters. Unknown keys are ignored so that
// strings written for other software remain usable.
func ParseParams(def string) (string, Params, error) {
	var (
		name string
		p    Params
	)
	// Shape parameters are collected first and resolved into (A, Es) at the
	// end, in the same precedence order PROJ uses.
	var (
		a, b, f, rf, es, radius      float64
		haveB, haveF, haveRf, haveEs bool
		haveRadius                   bool
	)
	p.A = wgs84SemiMajorAxis
	p.Es = wgs84Flattening * (2 - wgs84Flattening)

	for _, tok := range strings.Fields(def) {
		tok = strings.TrimPrefix(tok, "+")
		key, val, _ := strings.Cut(tok, "=")
		num := func() (float64, error) {
			v, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return 0, &Error{Code: -16, Msg: fmt.Sprintf("argument %q for %s not numeric", val, key)}
			}
			return v, nil
		}
		var err error
		switch key {
		case "proj":
			name = val
		case "ellps":
			switch val {
			case "WGS84":
				a = wgs84SemiMajorAxis
				rf = 1 / wgs84Flattening
				haveRf = true
			case "GRS80":
				a = wgs84SemiMajorAxis
				rf = grs80InverseFlattening
				haveRf = true
			case "sphere":
				radius = normalSphereRadius
				haveRadius = true
			default:
				return "", Params{}, errUnknownEllps
			}
		case "a":
			a, err = num()
		case "b":
			b, err = num()
			haveB = true
		case "f":
			f, err = num()
			haveF = true
		case "rf":
			rf, err = num()
			haveRf = true
		case "es":
			es, err = num()
			haveEs = true
		case "R":
			radius, err = num()
			haveRadius = true
		case "lat_0":
			p.Phi0, err = num()
			p.Phi0 *= math.Pi / 180
		case "lon_0":
			p.Lam0, err = num()
			p.Lam0 *= math.Pi / 180
		case "lat_1":
			p.Lat1, err = num()
			p.Lat1 *= math.Pi / 180
		case "lat_2":
			p.Lat2, err = num()
			p.Lat2 *= math.Pi / 180
		case "x_0":
			p.X0, err = num()
		case "y_0":
			p.Y0, err = num()
		}
		if err != nil {
			return "", Params{}, err
		}
	}

	if a > 0 {
		p.A = a
	}
	switch {
	case haveRadius:
		p.A = radius
		p.Es = 0
	case haveEs:
		p.Es = es
	case haveF:
		p.Es = f * (2 - f)
	case haveRf:
		f := 1 / rf
		p.Es = f * (2 - f)
	case haveB:
		p.Es = 1 - (b*b)/(p.A*p.A)
	}
	if p.Es >= 1 || p.Es < 0 {
		return "", Params{}, errEccentricity
	}
	return name, p, nil
}
