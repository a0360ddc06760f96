// Command mapproj projects coordinates between geographic and planar form
// using a proj-style definition string, e.g.
//
//	mapproj forward --proj "+proj=eqdc +ellps=WGS84 +lat_1=20 +lat_2=60" 40.5 -96.2
//	mapproj inverse --proj "+proj=cass +ellps=WGS84" 222638.98 110579.97
package main

import (
	"fmt"
	"strconv"

	"github.com/golang/geo/s2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"mapproj"
)

var projString string

func newProjection() (mapproj.Projection, error) {
	name, p, err := mapproj.ParseParams(projString)
	if err != nil {
		return nil, err
	}
	return mapproj.New(name, p)
}

func parsePairs(args []string) ([][2]float64, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("coordinates must be given in pairs, got %d values", len(args))
	}
	pairs := make([][2]float64, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		a, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", args[i], err)
		}
		b, err := strconv.ParseFloat(args[i+1], 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", args[i+1], err)
		}
		pairs = append(pairs, [2]float64{a, b})
	}
	return pairs, nil
}

func main() {
	root := &cobra.Command{
		Use:           "mapproj",
		Short:         "project coordinates between geographic and planar form",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&projString, "proj", "", "proj-style definition string")
	root.MarkPersistentFlagRequired("proj")

	forward := &cobra.Command{
		Use:   "forward lat lon [lat lon ...]",
		Short: "project geographic coordinates (degrees) to planar meters",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := newProjection()
			if err != nil {
				return err
			}
			pairs, err := parsePairs(args)
			if err != nil {
				return err
			}
			for _, pair := range pairs {
				xy := proj.Forward(s2.LatLngFromDegrees(pair[0], pair[1]))
				fmt.Printf("%.6f\t%.6f\n", xy.X, xy.Y)
			}
			return nil
		},
	}

	inverse := &cobra.Command{
		Use:   "inverse x y [x y ...]",
		Short: "project planar meters back to geographic degrees",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := newProjection()
			if err != nil {
				return err
			}
			pairs, err := parsePairs(args)
			if err != nil {
				return err
			}
			for _, pair := range pairs {
				geo := proj.Inverse(mapproj.PlanarCoord{X: pair[0], Y: pair[1]})
				fmt.Printf("%.9f\t%.9f\n", geo.Lat.Degrees(), geo.Lng.Degrees())
			}
			return nil
		},
	}

	root.AddCommand(forward, inverse)
	if err := root.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
