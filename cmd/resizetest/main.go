// Command resizetest runs a handle drag through the resize pipeline and
// prints the anchors and reconstructed rectangle.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"shapecore/internal/fit"
	"shapecore/internal/version"
	"shapecore/pkg/geometry"
	"shapecore/pkg/handle"
)

func main() {
	rectSpec := flag.String("rect", "", "Rectangle as x,y,w,h (e.g. '0,0,2,2')")
	targetSpec := flag.String("target", "", "Drag target as x,y (e.g. '3,3')")
	angle := flag.Float64("angle", 0, "Rotation angle in degrees (CCW positive)")
	handleName := flag.String("handle", "", "Handle name (e.g. 'bottom-right')")
	doFit := flag.Bool("fit", false, "Also fit a rigid transform from the original corners to the resized corners")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("resizetest %s (built %s, commit %s)\n",
			version.Version, version.BuildTime, version.GitCommit)
		return
	}

	if *rectSpec == "" || *targetSpec == "" || *handleName == "" {
		fmt.Println("Usage: resizetest -rect <x,y,w,h> -target <x,y> -handle <name> [-angle <deg>] [-fit]")
		fmt.Println("Handles: top-right, middle-right, bottom-right, top-left, middle-left, bottom-left, top-middle, bottom-middle")
		os.Exit(1)
	}

	rect, err := parseRect(*rectSpec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bad -rect: %v\n", err)
		os.Exit(1)
	}
	target, err := parsePoint(*targetSpec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bad -target: %v\n", err)
		os.Exit(1)
	}
	h, err := handle.Parse(*handleName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bad -handle: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("=== Dragging %s of %+v to %+v at %.2f deg ===\n", h, rect, target, *angle)

	fixed, moving, err := handle.Anchors(rect, target, *angle, h)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Anchor resolution failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Fixed anchor:  (%.4f, %.4f)\n", fixed.X, fixed.Y)
	fmt.Printf("Moving anchor: (%.4f, %.4f)\n", moving.X, moving.Y)

	result, err := handle.ToRect(fixed, moving, h)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Reconstruction failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Result:    %+v\n", result)
	fmt.Printf("Canonical: %+v\n", result.Canonical())

	corners := geometry.RotatedCorners(result, *angle)
	fmt.Printf("Rotated bounds: %+v\n", geometry.BoundingBox(corners[:]))

	if *doFit {
		src := rect.Corners()
		dst := result.Corners()
		transform, err := fit.Rigid(src[:], dst[:])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Rigid fit failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\n=== Rigid fit original -> result ===\n")
		fmt.Printf("Angle: %.4f deg, translation (%.4f, %.4f)\n",
			transform.Angle(), transform.TX, transform.TY)
		fmt.Printf("Mean error: %.6f\n", fit.MeanError(src[:], dst[:], transform))
	}
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated values, got %d", n, len(parts))
	}
	vals := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

func parsePoint(s string) (geometry.Point, error) {
	v, err := parseFloats(s, 2)
	if err != nil {
		return geometry.Point{}, err
	}
	return geometry.NewPoint(v[0], v[1]), nil
}

func parseRect(s string) (geometry.Rect, error) {
	v, err := parseFloats(s, 4)
	if err != nil {
		return geometry.Rect{}, err
	}
	return geometry.NewRect(v[0], v[1], v[2], v[3]), nil
}
