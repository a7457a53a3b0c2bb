// Package fit estimates the transform that carried one set of handle
// points to another. The resize pipeline answers "where does the
// rectangle go for this drag"; fit answers the inverse: given where the
// corners were and where a free drag put them, recover the rotation
// angle and translation (or the full affine) so the caller can feed the
// angle back into the resize pipeline.
package fit

import (
	"fmt"
	"math"

	"shapecore/pkg/geometry"

	"gonum.org/v1/gonum/mat"
)

// minSeparation rejects point pairs too close to constrain a rotation.
const minSeparation = 0.001

// RigidFromPair computes the rigid transform (rotation + translation, no
// scale) carrying s0->d0 and s1->d1. Fails if either pair is nearly
// coincident.
func RigidFromPair(s0, s1, d0, d1 geometry.Point) (geometry.AffineTransform, error) {
	sv := s1.Sub(s0)
	dv := d1.Sub(d0)

	if math.Hypot(sv.X, sv.Y) < minSeparation || math.Hypot(dv.X, dv.Y) < minSeparation {
		return geometry.AffineTransform{}, fmt.Errorf("rigid fit: degenerate point pair")
	}

	theta := math.Atan2(dv.Y, dv.X) - math.Atan2(sv.Y, sv.X)
	cosT := math.Cos(theta)
	sinT := math.Sin(theta)

	// d0 = R * s0 + t  =>  t = d0 - R * s0
	tx := d0.X - (cosT*s0.X - sinT*s0.Y)
	ty := d0.Y - (sinT*s0.X + cosT*s0.Y)

	return geometry.AffineTransform{
		A: cosT, B: -sinT, TX: tx,
		C: sinT, D: cosT, TY: ty,
	}, nil
}

// Rigid computes the least-squares rigid transform from N point pairs
// using the centroid-and-cross-product method.
func Rigid(src, dst []geometry.Point) (geometry.AffineTransform, error) {
	if len(src) != len(dst) {
		return geometry.AffineTransform{}, fmt.Errorf("rigid fit: point count mismatch: %d vs %d", len(src), len(dst))
	}
	if len(src) < 2 {
		return geometry.AffineTransform{}, fmt.Errorf("rigid fit: need at least 2 points, got %d", len(src))
	}

	srcC := geometry.Centroid(src)
	dstC := geometry.Centroid(dst)

	var dotSum, crossSum float64
	for i := range src {
		s := src[i].Sub(srcC)
		d := dst[i].Sub(dstC)
		dotSum += s.X*d.X + s.Y*d.Y
		crossSum += s.X*d.Y - s.Y*d.X
	}

	theta := math.Atan2(crossSum, dotSum)
	cosT := math.Cos(theta)
	sinT := math.Sin(theta)

	tx := dstC.X - (cosT*srcC.X - sinT*srcC.Y)
	ty := dstC.Y - (sinT*srcC.X + cosT*srcC.Y)

	return geometry.AffineTransform{
		A: cosT, B: -sinT, TX: tx,
		C: sinT, D: cosT, TY: ty,
	}, nil
}

// Affine computes the affine transform from point correspondences. Three
// pairs give the exact solution; more give the least-squares fit via QR.
func Affine(src, dst []geometry.Point) (geometry.AffineTransform, error) {
	if len(src) != len(dst) {
		return geometry.AffineTransform{}, fmt.Errorf("affine fit: point count mismatch: %d vs %d", len(src), len(dst))
	}
	n := len(src)
	if n < 3 {
		return geometry.AffineTransform{}, fmt.Errorf("affine fit: need at least 3 points, got %d", n)
	}

	// Row pair per correspondence:
	// x' = a*x + b*y + tx
	// y' = c*x + d*y + ty
	A := mat.NewDense(n*2, 6, nil)
	B := mat.NewVecDense(n*2, nil)

	for i := 0; i < n; i++ {
		x, y := src[i].XY()
		xp, yp := dst[i].XY()

		A.Set(i*2, 0, x)
		A.Set(i*2, 1, y)
		A.Set(i*2, 2, 1)
		B.SetVec(i*2, xp)

		A.Set(i*2+1, 3, x)
		A.Set(i*2+1, 4, y)
		A.Set(i*2+1, 5, 1)
		B.SetVec(i*2+1, yp)
	}

	var qr mat.QR
	qr.Factorize(A)

	var params mat.VecDense
	if err := qr.SolveVecTo(&params, false, B); err != nil {
		return geometry.AffineTransform{}, fmt.Errorf("affine fit: %w", err)
	}

	return geometry.AffineTransform{
		A:  params.AtVec(0),
		B:  params.AtVec(1),
		TX: params.AtVec(2),
		C:  params.AtVec(3),
		D:  params.AtVec(4),
		TY: params.AtVec(5),
	}, nil
}

// MeanError returns the mean distance between transform(src[i]) and
// dst[i]. Infinite for empty or mismatched inputs.
func MeanError(src, dst []geometry.Point, transform geometry.AffineTransform) float64 {
	if len(src) != len(dst) || len(src) == 0 {
		return math.Inf(1)
	}

	var total float64
	for i := range src {
		total += transform.Apply(src[i]).Distance(dst[i])
	}
	return total / float64(len(src))
}
