package locate

import (
	"math"

	"github.com/nadav-alali/fairsweep/sweep"
)

// Locate answers whether the weight vector (w1, w2) already lands in a
// satisfactory region of boundaries, and if not, returns the nearest
// satisfactory vector of the same magnitude (angle θ snapped to a region
// boundary, magnitude r preserved).
//
// boundaries must be the strictly ascending Start/End list produced by
// sweep.Run; Locate does not re-validate its internal well-formedness.
func Locate(boundaries []sweep.Boundary, w1, w2 float64) (float64, float64, error) {
	if len(boundaries) < 2 {
		return 0, 0, ErrInsufficientBoundaries
	}
	if w1 < 0 || w2 < 0 {
		return 0, 0, ErrNegativeWeight
	}
	if w1 == 0 && w2 == 0 {
		return 0, 0, ErrZeroVector
	}

	r := math.Hypot(w1, w2)
	theta := math.Pi / 2
	if w1 != 0 {
		theta = math.Atan2(w2, w1)
	}

	low, high := bracket(boundaries, theta)

	lowB, highB := boundaries[low], boundaries[high]
	if lowB.Kind == sweep.Start && lowB.Theta <= theta && theta < highB.Theta {
		return w1, w2, nil
	}

	thetaStar := lowB.Theta
	if (theta - lowB.Theta) >= (highB.Theta - theta) {
		thetaStar = highB.Theta
	}

	return r * math.Cos(thetaStar), r * math.Sin(thetaStar), nil
}

// bracket returns the indices of the two boundaries immediately enclosing
// theta: low is the largest index with Theta <= theta (or 0), high is
// low+1 (or len-1 if theta is past the last boundary).
func bracket(boundaries []sweep.Boundary, theta float64) (low, high int) {
	low, high = 0, len(boundaries)-1
	for high-low > 1 {
		mid := (low + high) / 2
		if boundaries[mid].Theta <= theta {
			low = mid
		} else {
			high = mid
		}
	}

	return low, high
}
