package lens

import (
	"errors"
	"fmt"
)

var ErrLatticeSize = errors.New("lens: lattice size must be at least 1")

// Lattice is the set of axis coordinates of the undistorted grid. The
// same coordinates are used along X, Y and Z.
type Lattice struct {
	coords  []float64
	spacing float64
}

// NewLattice spreads size samples evenly over [-size/2, size/2] and scales
// them by spacing, endpoints included.
func NewLattice(size int, spacing float64) (Lattice, error) {
	if size < 1 {
		return Lattice{}, fmt.Errorf("%w: got %d", ErrLatticeSize, size)
	}
	half := float64(size) / 2
	coords := make([]float64, size)
	if size == 1 {
		coords[0] = -half * spacing
		return Lattice{coords: coords, spacing: spacing}, nil
	}
	step := 2 * half / float64(size-1)
	for i := range coords {
		coords[i] = (-half + float64(i)*step) * spacing
	}
	coords[size-1] = half * spacing
	return Lattice{coords: coords, spacing: spacing}, nil
}

func (l Lattice) Size() int         { return len(l.coords) }
func (l Lattice) At(i int) float64  { return l.coords[i] }
func (l Lattice) Spacing() float64  { return l.spacing }
func (l Lattice) Coords() []float64 { return append([]float64(nil), l.coords...) }

// Point returns the undistorted lattice point at indices (i, j, k).
func (l Lattice) Point(i, j, k int) Vec3 {
	return Vec3{l.coords[i], l.coords[j], l.coords[k]}
}

// Bound is the distance from the origin at which the mass turns around:
// half the grid extent plus one unit.
func (l Lattice) Bound() float64 {
	return float64(len(l.coords))/2*l.spacing + 1
}
