// Package lens provides the per-vertex math of the gravity grid.
//
// A point mass pulls every lattice point toward itself with an
// inverse-square falloff, and the opacity of each point fades linearly
// with its distance from the mass:
//
//   - [Distort]: radial pull of a point toward the mass
//   - [Alpha]: opacity in [MinAlpha, MaxAlpha] from distance to the mass
//   - [Lattice]: evenly spaced axis coordinates shared by all three axes
//
// # Example
//
//	l, _ := lens.NewLattice(10, 1.0)
//	p := lens.DefaultParams(1.0)
//	q, a := p.Apply(lens.Vec3{X: l.At(0), Y: l.At(3), Z: l.At(9)}, center)
//
// Points closer to the mass than sqrt(Strength) are pulled past it. The
// pull factor is deliberately left unclamped.
package lens
