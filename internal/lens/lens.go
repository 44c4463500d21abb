package lens

const (
	DefaultStrength = 0.5

	// MaxDistance is expressed in lattice spacings.
	DefaultMaxDistance = 3.0

	MinAlpha = 0.1
	MaxAlpha = 1.0
)

// Params holds the lensing constants applied to every vertex.
type Params struct {
	Strength    float64
	MaxDistance float64
}

func DefaultParams(spacing float64) Params {
	return Params{Strength: DefaultStrength, MaxDistance: DefaultMaxDistance * spacing}
}

// Distort pulls p toward center by strength/r², where r is the distance
// between them. A point sitting exactly on the center is returned as is.
func Distort(p, center Vec3, strength float64) Vec3 {
	r := p.Distance(center)
	if r == 0 {
		return p
	}
	d := strength / (r * r)
	return center.Add(p.Sub(center).Scale(1 - d))
}

// Alpha fades linearly from MaxAlpha at the center to MinAlpha at
// maxDistance and stays at MinAlpha beyond it.
func Alpha(p, center Vec3, maxDistance float64) float64 {
	d := p.Distance(center)
	if d > maxDistance {
		return MinAlpha
	}
	return MinAlpha + (MaxAlpha-MinAlpha)*(1-d/maxDistance)
}

// Apply distorts p and returns the distorted point with the alpha of the
// distorted position.
func (p Params) Apply(point, center Vec3) (Vec3, float64) {
	q := Distort(point, center, p.Strength)
	return q, Alpha(q, center, p.MaxDistance)
}

// Displacement is how far a point at distance r from the mass moves.
func (p Params) Displacement(r float64) float64 {
	if r == 0 {
		return 0
	}
	return p.Strength / r
}

// Sample is the lens response at one distance from the mass.
type Sample struct {
	Distance     float64
	Displacement float64
	Alpha        float64
}

// Profile samples the response along a ray from the mass at n evenly
// spaced distances in (0, maxDistance].
func (p Params) Profile(maxDistance float64, n int) []Sample {
	if n < 1 || maxDistance <= 0 {
		return nil
	}
	out := make([]Sample, 0, n)
	for i := 1; i <= n; i++ {
		r := maxDistance * float64(i) / float64(n)
		q, a := p.Apply(Vec3{X: r}, Vec3{})
		out = append(out, Sample{Distance: r, Displacement: r - q.X, Alpha: a})
	}
	return out
}
