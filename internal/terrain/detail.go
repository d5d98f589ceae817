package terrain

import (
	"math"
	"math/rand"
)

// detailNoise is an improved Perlin lattice (quintic fade, 12 edge
// gradients) used for small per-column variation: subsurface depth and trunk
// height. The permutation table is fixed at construction, so concurrent
// reads are safe.
type detailNoise struct {
	perm [512]int
}

var detailGradients = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

func newDetailNoise(seed int64) *detailNoise {
	n := &detailNoise{}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < 256; i++ {
		n.perm[i] = i
	}
	// Fisher-Yates
	for i := 255; i > 0; i-- {
		j := rng.Intn(i + 1)
		n.perm[i], n.perm[j] = n.perm[j], n.perm[i]
	}
	for i := 0; i < 256; i++ {
		n.perm[256+i] = n.perm[i]
	}
	return n
}

// 6t^5 - 15t^4 + 10t^3
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func (n *detailNoise) grad(hash int, x, y, z float64) float64 {
	g := detailGradients[hash%12]
	return g[0]*x + g[1]*y + g[2]*z
}

// noise3 returns lattice noise in roughly [-1, 1].
func (n *detailNoise) noise3(x, y, z float64) float64 {
	fx, fy, fz := math.Floor(x), math.Floor(y), math.Floor(z)
	X, Y, Z := int(fx)&255, int(fy)&255, int(fz)&255
	x, y, z = x-fx, y-fy, z-fz
	u, v, w := fade(x), fade(y), fade(z)

	p := &n.perm
	A := p[X] + Y
	AA := p[A] + Z
	AB := p[A+1] + Z
	B := p[X+1] + Y
	BA := p[B] + Z
	BB := p[B+1] + Z

	return lerp(w,
		lerp(v,
			lerp(u, n.grad(p[AA], x, y, z), n.grad(p[BA], x-1, y, z)),
			lerp(u, n.grad(p[AB], x, y-1, z), n.grad(p[BB], x-1, y-1, z))),
		lerp(v,
			lerp(u, n.grad(p[AA+1], x, y, z-1), n.grad(p[BA+1], x-1, y, z-1)),
			lerp(u, n.grad(p[AB+1], x, y-1, z-1), n.grad(p[BB+1], x-1, y-1, z-1))))
}

// turbulence2 sums octaves of noise3 in the y=0 plane, normalised to [-1, 1].
func (n *detailNoise) turbulence2(x, z float64, octaves int, persistence float64) float64 {
	value, amplitude, frequency, total := 0.0, 1.0, 1.0, 0.0
	for i := 0; i < octaves; i++ {
		value += n.noise3(x*frequency, 0, z*frequency) * amplitude
		total += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return value / total
}

// at01 samples the column detail value in [0, 1].
func (n *detailNoise) at01(wx, wz int) float64 {
	v := n.turbulence2(float64(wx)*0.11+0.5, float64(wz)*0.11+0.5, 2, 0.5)
	return clamp01((v + 1) / 2)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
