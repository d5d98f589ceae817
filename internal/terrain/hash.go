package terrain

// hash32 is a murmur-style finalizer with good avalanche.
func hash32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}

// hash2 mixes a seed with integer column coordinates.
func hash2(seed uint32, x, z int32) uint32 {
	h := seed
	h ^= uint32(x) * 0x9e3779b1
	h ^= uint32(z) * 0x85ebca6b
	return hash32(h)
}

// unitDraw turns a column hash into a uniform value in [0, 1).
func unitDraw(seed uint32, wx, wz int) float64 {
	return float64(hash2(seed, int32(wx), int32(wz))>>8) / (1 << 24)
}
