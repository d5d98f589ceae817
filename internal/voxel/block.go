package voxel

// BlockType tags a single cell. The zero value is Air.
type BlockType uint8

const (
	Air BlockType = iota
	Grass
	Dirt
	Stone
	Sand
	Snow
	Water
	Logs
	Leaves
	Gravel

	blockTypeCount
)

var blockNames = [blockTypeCount]string{
	Air:    "air",
	Grass:  "grass",
	Dirt:   "dirt",
	Stone:  "stone",
	Sand:   "sand",
	Snow:   "snow",
	Water:  "water",
	Logs:   "logs",
	Leaves: "leaves",
	Gravel: "gravel",
}

func (b BlockType) String() string {
	if b < blockTypeCount {
		return blockNames[b]
	}
	return "unknown"
}

// IsActive reports whether the block is anything but air.
func (b BlockType) IsActive() bool {
	return b != Air
}

// Hides reports whether a block of type b, sitting next to a face of type
// face, keeps that face from being drawn. Leaves never hide anything and
// water only hides other water.
func (b BlockType) Hides(face BlockType) bool {
	switch b {
	case Air, Leaves:
		return false
	case Water:
		return face == Water
	default:
		return true
	}
}

// BlockTypes lists every non-air type in texture-layer order.
func BlockTypes() []BlockType {
	out := make([]BlockType, 0, blockTypeCount-1)
	for b := Grass; b < blockTypeCount; b++ {
		out = append(out, b)
	}
	return out
}
