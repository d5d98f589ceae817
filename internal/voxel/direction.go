package voxel

// Direction is one of the six axis-aligned face normals.
type Direction uint8

const (
	Backward Direction = iota // +Z
	Forward                   // -Z
	Left                      // -X
	Right                     // +X
	Down                      // -Y
	Up                        // +Y
)

// Directions is every Direction in mesh-buffer order.
var Directions = [6]Direction{Backward, Forward, Left, Right, Down, Up}

var directionOffsets = [6][3]int{
	Backward: {0, 0, 1},
	Forward:  {0, 0, -1},
	Left:     {-1, 0, 0},
	Right:    {1, 0, 0},
	Down:     {0, -1, 0},
	Up:       {0, 1, 0},
}

var directionNames = [6]string{"backward", "forward", "left", "right", "down", "up"}

// Offset returns the unit step (dx, dy, dz) toward the neighbour cell.
func (d Direction) Offset() (dx, dy, dz int) {
	o := directionOffsets[d]
	return o[0], o[1], o[2]
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "invalid"
}
