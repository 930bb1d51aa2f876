package sectionbox

import "github.com/buildsight/bimview/pkg/math"

// Axis identifies one of the three world axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	panic("sectionbox: invalid axis")
}

// Of returns the component of v on this axis.
func (a Axis) Of(v math.Vec3) float32 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	case AxisZ:
		return v.Z
	}
	panic("sectionbox: invalid axis")
}

// With returns a copy of v with this axis replaced by val.
func (a Axis) With(v math.Vec3, val float32) math.Vec3 {
	switch a {
	case AxisX:
		v.X = val
	case AxisY:
		v.Y = val
	case AxisZ:
		v.Z = val
	default:
		panic("sectionbox: invalid axis")
	}
	return v
}

// Unit returns the unit vector along this axis.
func (a Axis) Unit() math.Vec3 {
	return a.With(math.Vec3{}, 1)
}

// Side identifies the min or max face of an axis.
type Side int

const (
	SideMin Side = iota
	SideMax
)

// String returns the side name.
func (s Side) String() string {
	if s == SideMin {
		return "min"
	}
	return "max"
}

// FaceID identifies one of the six box faces.
type FaceID struct {
	Axis Axis
	Side Side
}

// Faces lists all six faces in index order.
var Faces = [6]FaceID{
	{AxisX, SideMin}, {AxisX, SideMax},
	{AxisY, SideMin}, {AxisY, SideMax},
	{AxisZ, SideMin}, {AxisZ, SideMax},
}

// Index returns the face's position in Faces.
func (f FaceID) Index() int {
	return int(f.Axis)*2 + int(f.Side)
}

// Opposite returns the face on the other side of the same axis.
func (f FaceID) Opposite() FaceID {
	if f.Side == SideMin {
		return FaceID{f.Axis, SideMax}
	}
	return FaceID{f.Axis, SideMin}
}

// Normal returns the face's outward unit normal.
func (f FaceID) Normal() math.Vec3 {
	n := f.Axis.Unit()
	if f.Side == SideMin {
		return n.Neg()
	}
	return n
}

// String returns a name like "minX" or "maxZ".
func (f FaceID) String() string {
	names := [2]string{"min", "max"}
	axes := [3]string{"X", "Y", "Z"}
	return names[f.Side] + axes[f.Axis]
}

// HandleState is the visual state of a face handle.
type HandleState int

const (
	HandleDefault HandleState = iota
	HandleHover
	HandleActive
)
