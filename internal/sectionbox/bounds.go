package sectionbox

import (
	"github.com/buildsight/bimview/internal/engine/picking"
	"github.com/buildsight/bimview/pkg/math"
)

// minThickness is the smallest axis extent interactive dragging may leave.
// A min face can never be dragged closer than this to its opposite max.
const minThickness = 0.01

// Bounds holds the six scalar extents of the section box plus the enabled
// flag. Programmatic setters are trusted to supply well-formed values; only
// interactive dragging enforces the min+minThickness <= max invariant.
type Bounds struct {
	MinX, MaxX float32
	MinY, MaxY float32
	MinZ, MaxZ float32
	Enabled    bool
}

// Box returns the derived axial bounding volume.
func (b Bounds) Box() picking.AABB {
	return picking.AABB{
		Min: math.Vec3{X: b.MinX, Y: b.MinY, Z: b.MinZ},
		Max: math.Vec3{X: b.MaxX, Y: b.MaxY, Z: b.MaxZ},
	}
}

// Value returns the bound scalar owned by the given face.
func (b Bounds) Value(f FaceID) float32 {
	switch f {
	case FaceID{AxisX, SideMin}:
		return b.MinX
	case FaceID{AxisX, SideMax}:
		return b.MaxX
	case FaceID{AxisY, SideMin}:
		return b.MinY
	case FaceID{AxisY, SideMax}:
		return b.MaxY
	case FaceID{AxisZ, SideMin}:
		return b.MinZ
	case FaceID{AxisZ, SideMax}:
		return b.MaxZ
	}
	panic("sectionbox: invalid face " + f.String())
}

// SetValue overwrites the bound scalar owned by the given face.
func (b *Bounds) SetValue(f FaceID, v float32) {
	switch f {
	case FaceID{AxisX, SideMin}:
		b.MinX = v
	case FaceID{AxisX, SideMax}:
		b.MaxX = v
	case FaceID{AxisY, SideMin}:
		b.MinY = v
	case FaceID{AxisY, SideMax}:
		b.MaxY = v
	case FaceID{AxisZ, SideMin}:
		b.MinZ = v
	case FaceID{AxisZ, SideMax}:
		b.MaxZ = v
	default:
		panic("sectionbox: invalid face " + f.String())
	}
}

// boundsFromBox builds Bounds covering the given box, keeping enabled as is.
func boundsFromBox(box picking.AABB, enabled bool) Bounds {
	return Bounds{
		MinX: box.Min.X, MaxX: box.Max.X,
		MinY: box.Min.Y, MaxY: box.Max.Y,
		MinZ: box.Min.Z, MaxZ: box.Max.Z,
		Enabled: enabled,
	}
}
