// Package picking provides ray casting utilities for object picking.
package picking

import (
	gomath "math"

	"github.com/buildsight/bimview/pkg/math"
)

// parallelEpsilon is the threshold below which a ray is treated as
// parallel to a plane.
const parallelEpsilon = 1e-6

// Ray is a ray in 3D space with origin and normalized direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// IsEmpty reports whether the box has zero or negative volume.
func (b AABB) IsEmpty() bool {
	return b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y || b.Max.Z <= b.Min.Z
}

// Size returns the box extents per axis.
func (b AABB) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the box center point.
func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// IntersectPlane intersects the ray with a plane. Returns the world-space
// intersection point, or ok=false when the ray is near-parallel to the
// plane or the intersection lies behind the ray origin.
func (r Ray) IntersectPlane(pl math.Plane) (math.Vec3, bool) {
	denom := pl.Normal.Dot(r.Direction)
	if gomath.Abs(float64(denom)) < parallelEpsilon {
		return math.Vec3{}, false
	}

	t := -pl.DistanceTo(r.Origin) / denom
	if t < 0 {
		return math.Vec3{}, false
	}
	return r.At(t), true
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box
// using the slab method. Returns the distance to intersection and whether
// an intersection occurred. If the ray starts inside the box, the exit
// distance is returned.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	axes := [3][2]float32{
		{r.Origin.X, r.Direction.X},
		{r.Origin.Y, r.Direction.Y},
		{r.Origin.Z, r.Direction.Z},
	}
	mins := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	maxs := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	for i := 0; i < 3; i++ {
		origin, dir := axes[i][0], axes[i][1]
		if dir != 0 {
			t1 := (mins[i] - origin) / dir
			t2 := (maxs[i] - origin) / dir
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			if t1 > tmin {
				tmin = t1
			}
			if t2 < tmax {
				tmax = t2
			}
		} else if origin < mins[i] || origin > maxs[i] {
			return 0, false
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}

	// Entry point, or exit point when starting inside.
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
