package sectionbox

import (
	gomath "math"

	"github.com/buildsight/bimview/pkg/math"
)

// hitTest casts a ray through the given normalized device coordinates and
// intersects it against the six face handles only. Returns the nearest hit
// handle and the world-space hit point, or ok=false on a miss.
func (sb *SectionBox) hitTest(ndc math.Vec2) (*handle, math.Vec3, bool) {
	ray := sb.camera.Ray(ndc)

	var nearest *handle
	nearestT := float32(gomath.MaxFloat32)
	for _, h := range sb.handles {
		if !h.node.Visible {
			continue
		}
		t, hit := ray.IntersectAABB(h.node.AABB())
		if hit && t < nearestT {
			nearest = h
			nearestT = t
		}
	}

	if nearest == nil {
		return nil, math.Vec3{}, false
	}
	return nearest, ray.At(nearestT), true
}
