package sectionbox

import (
	"github.com/buildsight/bimview/internal/engine/picking"
	"github.com/buildsight/bimview/pkg/math"
)

// derivePlanes converts the box into six half-space clip planes, one pair
// per axis. Each plane keeps the inside of the box visible: for axis X the
// pair is (normal +X, constant -min.x) clipping x < min.x, and
// (normal -X, constant +max.x) clipping x > max.x.
func derivePlanes(box picking.AABB) [6]math.Plane {
	var planes [6]math.Plane
	for _, f := range Faces {
		// The clip normal points into the box, opposite the face's
		// outward normal.
		normal := f.Normal().Neg()
		var constant float32
		if f.Side == SideMin {
			constant = -f.Axis.Of(box.Min)
		} else {
			constant = f.Axis.Of(box.Max)
		}
		planes[f.Index()] = math.Plane{Normal: normal, Constant: constant}
	}
	return planes
}
