package sectionbox

import "github.com/buildsight/bimview/pkg/math"

// renderSizeFloor is the smallest per-axis scale the wireframe is drawn
// with. Cosmetic only; it is never written back into the bounds.
const renderSizeFloor = 0.001

var (
	wireColor    = [4]float32{0.95, 0.65, 0.10, 1.0}
	handleColors = [3][4]float32{
		HandleDefault: {0.55, 0.55, 0.60, 0.9},
		HandleHover:   {0.95, 0.80, 0.20, 1.0},
		HandleActive:  {1.00, 0.45, 0.10, 1.0},
	}
)

// syncVisuals recomputes the overlay transforms from the current box:
// wireframe at the box center scaled to its size, and one handle centered
// on each face.
func (sb *SectionBox) syncVisuals() {
	box := sb.bounds.Box()
	center := box.Center()
	size := box.Size()

	sb.wireframe.Position = center
	sb.wireframe.Scale = math.Vec3{
		X: maxf(size.X, renderSizeFloor),
		Y: maxf(size.Y, renderSizeFloor),
		Z: maxf(size.Z, renderSizeFloor),
	}

	// Handles stay visible even on very thin boxes.
	minDim := minf(size.X, minf(size.Y, size.Z))
	handleSize := maxf(minDim*sb.opts.HandleSizeFactor, sb.opts.MinHandleRadius)

	for _, h := range sb.handles {
		h.node.Position = h.face.Axis.With(center, sb.bounds.Value(h.face))
		h.node.Scale = math.Vec3{X: handleSize, Y: handleSize, Z: handleSize}
		h.node.Color = handleColors[h.state]
	}
}

// setHandleState updates a single handle's visual state and its node color.
func (sb *SectionBox) setHandleState(h *handle, state HandleState) {
	h.state = state
	h.node.Color = handleColors[state]
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
