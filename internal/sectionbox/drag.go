package sectionbox

import (
	"go.uber.org/zap"

	"github.com/buildsight/bimview/pkg/math"
)

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota + 1
	MouseButtonMiddle
	MouseButtonRight
)

// dragSession holds the state of an in-progress face drag. It exists only
// between a successful press on a handle and the matching release.
type dragSession struct {
	face       FaceID
	startPoint math.Vec3
	startValue float32

	// plane faces the viewer (normal opposite the camera view direction),
	// so the drag feels the same from any camera angle.
	plane math.Plane
}

// OnMouseDown starts a drag when the primary button presses on a handle.
// Returns whether the event was consumed.
func (sb *SectionBox) OnMouseDown(ndc math.Vec2, button MouseButton) bool {
	if !sb.bounds.Enabled || button != MouseButtonLeft {
		return false
	}

	h, point, ok := sb.hitTest(ndc)
	if !ok {
		return false
	}

	normal := sb.camera.ViewDirection().Neg()
	sb.drag = &dragSession{
		face:       h.face,
		startPoint: point,
		startValue: sb.bounds.Value(h.face),
		plane:      math.PlaneFromPointNormal(point, normal),
	}
	sb.setHandleState(h, HandleActive)
	sb.renderer.RequestRender()

	sb.log.Debug("section drag started",
		zap.String("face", h.face.String()),
		zap.Float32("start", sb.drag.startValue),
	)
	return true
}

// OnMouseMove updates an active drag, or the hover highlight otherwise.
// Returns whether the event was consumed (true only during a drag).
func (sb *SectionBox) OnMouseMove(ndc math.Vec2) bool {
	if sb.drag != nil {
		sb.updateDrag(ndc)
		return true
	}
	sb.updateHover(ndc)
	return false
}

// OnMouseUp ends an active drag. Returns whether the event was consumed.
func (sb *SectionBox) OnMouseUp() bool {
	if sb.drag == nil {
		return false
	}
	sb.endDrag()
	return true
}

// updateDrag projects the pointer onto the drag plane and moves the active
// face's bound by the axis delta, clamped against the opposite bound.
func (sb *SectionBox) updateDrag(ndc math.Vec2) {
	ray := sb.camera.Ray(ndc)
	point, ok := ray.IntersectPlane(sb.drag.plane)
	if !ok {
		// Camera-parallel degenerate case: keep the last good state.
		return
	}

	axis := sb.drag.face.Axis
	delta := axis.Of(point) - axis.Of(sb.drag.startPoint)
	value := sb.drag.startValue + delta

	opposite := sb.bounds.Value(sb.drag.face.Opposite())
	if sb.drag.face.Side == SideMin {
		if value > opposite-minThickness {
			value = opposite - minThickness
		}
	} else {
		if value < opposite+minThickness {
			value = opposite + minThickness
		}
	}

	sb.bounds.SetValue(sb.drag.face, value)
	sb.syncClipPlanes()
	sb.syncVisuals()
	sb.renderer.RequestRender()
}

// updateHover highlights at most one handle under the pointer.
func (sb *SectionBox) updateHover(ndc math.Vec2) {
	if !sb.bounds.Enabled {
		return
	}

	hit, _, ok := sb.hitTest(ndc)
	if !ok {
		hit = nil
	}
	if hit == sb.hovered {
		return
	}

	if sb.hovered != nil {
		sb.setHandleState(sb.hovered, HandleDefault)
	}
	sb.hovered = hit
	if hit != nil {
		sb.setHandleState(hit, HandleHover)
	}
	sb.renderer.RequestRender()
}

// endDrag discards the drag session and resets the active handle.
func (sb *SectionBox) endDrag() {
	face := sb.drag.face
	sb.setHandleState(sb.handles[face.Index()], HandleDefault)
	sb.drag = nil
	sb.hovered = nil
	sb.renderer.RequestRender()

	sb.log.Debug("section drag ended", zap.String("face", face.String()))
}
