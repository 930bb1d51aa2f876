// Package sectionbox implements an interactive axis-aligned clipping volume
// for the viewer: six clip planes derived from a box, draggable face handles
// and a wireframe drawn in a clipping-immune overlay pass.
package sectionbox

import (
	"go.uber.org/zap"

	"github.com/buildsight/bimview/internal/engine/picking"
	"github.com/buildsight/bimview/internal/engine/scene"
	"github.com/buildsight/bimview/pkg/math"
)

// overlayPassName keys the section box overlay pass on the renderer.
const overlayPassName = "sectionbox"

// DefaultMarginFactor is the fit margin used when none is configured.
const DefaultMarginFactor = 0.05

// Renderer is the host renderer boundary the section box drives.
type Renderer interface {
	// SetClipPlanes replaces the clip planes applied to the main scene.
	// An empty list disables clipping entirely.
	SetClipPlanes(planes []math.Plane)

	// AddOverlayPass registers a named render pass drawn after the main
	// scene with clipping disabled. Re-adding a name replaces the pass.
	AddOverlayPass(name string, graph *scene.Graph)

	// RemoveOverlayPass unregisters a pass. Unknown names are ignored.
	RemoveOverlayPass(name string)

	// RequestRender asks the host to redraw when convenient.
	RequestRender()
}

// Camera is the host camera boundary used for picking and dragging.
type Camera interface {
	// Ray returns the world-space ray through normalized device coords.
	Ray(ndc math.Vec2) picking.Ray

	// ViewDirection returns the normalized view direction.
	ViewDirection() math.Vec3
}

// Options tunes handle sizing.
type Options struct {
	// HandleSizeFactor scales handles relative to the smallest box extent.
	HandleSizeFactor float32

	// MinHandleRadius is the smallest handle size, keeping handles
	// pickable on very thin boxes.
	MinHandleRadius float32
}

// DefaultOptions returns the standard handle sizing.
func DefaultOptions() Options {
	return Options{
		HandleSizeFactor: 0.08,
		MinHandleRadius:  0.05,
	}
}

// handle is one of the six draggable face handles.
type handle struct {
	face  FaceID
	node  *scene.Node
	state HandleState
}

// SectionBox owns the clipping bounds, the overlay graph and the
// interaction state. All methods are driven synchronously by host events;
// the model is consistent before every method returns.
type SectionBox struct {
	renderer Renderer
	camera   Camera
	opts     Options
	log      *zap.Logger

	bounds  Bounds
	overlay *scene.Graph

	wireframe *scene.Node
	handles   [6]*handle

	hovered *handle
	drag    *dragSession
	hooked  bool
}

// New creates a disabled section box spanning the unit box. log may be nil.
func New(renderer Renderer, camera Camera, opts Options, log *zap.Logger) *SectionBox {
	if log == nil {
		log = zap.NewNop()
	}

	sb := &SectionBox{
		renderer: renderer,
		camera:   camera,
		opts:     opts,
		log:      log,
		bounds: Bounds{
			MinX: 0, MaxX: 1,
			MinY: 0, MaxY: 1,
			MinZ: 0, MaxZ: 1,
		},
		overlay: scene.NewGraph(),
	}

	sb.wireframe = &scene.Node{
		Name:  "sectionbox.wireframe",
		Kind:  scene.KindWireBox,
		Color: wireColor,
	}
	sb.overlay.Add(sb.wireframe)

	for i, f := range Faces {
		h := &handle{
			face: f,
			node: &scene.Node{
				Name:  "sectionbox.handle." + f.String(),
				Kind:  scene.KindBox,
				Color: handleColors[HandleDefault],
			},
		}
		sb.handles[i] = h
		sb.overlay.Add(h.node)
	}

	sb.syncVisuals()
	return sb
}

// Get returns the current bounds and enabled flag.
func (sb *SectionBox) Get() Bounds {
	return sb.bounds
}

// Set overwrites the six bound scalars. The enabled flag is unaffected and
// only changes via Enable. Ordering of min/max is not validated; bulk
// setters are trusted (deliberately inverted or empty boxes stay allowed).
func (sb *SectionBox) Set(b Bounds) {
	b.Enabled = sb.bounds.Enabled
	sb.bounds = b
	sb.syncClipPlanes()
	sb.syncVisuals()
	sb.renderer.RequestRender()
}

// FitTo sets the bounds to the given box expanded by size*marginFactor per
// axis. A null or empty box is ignored, keeping the last good state.
func (sb *SectionBox) FitTo(box picking.AABB, marginFactor float32) {
	if box.IsEmpty() {
		sb.log.Debug("section fit ignored: empty box")
		return
	}

	margin := box.Size().Scale(marginFactor)
	fitted := picking.AABB{
		Min: box.Min.Sub(margin),
		Max: box.Max.Add(margin),
	}
	sb.Set(boundsFromBox(fitted, sb.bounds.Enabled))
}

// Enable toggles the section box. One transition updates clip planes,
// overlay visibility, the overlay pass hook and any in-progress drag
// together, so the subsystems can never disagree about the state.
func (sb *SectionBox) Enable(enabled bool) {
	if sb.bounds.Enabled == enabled {
		return
	}
	sb.bounds.Enabled = enabled

	if sb.drag != nil {
		sb.endDrag()
	}
	if sb.hovered != nil {
		sb.setHandleState(sb.hovered, HandleDefault)
		sb.hovered = nil
	}

	sb.overlay.Traverse(func(n *scene.Node) { n.Visible = enabled })

	if enabled {
		sb.renderer.SetClipPlanes(sb.clipPlanes())
		if !sb.hooked {
			sb.renderer.AddOverlayPass(overlayPassName, sb.overlay)
			sb.hooked = true
		}
		sb.syncVisuals()
	} else {
		sb.renderer.SetClipPlanes(nil)
		if sb.hooked {
			sb.renderer.RemoveOverlayPass(overlayPassName)
			sb.hooked = false
		}
	}

	sb.renderer.RequestRender()
	sb.log.Debug("section box toggled", zap.Bool("enabled", enabled))
}

// Dispose releases the overlay and restores the renderer. The overlay pass
// is removed before any other teardown so the renderer can never call back
// into released state.
func (sb *SectionBox) Dispose() {
	if sb.hooked {
		sb.renderer.RemoveOverlayPass(overlayPassName)
		sb.hooked = false
	}
	sb.renderer.SetClipPlanes(nil)

	sb.drag = nil
	sb.hovered = nil
	sb.overlay.Remove(sb.wireframe)
	for _, h := range sb.handles {
		sb.overlay.Remove(h.node)
	}
	sb.bounds.Enabled = false
	sb.renderer.RequestRender()
}

// clipPlanes derives the six active planes from the current box.
func (sb *SectionBox) clipPlanes() []math.Plane {
	planes := derivePlanes(sb.bounds.Box())
	return planes[:]
}

// syncClipPlanes pushes rederived planes to the renderer while enabled.
// While disabled the renderer keeps its empty list.
func (sb *SectionBox) syncClipPlanes() {
	if sb.bounds.Enabled {
		sb.renderer.SetClipPlanes(sb.clipPlanes())
	}
}

// ScreenToNDC converts pixel coordinates to normalized device coordinates
// in [-1,1] with Y up.
func ScreenToNDC(screen math.Vec2, width, height int) math.Vec2 {
	return math.Vec2{
		X: 2*screen.X/float32(width) - 1,
		Y: 1 - 2*screen.Y/float32(height),
	}
}
