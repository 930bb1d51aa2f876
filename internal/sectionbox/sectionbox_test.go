package sectionbox

import (
	"testing"

	"github.com/buildsight/bimview/internal/engine/picking"
	"github.com/buildsight/bimview/internal/engine/scene"
	"github.com/buildsight/bimview/pkg/math"
)

// fakeRenderer records what the section box pushes to the host.
type fakeRenderer struct {
	planes  []math.Plane
	passes  map[string]*scene.Graph
	renders int
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{passes: make(map[string]*scene.Graph)}
}

func (r *fakeRenderer) SetClipPlanes(planes []math.Plane)          { r.planes = planes }
func (r *fakeRenderer) AddOverlayPass(name string, g *scene.Graph) { r.passes[name] = g }
func (r *fakeRenderer) RemoveOverlayPass(name string)              { delete(r.passes, name) }
func (r *fakeRenderer) RequestRender()                             { r.renders++ }

// fakeCamera looks down -Z from z=10 with an orthographic mapping of NDC
// onto world XY scaled by 10, which makes drag math easy to follow.
type fakeCamera struct{}

func (fakeCamera) Ray(ndc math.Vec2) picking.Ray {
	return picking.Ray{
		Origin:    math.Vec3{X: ndc.X * 10, Y: ndc.Y * 10, Z: 10},
		Direction: math.Vec3{Z: -1},
	}
}

func (fakeCamera) ViewDirection() math.Vec3 {
	return math.Vec3{Z: -1}
}

// newTestBox returns an enabled section box spanning (-2..2) on all axes.
func newTestBox(t *testing.T) (*SectionBox, *fakeRenderer) {
	t.Helper()
	r := newFakeRenderer()
	sb := New(r, fakeCamera{}, DefaultOptions(), nil)
	sb.Set(Bounds{MinX: -2, MaxX: 2, MinY: -2, MaxY: 2, MinZ: -2, MaxZ: 2})
	sb.Enable(true)
	return sb, r
}

// ndcOver maps a world point onto the fake camera's NDC.
func ndcOver(p math.Vec3) math.Vec2 {
	return math.Vec2{X: p.X / 10, Y: p.Y / 10}
}

func TestSetGetRoundTrip(t *testing.T) {
	r := newFakeRenderer()
	sb := New(r, fakeCamera{}, DefaultOptions(), nil)

	in := Bounds{MinX: -1.5, MaxX: 3, MinY: 0.25, MaxY: 8, MinZ: -7, MaxZ: -1}
	sb.Set(in)

	got := sb.Get()
	if got.MinX != in.MinX || got.MaxX != in.MaxX ||
		got.MinY != in.MinY || got.MaxY != in.MaxY ||
		got.MinZ != in.MinZ || got.MaxZ != in.MaxZ {
		t.Errorf("Get() = %+v, want scalars of %+v", got, in)
	}
	if got.Enabled {
		t.Error("Set must not change the enabled flag")
	}

	// Even an enabled flag smuggled into Set is ignored.
	in.Enabled = true
	sb.Set(in)
	if sb.Get().Enabled {
		t.Error("Set must ignore the enabled flag on its input")
	}
}

func TestEnableInstallsPlanesAndOverlay(t *testing.T) {
	sb, r := newTestBox(t)

	if len(r.planes) != 6 {
		t.Fatalf("clip planes = %d, want 6", len(r.planes))
	}
	if _, ok := r.passes[overlayPassName]; !ok {
		t.Fatal("overlay pass not registered")
	}
	visible := 0
	sb.overlay.Traverse(func(n *scene.Node) {
		if n.Visible {
			visible++
		}
	})
	if visible != 7 { // wireframe + six handles
		t.Errorf("visible overlay nodes = %d, want 7", visible)
	}

	// Enabling twice must not nest hooks.
	sb.Enable(true)
	if len(r.passes) != 1 {
		t.Errorf("passes after double enable = %d, want 1", len(r.passes))
	}
}

func TestDisableClearsPlanesAndHidesOverlay(t *testing.T) {
	sb, r := newTestBox(t)
	before := sb.Get()

	sb.Enable(false)

	if len(r.planes) != 0 {
		t.Errorf("clip planes after disable = %d, want 0", len(r.planes))
	}
	if _, ok := r.passes[overlayPassName]; ok {
		t.Error("overlay pass still registered after disable")
	}
	sb.overlay.Traverse(func(n *scene.Node) {
		if n.Visible {
			t.Errorf("node %s still visible after disable", n.Name)
		}
	})

	// Bounds values survive the toggle.
	after := sb.Get()
	before.Enabled, after.Enabled = false, false
	if before != after {
		t.Error("disable must not alter bounds values")
	}
}

func TestFitToExact(t *testing.T) {
	sb, _ := newTestBox(t)
	box := picking.AABB{Min: math.Vec3{X: -1, Y: 2, Z: -3}, Max: math.Vec3{X: 4, Y: 5, Z: 6}}

	sb.FitTo(box, 0)

	got := sb.Get()
	want := Bounds{MinX: -1, MaxX: 4, MinY: 2, MaxY: 5, MinZ: -3, MaxZ: 6, Enabled: true}
	if got != want {
		t.Errorf("FitTo(box, 0) = %+v, want %+v", got, want)
	}
}

func TestFitToMargin(t *testing.T) {
	sb, _ := newTestBox(t)
	box := picking.AABB{Min: math.Vec3{X: -2, Y: -2, Z: -2}, Max: math.Vec3{X: 2, Y: 2, Z: 2}}

	sb.FitTo(box, 0.1)

	got := sb.Get()
	// size 4 * margin 0.1 = 0.4 per axis
	checks := [][2]float32{
		{got.MinX, -2.4}, {got.MaxX, 2.4},
		{got.MinY, -2.4}, {got.MaxY, 2.4},
		{got.MinZ, -2.4}, {got.MaxZ, 2.4},
	}
	for i, c := range checks {
		if absf(c[0]-c[1]) > 1e-5 {
			t.Errorf("bound %d = %f, want %f", i, c[0], c[1])
		}
	}
}

func TestFitToEmptyIgnored(t *testing.T) {
	sb, _ := newTestBox(t)
	before := sb.Get()

	sb.FitTo(picking.AABB{}, 0.05)

	if sb.Get() != before {
		t.Error("FitTo with an empty box must keep the last good state")
	}

	flat := picking.AABB{Min: math.Vec3{X: 0, Y: 0, Z: 0}, Max: math.Vec3{X: 1, Y: 0, Z: 1}}
	sb.FitTo(flat, 0.05)
	if sb.Get() != before {
		t.Error("FitTo with a zero-volume box must keep the last good state")
	}
}

func TestHoverHighlight(t *testing.T) {
	sb, _ := newTestBox(t)
	minX := sb.handles[FaceID{AxisX, SideMin}.Index()]

	handled := sb.OnMouseMove(ndcOver(minX.node.Position))
	if handled {
		t.Error("hover move must not be consumed")
	}
	if minX.state != HandleHover {
		t.Errorf("minX handle state = %v, want hover", minX.state)
	}
	for _, h := range sb.handles {
		if h != minX && h.state != HandleDefault {
			t.Errorf("handle %v state = %v, want default", h.face, h.state)
		}
	}

	// Moving away clears the highlight.
	sb.OnMouseMove(math.Vec2{X: 0.95, Y: 0.95})
	if minX.state != HandleDefault {
		t.Errorf("minX handle state after move away = %v, want default", minX.state)
	}
}

func TestHoverNearestHandleWins(t *testing.T) {
	sb, _ := newTestBox(t)

	// The center ray passes through both Z handles; the nearer (maxZ,
	// toward the camera at +Z) must win.
	sb.OnMouseMove(math.Vec2{})
	maxZ := sb.handles[FaceID{AxisZ, SideMax}.Index()]
	minZ := sb.handles[FaceID{AxisZ, SideMin}.Index()]
	if maxZ.state != HandleHover {
		t.Errorf("maxZ state = %v, want hover", maxZ.state)
	}
	if minZ.state != HandleDefault {
		t.Errorf("minZ state = %v, want default", minZ.state)
	}
}

func TestDragMovesBound(t *testing.T) {
	sb, _ := newTestBox(t)
	minX := sb.handles[FaceID{AxisX, SideMin}.Index()]

	if !sb.OnMouseDown(ndcOver(minX.node.Position), MouseButtonLeft) {
		t.Fatal("press on handle must be consumed")
	}
	if minX.state != HandleActive {
		t.Errorf("active handle state = %v, want active", minX.state)
	}

	if !sb.OnMouseMove(math.Vec2{X: -0.35, Y: 0}) {
		t.Fatal("drag move must be consumed")
	}
	got := sb.Get().MinX
	if absf(got-(-3.5)) > 1e-3 {
		t.Errorf("MinX after drag = %f, want -3.5", got)
	}

	if !sb.OnMouseUp() {
		t.Fatal("release ending a drag must be consumed")
	}
	if minX.state != HandleDefault {
		t.Errorf("handle state after release = %v, want default", minX.state)
	}
}

func TestDragClampsAgainstOppositeBound(t *testing.T) {
	sb, _ := newTestBox(t)
	minX := sb.handles[FaceID{AxisX, SideMin}.Index()]

	sb.OnMouseDown(ndcOver(minX.node.Position), MouseButtonLeft)

	// However far past maxX the pointer goes, minX stops at maxX - 0.01.
	for _, x := range []float32{0.25, 0.5, 0.99} {
		sb.OnMouseMove(math.Vec2{X: x})
		got := sb.Get()
		if got.MinX > got.MaxX-minThickness+1e-6 {
			t.Fatalf("MinX = %f crossed MaxX-0.01 = %f", got.MinX, got.MaxX-minThickness)
		}
	}
	got := sb.Get()
	if absf(got.MinX-(got.MaxX-minThickness)) > 1e-5 {
		t.Errorf("MinX = %f, want clamp at %f", got.MinX, got.MaxX-minThickness)
	}

	if got.MinX+minThickness > got.MaxX+1e-6 {
		t.Errorf("box degenerate after drag: %f + 0.01 > %f", got.MinX, got.MaxX)
	}
}

func TestDragMaxFaceClamp(t *testing.T) {
	sb, _ := newTestBox(t)
	maxX := sb.handles[FaceID{AxisX, SideMax}.Index()]

	sb.OnMouseDown(ndcOver(maxX.node.Position), MouseButtonLeft)
	sb.OnMouseMove(math.Vec2{X: -0.99})

	got := sb.Get()
	if absf(got.MaxX-(got.MinX+minThickness)) > 1e-5 {
		t.Errorf("MaxX = %f, want clamp at %f", got.MaxX, got.MinX+minThickness)
	}
}

func TestDragUpdatesPlanesAndVisuals(t *testing.T) {
	sb, r := newTestBox(t)
	minX := sb.handles[FaceID{AxisX, SideMin}.Index()]

	sb.OnMouseDown(ndcOver(minX.node.Position), MouseButtonLeft)
	sb.OnMouseMove(math.Vec2{X: -0.35})

	// Plane pair for X reflects the new bound: normal +X, constant -minX.
	pl := r.planes[FaceID{AxisX, SideMin}.Index()]
	if absf(pl.Constant-3.5) > 1e-3 {
		t.Errorf("minX plane constant = %f, want 3.5", pl.Constant)
	}

	// Wireframe follows the box.
	wantCenter := sb.Get().Box().Center()
	if sb.wireframe.Position.Distance(wantCenter) > 1e-4 {
		t.Errorf("wireframe position = %v, want %v", sb.wireframe.Position, wantCenter)
	}
}

func TestMouseEventsWhenIdle(t *testing.T) {
	sb, _ := newTestBox(t)

	if sb.OnMouseUp() {
		t.Error("release without a drag must not be consumed")
	}
	if sb.OnMouseDown(math.Vec2{X: 0.95, Y: 0.95}, MouseButtonLeft) {
		t.Error("press missing all handles must not be consumed")
	}

	minX := sb.handles[FaceID{AxisX, SideMin}.Index()]
	if sb.OnMouseDown(ndcOver(minX.node.Position), MouseButtonRight) {
		t.Error("non-primary button must not start a drag")
	}
}

func TestDisabledBoxIgnoresInput(t *testing.T) {
	sb, _ := newTestBox(t)
	minX := sb.handles[FaceID{AxisX, SideMin}.Index()]
	pos := minX.node.Position
	sb.Enable(false)

	if sb.OnMouseDown(ndcOver(pos), MouseButtonLeft) {
		t.Error("disabled box must not consume presses")
	}
	if sb.OnMouseMove(ndcOver(pos)) {
		t.Error("disabled box must not consume moves")
	}
	if minX.state != HandleDefault {
		t.Error("disabled box must not highlight handles")
	}
}

func TestDisableMidDragThenMouseUp(t *testing.T) {
	sb, _ := newTestBox(t)
	minX := sb.handles[FaceID{AxisX, SideMin}.Index()]

	sb.OnMouseDown(ndcOver(minX.node.Position), MouseButtonLeft)
	sb.Enable(false)

	if sb.drag != nil {
		t.Fatal("disable must terminate the drag")
	}
	if sb.OnMouseUp() {
		t.Error("release after disable must report not handled")
	}
	if minX.state != HandleDefault {
		t.Errorf("handle state = %v, want default", minX.state)
	}
}

func TestDispose(t *testing.T) {
	sb, r := newTestBox(t)
	sb.Dispose()

	if _, ok := r.passes[overlayPassName]; ok {
		t.Error("overlay pass still registered after dispose")
	}
	if len(r.planes) != 0 {
		t.Error("clip planes not cleared on dispose")
	}
	if sb.overlay.Len() != 0 {
		t.Errorf("overlay graph has %d nodes after dispose, want 0", sb.overlay.Len())
	}
}

func TestThinBoxVisuals(t *testing.T) {
	sb, _ := newTestBox(t)

	// Bulk setters are permissive: a zero-thickness Y extent is allowed.
	sb.Set(Bounds{MinX: 0, MaxX: 4, MinY: 1, MaxY: 1, MinZ: 0, MaxZ: 4})

	// The wireframe gets a cosmetic floor; the bounds do not.
	if sb.wireframe.Scale.Y != renderSizeFloor {
		t.Errorf("wireframe Y scale = %f, want %f", sb.wireframe.Scale.Y, renderSizeFloor)
	}
	got := sb.Get()
	if got.MinY != 1 || got.MaxY != 1 {
		t.Error("render floor must not be written back into bounds")
	}

	// Handles keep their minimum size.
	opts := DefaultOptions()
	for _, h := range sb.handles {
		if h.node.Scale.X < opts.MinHandleRadius {
			t.Errorf("handle %v scale = %f, below minimum %f",
				h.face, h.node.Scale.X, opts.MinHandleRadius)
		}
	}
}

func TestHandlePositions(t *testing.T) {
	sb, _ := newTestBox(t)
	sb.Set(Bounds{MinX: -1, MaxX: 3, MinY: 0, MaxY: 2, MinZ: 4, MaxZ: 10})

	center := sb.Get().Box().Center() // (1, 1, 7)
	want := map[FaceID]math.Vec3{
		{AxisX, SideMin}: {X: -1, Y: 1, Z: 7},
		{AxisX, SideMax}: {X: 3, Y: 1, Z: 7},
		{AxisY, SideMin}: {X: 1, Y: 0, Z: 7},
		{AxisY, SideMax}: {X: 1, Y: 2, Z: 7},
		{AxisZ, SideMin}: {X: 1, Y: 1, Z: 4},
		{AxisZ, SideMax}: {X: 1, Y: 1, Z: 10},
	}
	if center != (math.Vec3{X: 1, Y: 1, Z: 7}) {
		t.Fatalf("center = %v", center)
	}
	for face, pos := range want {
		got := sb.handles[face.Index()].node.Position
		if got.Distance(pos) > 1e-5 {
			t.Errorf("handle %v position = %v, want %v", face, got, pos)
		}
	}
}

func TestScreenToNDC(t *testing.T) {
	tests := []struct {
		screen math.Vec2
		w, h   int
		want   math.Vec2
	}{
		{math.Vec2{X: 0, Y: 0}, 800, 600, math.Vec2{X: -1, Y: 1}},
		{math.Vec2{X: 800, Y: 600}, 800, 600, math.Vec2{X: 1, Y: -1}},
		{math.Vec2{X: 400, Y: 300}, 800, 600, math.Vec2{X: 0, Y: 0}},
	}
	for _, tt := range tests {
		got := ScreenToNDC(tt.screen, tt.w, tt.h)
		if got != tt.want {
			t.Errorf("ScreenToNDC(%v) = %v, want %v", tt.screen, got, tt.want)
		}
	}
}
