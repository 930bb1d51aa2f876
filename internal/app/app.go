// Package app wires the window, renderer, camera and section box into the
// viewer application.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/buildsight/bimview/internal/config"
	"github.com/buildsight/bimview/internal/engine/camera"
	"github.com/buildsight/bimview/internal/engine/input"
	"github.com/buildsight/bimview/internal/engine/renderer"
	"github.com/buildsight/bimview/internal/engine/scene"
	"github.com/buildsight/bimview/internal/engine/window"
	"github.com/buildsight/bimview/internal/logger"
	"github.com/buildsight/bimview/internal/sectionbox"
	"github.com/buildsight/bimview/pkg/math"
)

// App is the viewer application.
type App struct {
	cfg     config.Config
	running bool

	window     *window.Window
	renderer   *renderer.Renderer
	camera     *camera.OrbitCamera
	input      *input.Input
	sectionBox *sectionbox.SectionBox

	// Mouse state for orbit dragging when the section box does not
	// consume the event.
	orbiting   bool
	lastMouseX int
	lastMouseY int
}

// New creates the application. The window must be created before the
// renderer since the OpenGL context has to exist first.
func New(cfg config.Config) (*App, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	a := &App{cfg: cfg}

	var err error
	a.window, err = window.New(window.Config{
		Title:      "BIMView",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	a.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.camera = camera.NewOrbitCamera()
	a.camera.SetViewport(cfg.Graphics.Width, cfg.Graphics.Height)

	a.input = input.New()

	a.sectionBox = sectionbox.New(a.renderer, a.camera, sectionbox.Options{
		HandleSizeFactor: cfg.SectionBox.HandleSizeFactor,
		MinHandleRadius:  cfg.SectionBox.MinHandleRadius,
	}, logger.Log)

	a.buildDemoScene()
	a.camera.FitToBounds(a.renderer.Scene().Bounds())

	logger.Info("viewer initialized")
	return a, nil
}

// buildDemoScene populates the scene with a small two-storey structure so
// the section box has something to cut through.
func (a *App) buildDemoScene() {
	g := a.renderer.Scene()

	slabColor := [4]float32{0.62, 0.62, 0.66, 1.0}
	columnColor := [4]float32{0.78, 0.55, 0.34, 1.0}
	coreColor := [4]float32{0.45, 0.52, 0.60, 1.0}

	// Ground and storey slabs.
	for i := 0; i < 3; i++ {
		g.Add(&scene.Node{
			Name:     fmt.Sprintf("slab.%d", i),
			Kind:     scene.KindBox,
			Position: math.Vec3{X: 0, Y: float32(i) * 4, Z: 0},
			Scale:    math.Vec3{X: 20, Y: 0.4, Z: 14},
			Color:    slabColor,
			Visible:  true,
		})
	}

	// Column grid between the slabs.
	for _, x := range []float32{-8, 0, 8} {
		for _, z := range []float32{-5, 5} {
			for i := 0; i < 2; i++ {
				g.Add(&scene.Node{
					Name:     fmt.Sprintf("column.%g.%g.%d", x, z, i),
					Kind:     scene.KindBox,
					Position: math.Vec3{X: x, Y: float32(i)*4 + 2, Z: z},
					Scale:    math.Vec3{X: 0.5, Y: 3.6, Z: 0.5},
					Color:    columnColor,
					Visible:  true,
				})
			}
		}
	}

	// Central service core.
	g.Add(&scene.Node{
		Name:     "core",
		Kind:     scene.KindBox,
		Position: math.Vec3{X: 3, Y: 4, Z: 0},
		Scale:    math.Vec3{X: 3, Y: 8, Z: 3},
		Color:    coreColor,
		Visible:  true,
	})
}

// Run starts the main loop. Frames are rendered on demand: a frame draws
// only when something requested a redraw.
func (a *App) Run() error {
	a.running = true
	a.renderer.RequestRender()

	logger.Info("starting viewer loop")

	for a.running {
		if a.input.Update() {
			a.running = false
			break
		}

		for _, event := range a.input.Events() {
			a.handleEvent(event)
		}

		if a.renderer.TakeRenderRequest() {
			a.renderer.Render(a.camera)
			a.window.SwapBuffers()
		} else {
			// Idle: avoid spinning the CPU between input events.
			time.Sleep(8 * time.Millisecond)
		}
	}

	return nil
}

// handleEvent routes one input event. Pointer events go to the section box
// first; unconsumed ones fall through to the orbit camera.
func (a *App) handleEvent(event input.Event) {
	switch event.Type {
	case input.EventWindowResize:
		a.renderer.Resize(event.Width, event.Height)
		a.camera.SetViewport(event.Width, event.Height)

	case input.EventKeyDown:
		a.handleKey(event.Key)

	case input.EventMouseDown:
		ndc := a.toNDC(event.MouseX, event.MouseY)
		if a.sectionBox.OnMouseDown(ndc, mouseButton(event.Button)) {
			return
		}
		if event.Button == sdl.BUTTON_LEFT {
			a.orbiting = true
			a.lastMouseX = event.MouseX
			a.lastMouseY = event.MouseY
		}

	case input.EventMouseMove:
		ndc := a.toNDC(event.MouseX, event.MouseY)
		if a.sectionBox.OnMouseMove(ndc) {
			return
		}
		if a.orbiting {
			dx := float32(event.MouseX - a.lastMouseX)
			dy := float32(event.MouseY - a.lastMouseY)
			a.camera.HandleDrag(dx, dy)
			a.renderer.RequestRender()
		}
		a.lastMouseX = event.MouseX
		a.lastMouseY = event.MouseY

	case input.EventMouseUp:
		if a.sectionBox.OnMouseUp() {
			return
		}
		if event.Button == sdl.BUTTON_LEFT {
			a.orbiting = false
		}

	case input.EventMouseWheel:
		a.camera.HandleZoom(float32(event.WheelY))
		a.renderer.RequestRender()
	}
}

// handleKey processes keyboard shortcuts.
func (a *App) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		a.running = false

	case sdl.SCANCODE_B:
		a.sectionBox.Enable(!a.sectionBox.Get().Enabled)

	case sdl.SCANCODE_F:
		bounds := a.renderer.Scene().Bounds()
		a.sectionBox.FitTo(bounds, a.cfg.SectionBox.MarginFactor)
		a.camera.FitToBounds(bounds)
		a.renderer.RequestRender()
	}
}

// toNDC converts window pixel coordinates to normalized device coordinates.
func (a *App) toNDC(x, y int) math.Vec2 {
	w, h := a.window.GetSize()
	return sectionbox.ScreenToNDC(math.Vec2{X: float32(x), Y: float32(y)}, w, h)
}

// mouseButton maps SDL button codes onto the section box's button type.
func mouseButton(b uint8) sectionbox.MouseButton {
	switch b {
	case sdl.BUTTON_LEFT:
		return sectionbox.MouseButtonLeft
	case sdl.BUTTON_MIDDLE:
		return sectionbox.MouseButtonMiddle
	default:
		return sectionbox.MouseButtonRight
	}
}

// Close cleans up application resources.
func (a *App) Close() {
	logger.Info("closing viewer")

	if a.sectionBox != nil {
		a.sectionBox.Dispose()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
