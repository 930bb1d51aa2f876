// Package renderer provides the OpenGL renderer: a clipped main scene pass
// followed by registered overlay passes drawn with clipping disabled.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/buildsight/bimview/internal/engine/camera"
	"github.com/buildsight/bimview/internal/engine/scene"
	"github.com/buildsight/bimview/internal/engine/shader"
	"github.com/buildsight/bimview/internal/logger"
	"github.com/buildsight/bimview/pkg/math"
)

// maxClipPlanes is the number of hardware clip distances the renderer
// drives. Six is exactly one pair per axis.
const maxClipPlanes = 6

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// overlayPass is a named render pass drawn after the main scene with
// clipping disabled.
type overlayPass struct {
	name  string
	graph *scene.Graph
}

// Renderer owns the main scene graph, the active clip planes and the
// ordered overlay pass list.
type Renderer struct {
	config Config

	program          uint32
	locViewProj      int32
	locModel         int32
	locColor         int32
	locClipPlanes    int32
	locNumClipPlanes int32

	cubeVAO uint32
	cubeVBO uint32
	wireVAO uint32
	wireVBO uint32

	sceneGraph *scene.Graph
	clipPlanes []math.Plane
	overlays   []overlayPass

	renderRequested bool
}

// New creates a new renderer. Must be called after the OpenGL context
// exists.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:     cfg,
		sceneGraph: scene.NewGraph(),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0.12, 0.13, 0.16, 1.0)

	program, err := shader.CompileProgram(sceneVertexShader, sceneFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("creating scene shader: %w", err)
	}
	r.program = program
	r.locViewProj = shader.GetUniform(program, "uViewProj")
	r.locModel = shader.GetUniform(program, "uModel")
	r.locColor = shader.GetUniform(program, "uColor")
	r.locClipPlanes = shader.GetUniform(program, "uClipPlanes")
	r.locNumClipPlanes = shader.GetUniform(program, "uNumClipPlanes")

	r.cubeVAO, r.cubeVBO = createMesh(solidCubeVertices())
	r.wireVAO, r.wireVBO = createMesh(wireCubeVertices())

	r.renderRequested = true
	return r, nil
}

// createMesh uploads interleaved position+normal vertices into a VAO/VBO.
func createMesh(vertices []float32) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)

	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	stride := int32(6 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, uintptr(3*4))

	gl.BindVertexArray(0)
	return vao, vbo
}

// Scene returns the main scene graph.
func (r *Renderer) Scene() *scene.Graph {
	return r.sceneGraph
}

// SetClipPlanes replaces the clip planes applied to the main scene pass.
// An empty list disables clipping entirely.
func (r *Renderer) SetClipPlanes(planes []math.Plane) {
	if len(planes) > maxClipPlanes {
		logger.Warn("clip plane list truncated",
			zap.Int("requested", len(planes)),
			zap.Int("max", maxClipPlanes),
		)
		planes = planes[:maxClipPlanes]
	}
	r.clipPlanes = planes
}

// ClipPlanes returns the active clip planes.
func (r *Renderer) ClipPlanes() []math.Plane {
	return r.clipPlanes
}

// AddOverlayPass registers a named pass drawn after the main scene with
// clipping disabled. Re-adding an existing name replaces its graph in
// place, so registration is idempotent.
func (r *Renderer) AddOverlayPass(name string, graph *scene.Graph) {
	for i := range r.overlays {
		if r.overlays[i].name == name {
			r.overlays[i].graph = graph
			return
		}
	}
	r.overlays = append(r.overlays, overlayPass{name: name, graph: graph})
}

// RemoveOverlayPass unregisters a pass. Unknown names are ignored.
func (r *Renderer) RemoveOverlayPass(name string) {
	for i := range r.overlays {
		if r.overlays[i].name == name {
			r.overlays = append(r.overlays[:i], r.overlays[i+1:]...)
			return
		}
	}
}

// RequestRender marks the scene dirty; the app loop consumes the flag.
func (r *Renderer) RequestRender() {
	r.renderRequested = true
}

// TakeRenderRequest returns and clears the dirty flag.
func (r *Renderer) TakeRenderRequest() bool {
	requested := r.renderRequested
	r.renderRequested = false
	return requested
}

// Resize updates the viewport.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.renderRequested = true
}

// Render draws the clipped main pass and then each overlay pass with clip
// distances disabled for its duration.
func (r *Renderer) Render(cam *camera.OrbitCamera) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)
	viewProj := cam.ViewProjection()
	gl.UniformMatrix4fv(r.locViewProj, 1, false, viewProj.Ptr())

	// Main pass, clipped.
	r.applyClipPlanes(r.clipPlanes)
	r.drawGraph(r.sceneGraph)

	// Overlay passes are never clipped by the scene's planes.
	if len(r.overlays) > 0 {
		r.applyClipPlanes(nil)
		for _, pass := range r.overlays {
			r.drawGraph(pass.graph)
		}
	}
}

// applyClipPlanes uploads the plane equations and toggles the matching
// hardware clip distances.
func (r *Renderer) applyClipPlanes(planes []math.Plane) {
	var packed [maxClipPlanes * 4]float32
	for i, pl := range planes {
		packed[i*4+0] = pl.Normal.X
		packed[i*4+1] = pl.Normal.Y
		packed[i*4+2] = pl.Normal.Z
		packed[i*4+3] = pl.Constant
	}
	gl.Uniform4fv(r.locClipPlanes, maxClipPlanes, &packed[0])
	gl.Uniform1i(r.locNumClipPlanes, int32(len(planes)))

	for i := 0; i < maxClipPlanes; i++ {
		if i < len(planes) {
			gl.Enable(gl.CLIP_DISTANCE0 + uint32(i))
		} else {
			gl.Disable(gl.CLIP_DISTANCE0 + uint32(i))
		}
	}
}

// drawGraph draws every visible node in the graph.
func (r *Renderer) drawGraph(g *scene.Graph) {
	g.Traverse(func(n *scene.Node) {
		if !n.Visible {
			return
		}

		model := n.WorldTransform()
		gl.UniformMatrix4fv(r.locModel, 1, false, model.Ptr())
		gl.Uniform4fv(r.locColor, 1, &n.Color[0])

		switch n.Kind {
		case scene.KindBox:
			gl.BindVertexArray(r.cubeVAO)
			gl.DrawArrays(gl.TRIANGLES, 0, 36)
		case scene.KindWireBox:
			gl.BindVertexArray(r.wireVAO)
			gl.DrawArrays(gl.LINES, 0, 24)
		}
	})
	gl.BindVertexArray(0)
}

// Close releases GL resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.cubeVAO != 0 {
		gl.DeleteVertexArrays(1, &r.cubeVAO)
	}
	if r.cubeVBO != 0 {
		gl.DeleteBuffers(1, &r.cubeVBO)
	}
	if r.wireVAO != 0 {
		gl.DeleteVertexArrays(1, &r.wireVAO)
	}
	if r.wireVBO != 0 {
		gl.DeleteBuffers(1, &r.wireVBO)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}
