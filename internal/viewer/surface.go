package viewer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/calder3d/geomview/internal/config"
	"github.com/calder3d/geomview/internal/engine/camera"
	"github.com/calder3d/geomview/internal/engine/input"
	"github.com/calder3d/geomview/internal/engine/shader"
	"github.com/calder3d/geomview/internal/logger"
	"github.com/calder3d/geomview/pkg/geom"
)

// program is the compiled shader pair with its uniform locations cached.
type program struct {
	id          uint32
	locP        int32
	locV        int32
	locM        int32
	locO        int32
	locOpacity  int32
	locSelected int32
}

// Surface is the GL-backed drawing area. It owns the shader program, the
// camera, the mouse tracker, and the object collection, and drives the
// per-frame clear/draw cycle. All of its methods must run on the render
// thread.
type Surface struct {
	cam   *camera.Camera
	mouse *Mouse
	prog  program

	// Objects draw in insertion order; the index serves identity lookups.
	objects []Object
	index   map[geom.Data]Object

	width, height int
	opacity       float32
	clearColor    [3]float32
	pointSize     float32

	ready bool
	dirty bool
}

// NewSurface creates a surface with a camera configured from cfg.
func NewSurface(cfg *config.Config) *Surface {
	cam := camera.New()
	cam.Fov = cfg.Camera.Fov
	cam.Near = cfg.Camera.Near
	cam.Far = cfg.Camera.Far
	cam.Distance = cfg.Camera.Distance
	cam.ZoomStep = cfg.Camera.ZoomStep
	cam.RotateStep = cfg.Camera.RotateStep
	cam.PanStep = cfg.Camera.PanStep

	return &Surface{
		cam:        cam,
		mouse:      &Mouse{},
		index:      make(map[geom.Data]Object),
		width:      cfg.Graphics.Width,
		height:     cfg.Graphics.Height,
		opacity:    cfg.Viewer.Opacity,
		clearColor: cfg.Viewer.ClearColor,
		pointSize:  cfg.Viewer.PointSize,
		dirty:      true,
	}
}

// Camera returns the surface's camera.
func (s *Surface) Camera() *camera.Camera { return s.cam }

// addObject stores an object keyed by its geometry. If the GL context is
// already live the object initializes immediately; otherwise it waits for
// InitGL.
func (s *Surface) addObject(data geom.Data, obj Object) error {
	if _, dup := s.index[data]; dup {
		return fmt.Errorf("viewer: geometry already added")
	}
	if s.ready {
		if err := obj.Init(); err != nil {
			return err
		}
	}
	s.objects = append(s.objects, obj)
	s.index[data] = obj
	s.dirty = true
	return nil
}

// InitGL initializes OpenGL state, compiles the shared shader program, and
// uploads every registered object. Must be called once with a current GL
// context; a shader failure is fatal for startup.
func (s *Surface) InitGL() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.ClearColor(s.clearColor[0], s.clearColor[1], s.clearColor[2], 1)
	gl.PolygonOffset(1.0, 1.0)
	gl.Enable(gl.POLYGON_OFFSET_FILL)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.PointSize(s.pointSize)

	id, err := shader.CompileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return err
	}
	s.prog = program{
		id:          id,
		locP:        shader.Uniform(id, "P"),
		locV:        shader.Uniform(id, "V"),
		locM:        shader.Uniform(id, "M"),
		locO:        shader.Uniform(id, "O"),
		locOpacity:  shader.Uniform(id, "opacity"),
		locSelected: shader.Uniform(id, "is_selected"),
	}

	for _, obj := range s.objects {
		if err := obj.Init(); err != nil {
			return fmt.Errorf("initializing %s object: %w", obj.Kind(), err)
		}
	}

	gl.UseProgram(s.prog.id)
	if err := s.uploadProjection(); err != nil {
		return err
	}
	view := s.cam.View()
	ident := mgl32.Ident4()
	gl.UniformMatrix4fv(s.prog.locV, 1, false, &view[0])
	gl.UniformMatrix4fv(s.prog.locO, 1, false, &ident[0])
	gl.UseProgram(0)

	s.ready = true
	s.dirty = true
	return nil
}

// aspect returns width over height, guarding the degenerate minimized case.
func (s *Surface) aspect() float32 {
	if s.height == 0 {
		return 1
	}
	return float32(s.width) / float32(s.height)
}

func (s *Surface) uploadProjection() error {
	proj, err := s.cam.Projection(s.aspect())
	if err != nil {
		return fmt.Errorf("projection: %w", err)
	}
	gl.UniformMatrix4fv(s.prog.locP, 1, false, &proj[0])
	return nil
}

// Resize updates the viewport and reprojects.
func (s *Surface) Resize(width, height int) {
	s.width = width
	s.height = height
	if !s.ready {
		return
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.UseProgram(s.prog.id)
	if err := s.uploadProjection(); err != nil {
		logger.Warn("resize reprojection failed", zap.Error(err))
	}
	gl.UseProgram(0)
	s.dirty = true
}

// Dirty reports whether a redraw is pending.
func (s *Surface) Dirty() bool { return s.dirty }

// DrawFrame clears the buffers, uploads the per-frame uniforms, and draws
// every object in insertion order.
func (s *Surface) DrawFrame() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(s.prog.id)

	gl.Uniform1f(s.prog.locOpacity, s.opacity)
	model := s.cam.Model()
	gl.UniformMatrix4fv(s.prog.locM, 1, false, &model[0])

	for _, obj := range s.objects {
		obj.Draw(&s.prog)
	}

	gl.UseProgram(0)
	s.dirty = false
}

// PointerMove drags the camera: left button orbits, right button pans.
func (s *Surface) PointerMove(x, y int32) {
	s.mouse.Record(x, y)
	dx, dy := s.mouse.Delta()
	switch {
	case s.mouse.Pressed(input.ButtonLeft):
		s.cam.Rotate(float32(dx), float32(dy))
		s.dirty = true
	case s.mouse.Pressed(input.ButtonRight):
		s.cam.Pan(float32(dx), float32(dy))
		s.dirty = true
	}
}

// PointerDown records a button press, anchoring the drag at the press
// position so the first delta is zero.
func (s *Surface) PointerDown(b input.Button, x, y int32) {
	s.mouse.Reset(x, y)
	s.mouse.SetPressed(b, true)
}

// PointerUp records a button release.
func (s *Surface) PointerUp(b input.Button, x, y int32) {
	s.mouse.SetPressed(b, false)
	s.dirty = true
}

// Scroll zooms the camera by wheel steps.
func (s *Surface) Scroll(steps float32) {
	s.cam.Zoom(steps)
	s.dirty = true
}

// Release frees the shader program and all object GPU resources.
func (s *Surface) Release() {
	for _, obj := range s.objects {
		obj.Release()
	}
	if s.prog.id != 0 {
		gl.DeleteProgram(s.prog.id)
		s.prog = program{}
	}
	s.ready = false
}
