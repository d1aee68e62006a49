// Package viewer implements the interactive geometry viewer: a windowed GL
// surface with an orbit camera and a collection of renderable objects built
// from external geometry.
package viewer

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/calder3d/geomview/internal/config"
	"github.com/calder3d/geomview/internal/engine/input"
	"github.com/calder3d/geomview/internal/engine/window"
	"github.com/calder3d/geomview/internal/logger"
	"github.com/calder3d/geomview/pkg/geom"
)

// Viewer is the top-level application shell: one window, one surface, and
// the registry that maps geometry kinds to renderers.
type Viewer struct {
	cfg      *config.Config
	registry *Registry
	surface  *Surface

	win *window.Window
	in  *input.Input
}

// New creates a viewer. The registry is an explicit dependency so callers
// can install their own renderers.
func New(cfg *config.Config, registry *Registry) *Viewer {
	return &Viewer{
		cfg:      cfg,
		registry: registry,
		surface:  NewSurface(cfg),
		in:       input.New(),
	}
}

// Surface returns the viewer's render surface.
func (v *Viewer) Surface() *Surface { return v.surface }

// Add wraps geometry in its renderable object and stores it for display.
// GPU upload is deferred until the GL context exists.
func (v *Viewer) Add(data geom.Data, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	obj, err := v.registry.New(data, o)
	if err != nil {
		return err
	}
	if err := v.surface.addObject(data, obj); err != nil {
		return err
	}

	logger.Debug("geometry added",
		zap.String("kind", data.Kind().String()),
		zap.String("name", o.Name),
	)
	return nil
}

// Run opens the window and processes events until the window closes.
// Rendering is on demand: a frame draws only after input or resize marked
// the surface dirty.
func (v *Viewer) Run() error {
	win, err := window.New(window.Config{
		Title:      v.cfg.Graphics.Title,
		Width:      v.cfg.Graphics.Width,
		Height:     v.cfg.Graphics.Height,
		Fullscreen: v.cfg.Graphics.Fullscreen,
		VSync:      v.cfg.Graphics.VSync,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	v.win = win
	defer func() {
		v.surface.Release()
		win.Close()
	}()

	if err := v.surface.InitGL(); err != nil {
		return fmt.Errorf("failed to initialize GL surface: %w", err)
	}
	w, h := win.Size()
	v.surface.Resize(w, h)

	logger.Info("viewer running", zap.Int("objects", len(v.surface.objects)))

	for {
		if v.in.Update() {
			return nil
		}
		for _, ev := range v.in.Events() {
			if quit := v.handleEvent(ev); quit {
				return nil
			}
		}

		if v.surface.Dirty() {
			v.surface.DrawFrame()
			win.SwapBuffers()
		} else {
			// Nothing to draw; don't spin on the poll loop.
			sdl.Delay(10)
		}
	}
}

// handleEvent dispatches one input event. Pointer interaction only reaches
// the surface while the window is focused and the pointer is inside it.
func (v *Viewer) handleEvent(ev input.Event) (quit bool) {
	switch ev.Type {
	case input.EventQuit:
		return true
	case input.EventKeyDown:
		if ev.Key == sdl.SCANCODE_ESCAPE {
			return true
		}
	case input.EventWindowResize:
		v.surface.Resize(ev.Width, ev.Height)
	case input.EventMouseMove:
		if v.pointerActive() {
			v.surface.PointerMove(ev.MouseX, ev.MouseY)
		}
	case input.EventMouseDown:
		if v.pointerActive() {
			v.surface.PointerDown(ev.Button, ev.MouseX, ev.MouseY)
		}
	case input.EventMouseUp:
		if v.pointerActive() {
			v.surface.PointerUp(ev.Button, ev.MouseX, ev.MouseY)
		}
	case input.EventMouseWheel:
		if v.pointerActive() {
			v.surface.Scroll(ev.WheelY)
		}
	}
	return false
}

func (v *Viewer) pointerActive() bool {
	return v.win.Focused() && v.win.Hovered()
}
