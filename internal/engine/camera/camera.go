// Package camera provides the orbit camera used by the viewer.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/calder3d/geomview/internal/transform"
)

// MinDistance is the closest the camera may get to its target. Zoom and
// dolly-pan clamp against it so the distance never reaches zero.
const MinDistance = 1e-4

// Camera orbits around a target point. Rotation is stored as two angles in
// degrees, unbounded so the orbit can wrap freely. The view matrix is always
// identity: the camera transform is folded entirely into the model matrix,
// transforming the world instead of the eye.
type Camera struct {
	// Projection parameters
	Fov  float32 // vertical field of view, degrees
	Near float32
	Far  float32

	// Orbit state
	Distance float32 // distance from target, always > 0
	Target   mgl32.Vec3
	Rx, Rz   float32 // rotation around X and Z, degrees
	Tx, Ty   float32 // translation offsets accumulated by panning

	// Interaction step sizes
	ZoomStep   float32
	RotateStep float32
	PanStep    float32
}

// New creates a camera with the default framing: looking down at the scene
// from a distance of 10 units.
func New() *Camera {
	return &Camera{
		Fov:        45,
		Near:       0.1,
		Far:        100,
		Distance:   10,
		Rx:         -60,
		Rz:         -30,
		ZoomStep:   0.05,
		RotateStep: 1,
		PanStep:    0.1,
	}
}

// Rotate applies a pointer drag delta to the orbit angles. No clamping:
// the orbit may wrap past the poles.
func (c *Camera) Rotate(dx, dy float32) {
	c.Rx += c.RotateStep * dy
	c.Rz += c.RotateStep * dx
}

// Pan moves the target in the view plane. The screen-space delta is
// decomposed into world axes using the current orbit angles and scaled with
// distance so panning covers the same fraction of the view at any zoom.
// The vertical component doubles as a dolly: it shifts the target along Z
// and moves the camera with it (distance -= dz), giving panning a slight
// fly-through feel.
func (c *Camera) Pan(dx, dy float32) {
	sinrz, cosrz := transform.SinCosDeg(c.Rz)
	sinrx, cosrx := transform.SinCosDeg(c.Rx)

	wx := dx*cosrz - dy*sinrz*cosrx
	wy := dy*cosrz*cosrx + dx*sinrz
	wz := dy * sinrx * c.PanStep

	scale := c.Distance / 10
	wx *= scale
	wy *= scale
	wz *= scale

	c.Tx += c.PanStep * wx
	c.Ty -= c.PanStep * wy
	c.Target[0] = -c.Tx
	c.Target[1] = -c.Ty
	c.Target[2] -= wz
	c.Distance -= wz
	if c.Distance < MinDistance {
		c.Distance = MinDistance
	}
}

// Zoom moves the camera along its view axis. The step is multiplicative so
// zooming feels uniform near and far. Distance is clamped to MinDistance.
func (c *Camera) Zoom(steps float32) {
	c.Distance -= steps * c.ZoomStep * c.Distance
	if c.Distance < MinDistance {
		c.Distance = MinDistance
	}
}

// Projection returns the perspective matrix for the given aspect ratio.
func (c *Camera) Projection(aspect float32) (mgl32.Mat4, error) {
	return transform.Perspective(c.Fov, aspect, c.Near, c.Far)
}

// View returns the view matrix, which is identity by construction.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.Ident4()
}

// Model returns the world transform that realizes the orbit: translate the
// target to the origin, rotate around Z then X, translate back, then push
// the world away from the eye by the pan offsets and orbit distance.
func (c *Camera) Model() mgl32.Mat4 {
	t2 := transform.Translate(c.Tx, c.Ty, -c.Distance)
	t1 := transform.Translate(c.Target.X(), c.Target.Y(), c.Target.Z())
	rx := transform.RotateX(c.Rx)
	rz := transform.RotateZ(c.Rz)
	t0 := transform.Translate(-c.Target.X(), -c.Target.Y(), -c.Target.Z())
	return t2.Mul4(t1).Mul4(rx).Mul4(rz).Mul4(t0)
}
