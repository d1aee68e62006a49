// Package transform builds projection and view matrices with argument
// validation. Matrices are mgl32.Mat4, column-major, ready for OpenGL upload.
package transform

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrInvalidArgument reports projection parameters outside their domain.
	ErrInvalidArgument = errors.New("transform: invalid argument")

	// ErrDegenerateCamera reports a look-at basis that cannot be built.
	ErrDegenerateCamera = errors.New("transform: degenerate camera")
)

const parallelEps = 1e-6

// Ortho returns an orthographic projection matrix.
func Ortho(left, right, bottom, top, near, far float32) (mgl32.Mat4, error) {
	if right == left {
		return mgl32.Mat4{}, fmt.Errorf("%w: right == left (%f)", ErrInvalidArgument, right)
	}
	if top == bottom {
		return mgl32.Mat4{}, fmt.Errorf("%w: top == bottom (%f)", ErrInvalidArgument, top)
	}
	if far == near {
		return mgl32.Mat4{}, fmt.Errorf("%w: far == near (%f)", ErrInvalidArgument, far)
	}
	return mgl32.Ortho(left, right, bottom, top, near, far), nil
}

// Perspective returns a symmetric perspective projection matrix.
// fovDeg is the vertical field of view in degrees.
func Perspective(fovDeg, aspect, near, far float32) (mgl32.Mat4, error) {
	if fovDeg <= 0 || fovDeg >= 180 {
		return mgl32.Mat4{}, fmt.Errorf("%w: fov %f outside (0,180)", ErrInvalidArgument, fovDeg)
	}
	if aspect <= 0 {
		return mgl32.Mat4{}, fmt.Errorf("%w: aspect %f <= 0", ErrInvalidArgument, aspect)
	}
	if near <= 0 {
		return mgl32.Mat4{}, fmt.Errorf("%w: near %f <= 0", ErrInvalidArgument, near)
	}
	if far <= near {
		return mgl32.Mat4{}, fmt.Errorf("%w: far %f <= near %f", ErrInvalidArgument, far, near)
	}
	return mgl32.Perspective(mgl32.DegToRad(fovDeg), aspect, near, far), nil
}

// LookAt returns a right-handed view matrix from eye toward target.
func LookAt(eye, target, up mgl32.Vec3) (mgl32.Mat4, error) {
	dir := target.Sub(eye)
	if dir.Len() == 0 {
		return mgl32.Mat4{}, fmt.Errorf("%w: target equals eye %v", ErrDegenerateCamera, eye)
	}
	if up.Len() == 0 {
		return mgl32.Mat4{}, fmt.Errorf("%w: zero-length up vector", ErrDegenerateCamera)
	}
	cross := dir.Normalize().Cross(up.Normalize())
	if cross.Len() < parallelEps {
		return mgl32.Mat4{}, fmt.Errorf("%w: up parallel to view direction", ErrDegenerateCamera)
	}
	return mgl32.LookAtV(eye, target, up), nil
}

// RotateX returns a rotation around the X axis. angleDeg is in degrees.
func RotateX(angleDeg float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(mgl32.DegToRad(angleDeg))
}

// RotateZ returns a rotation around the Z axis. angleDeg is in degrees.
func RotateZ(angleDeg float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DZ(mgl32.DegToRad(angleDeg))
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) mgl32.Mat4 {
	return mgl32.Translate3D(x, y, z)
}

// SinCosDeg returns sin and cos of an angle given in degrees.
func SinCosDeg(angleDeg float32) (sin, cos float32) {
	rad := angleDeg * math32.Pi / 180
	return math32.Sin(rad), math32.Cos(rad)
}
