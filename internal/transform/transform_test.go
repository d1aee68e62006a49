package transform

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestPerspectiveMatrixForm(t *testing.T) {
	fov := float32(45.0)
	aspect := float32(1.6)
	near := float32(0.1)
	far := float32(100.0)

	m, err := Perspective(fov, aspect, near, far)
	if err != nil {
		t.Fatalf("Perspective: %v", err)
	}

	// Standard GL perspective form (column-major):
	// m[10] = (far+near)/(near-far), m[14] = 2*far*near/(near-far), m[11] = -1.
	sy := float32(1.0 / math.Tan(float64(fov)*math.Pi/180/2))
	sx := sy / aspect
	zz := (far + near) / (near - far)
	zw := 2 * far * near / (near - far)

	checks := []struct {
		idx  int
		want float32
	}{
		{0, sx}, {5, sy}, {10, zz}, {14, zw}, {11, -1}, {15, 0},
	}
	for _, c := range checks {
		if got := m[c.idx]; math.Abs(float64(got-c.want)) > 1e-5 {
			t.Errorf("m[%d]: got %f, want %f", c.idx, got, c.want)
		}
	}
}

func TestPerspectiveInvalid(t *testing.T) {
	cases := []struct {
		name                   string
		fov, aspect, near, far float32
	}{
		{"fov zero", 0, 1, 0.1, 100},
		{"fov 180", 180, 1, 0.1, 100},
		{"negative aspect", 45, -1, 0.1, 100},
		{"zero near", 45, 1, 0, 100},
		{"far below near", 45, 1, 10, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Perspective(c.fov, c.aspect, c.near, c.far)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestOrthoInvalid(t *testing.T) {
	if _, err := Ortho(1, 1, 0, 1, 0.1, 100); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("right==left: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := Ortho(0, 1, 2, 2, 0.1, 100); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("top==bottom: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := Ortho(0, 1, 0, 1, 5, 5); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("far==near: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := Ortho(-1, 1, -1, 1, 0.1, 100); err != nil {
		t.Errorf("valid ortho: unexpected error %v", err)
	}
}

func TestLookAtDegenerate(t *testing.T) {
	eye := mgl32.Vec3{1, 2, 3}

	if _, err := LookAt(eye, eye, mgl32.Vec3{0, 0, 1}); !errors.Is(err, ErrDegenerateCamera) {
		t.Errorf("target==eye: expected ErrDegenerateCamera, got %v", err)
	}

	// Up parallel to the view direction.
	target := mgl32.Vec3{1, 2, 13}
	if _, err := LookAt(eye, target, mgl32.Vec3{0, 0, 1}); !errors.Is(err, ErrDegenerateCamera) {
		t.Errorf("parallel up: expected ErrDegenerateCamera, got %v", err)
	}

	if _, err := LookAt(eye, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1}); err != nil {
		t.Errorf("valid lookat: unexpected error %v", err)
	}
}

func TestLookAtBasis(t *testing.T) {
	// Looking down -Z from +Z with Y up is the identity view.
	m, err := LookAt(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	if err != nil {
		t.Fatalf("LookAt: %v", err)
	}
	want := mgl32.Translate3D(0, 0, -5)
	for i := 0; i < 16; i++ {
		if math.Abs(float64(m[i]-want[i])) > 1e-5 {
			t.Errorf("m[%d]: got %f, want %f", i, m[i], want[i])
		}
	}
}
