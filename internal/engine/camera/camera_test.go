package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDefaults(t *testing.T) {
	c := New()

	if c.Fov != 45 {
		t.Errorf("expected fov 45, got %f", c.Fov)
	}
	if c.Near != 0.1 || c.Far != 100 {
		t.Errorf("expected near 0.1 far 100, got %f %f", c.Near, c.Far)
	}
	if c.Distance != 10 {
		t.Errorf("expected distance 10, got %f", c.Distance)
	}
	if c.Rx != -60 || c.Rz != -30 {
		t.Errorf("expected rx -60 rz -30, got %f %f", c.Rx, c.Rz)
	}
}

func TestRotateAccumulates(t *testing.T) {
	c := New()
	c.Rotate(10, 5)
	if c.Rz != -30+10 || c.Rx != -60+5 {
		t.Errorf("after rotate: rz=%f rx=%f", c.Rz, c.Rx)
	}

	// No wrap clamping: a full turn just keeps accumulating.
	for i := 0; i < 100; i++ {
		c.Rotate(10, 0)
	}
	if c.Rz != -30+10+1000 {
		t.Errorf("expected unbounded rz, got %f", c.Rz)
	}
}

func TestZoomSmallStepNearlyInvertible(t *testing.T) {
	c := New()
	start := c.Distance

	c.Zoom(1)
	c.Zoom(-1)

	// Exponential zoom is not exactly symmetric: after +1/-1 the distance is
	// start * (1-k)*(1+k) = start * (1-k^2). With k=0.05 the drift is 0.25%.
	drift := math.Abs(float64(c.Distance - start*(1-c.ZoomStep*c.ZoomStep)))
	if drift > 1e-5 {
		t.Errorf("distance %f, expected drift bound around %f", c.Distance, start*(1-c.ZoomStep*c.ZoomStep))
	}

	// The drift must stay below a small-step tolerance.
	if math.Abs(float64(c.Distance-start)) > float64(start)*0.01 {
		t.Errorf("zoom +1/-1 drifted too far: %f -> %f", start, c.Distance)
	}
}

func TestZoomClampsDistance(t *testing.T) {
	c := New()

	// Huge zoom-in would drive the distance negative without the clamp.
	c.Zoom(1000)
	if c.Distance < MinDistance {
		t.Errorf("distance %g below clamp %g", c.Distance, MinDistance)
	}
	if c.Distance != MinDistance {
		t.Errorf("expected clamp to %g, got %g", MinDistance, c.Distance)
	}

	// Zooming back out still works from the clamped state.
	c.Zoom(-10)
	if c.Distance <= MinDistance {
		t.Errorf("expected distance to grow after zoom out, got %g", c.Distance)
	}
}

func TestPanDollyCoupling(t *testing.T) {
	c := New()
	startZ := c.Target.Z()
	startDist := c.Distance

	c.Pan(0, 10)

	// Vertical pan shifts target along Z and dollies the camera by the same
	// amount, keeping the coupling target.z -= dz, distance -= dz exact.
	dz := startZ - c.Target.Z()
	if dz == 0 {
		t.Fatal("expected vertical pan to produce a dolly component")
	}
	gotDolly := startDist - c.Distance
	if math.Abs(float64(gotDolly-dz)) > 1e-6 {
		t.Errorf("dolly %f does not match target shift %f", gotDolly, dz)
	}
}

func TestPanUpdatesTarget(t *testing.T) {
	c := New()
	c.Pan(10, 0)

	if c.Target.X() != -c.Tx {
		t.Errorf("target.x %f must equal -tx %f", c.Target.X(), -c.Tx)
	}
	if c.Target.Y() != -c.Ty {
		t.Errorf("target.y %f must equal -ty %f", c.Target.Y(), -c.Ty)
	}
}

func TestViewIsIdentity(t *testing.T) {
	c := New()
	c.Rotate(33, 44)
	c.Pan(5, 6)
	c.Zoom(2)

	if c.View() != mgl32.Ident4() {
		t.Error("view matrix must stay identity regardless of camera state")
	}
}

func TestModelIdentityAtRest(t *testing.T) {
	c := New()
	c.Rx = 0
	c.Rz = 0
	c.Distance = 0.5

	// With no rotation and no pan, the model matrix is a pure translation
	// by -distance along Z.
	m := c.Model()
	want := mgl32.Translate3D(0, 0, -0.5)
	for i := 0; i < 16; i++ {
		if math.Abs(float64(m[i]-want[i])) > 1e-6 {
			t.Errorf("m[%d]: got %f, want %f", i, m[i], want[i])
		}
	}
}

func TestProjectionInvalidAspect(t *testing.T) {
	c := New()
	if _, err := c.Projection(0); err == nil {
		t.Error("expected error for zero aspect")
	}
	if _, err := c.Projection(1.6); err != nil {
		t.Errorf("valid aspect: unexpected error %v", err)
	}
}
