package viewer

import "github.com/calder3d/geomview/internal/engine/input"

// Mouse tracks the current and previous pointer position and the pressed
// state of each button. It keeps only the most recent sample; deltas are
// derived, never stored.
type Mouse struct {
	x, y         int32
	lastX, lastY int32

	left, middle, right bool
}

// Record stores a new pointer position; the previous position becomes the
// old current one.
func (m *Mouse) Record(x, y int32) {
	m.lastX, m.lastY = m.x, m.y
	m.x, m.y = x, y
}

// Reset moves both current and previous position to the given point, so the
// next delta starts from zero. Used on button press to avoid a jump.
func (m *Mouse) Reset(x, y int32) {
	m.x, m.y = x, y
	m.lastX, m.lastY = x, y
}

// Delta returns current minus previous position.
func (m *Mouse) Delta() (dx, dy int32) {
	return m.x - m.lastX, m.y - m.lastY
}

// SetPressed records a button state change.
func (m *Mouse) SetPressed(b input.Button, pressed bool) {
	switch b {
	case input.ButtonLeft:
		m.left = pressed
	case input.ButtonMiddle:
		m.middle = pressed
	case input.ButtonRight:
		m.right = pressed
	}
}

// Pressed reports whether a button is down.
func (m *Mouse) Pressed(b input.Button) bool {
	switch b {
	case input.ButtonLeft:
		return m.left
	case input.ButtonMiddle:
		return m.middle
	case input.ButtonRight:
		return m.right
	default:
		return false
	}
}
