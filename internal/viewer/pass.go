package viewer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// pass is one GPU draw pass: a vertex array with a position buffer at
// attribute 0 and a color buffer at attribute 1, plus the primitive mode and
// the exact vertex count captured at upload time. The stored count is what
// every draw call uses; nothing is inferred from buffer sizes.
type pass struct {
	vao   uint32
	vbos  [2]uint32
	mode  uint32
	count int32
}

// newPass uploads a buffer set and builds its vertex array.
// Requires a current GL context.
func newPass(mode uint32, set bufferSet) pass {
	p := pass{mode: mode, count: set.vertexCount()}

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)

	gl.GenBuffers(2, &p.vbos[0])

	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbos[0])
	if len(set.positions) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(set.positions)*4, gl.Ptr(set.positions), gl.STATIC_DRAW)
	}
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 0, 0)

	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbos[1])
	if len(set.colors) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(set.colors)*4, gl.Ptr(set.colors), gl.STATIC_DRAW)
	}
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 0, 0)

	gl.BindVertexArray(0)
	return p
}

// draw issues the pass's draw call with the recorded vertex count.
func (p *pass) draw() {
	if p.count == 0 {
		return
	}
	gl.BindVertexArray(p.vao)
	gl.DrawArrays(p.mode, 0, p.count)
	gl.BindVertexArray(0)
}

// release frees the pass's GPU resources.
func (p *pass) release() {
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
		p.vao = 0
	}
	if p.vbos[0] != 0 || p.vbos[1] != 0 {
		gl.DeleteBuffers(2, &p.vbos[0])
		p.vbos = [2]uint32{}
	}
	p.count = 0
}
