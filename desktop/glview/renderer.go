package glview

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/lixenwraith/tapgrid/constants"
	"github.com/lixenwraith/tapgrid/desktop"
	"github.com/lixenwraith/tapgrid/engine"
)

// renderer draws dot sprites, it must only be used on the GL thread
type renderer struct {
	prog        uint32
	vao, vbo    uint32
	uResolution int32
	capacity    int // sprites the VBO holds
	buf         []float32
}

func newRenderer() (*renderer, error) {
	prog, err := linkProgram(dotVertSrc, dotFragSrc)
	if err != nil {
		return nil, fmt.Errorf("dot program: %w", err)
	}
	r := &renderer{
		prog:     prog,
		capacity: constants.DotCount,
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(desktop.SpriteStride * 4)
	gl.BufferData(gl.ARRAY_BUFFER, r.capacity*int(stride), nil, gl.STREAM_DRAW)
	// aPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, gl.PtrOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, gl.PtrOffset(3*4))

	gl.UseProgram(prog)
	r.uResolution = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	gl.BindVertexArray(0)

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	bg := desktop.Background
	gl.ClearColor(bg[0], bg[1], bg[2], bg[3])

	return r, nil
}

// draw clears the framebuffer and renders f, a nil frame only clears
func (r *renderer) draw(f *engine.Frame, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if f == nil || len(f.Dots) == 0 || f.Width <= 0 || f.Height <= 0 {
		return
	}

	r.buf = desktop.AppendSprites(r.buf[:0], *f)
	count := min(len(r.buf)/desktop.SpriteStride, r.capacity)

	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	// The frame was laid out for its own size, a pending resize catches up next session
	gl.Uniform2f(r.uResolution, float32(f.Width), float32(f.Height))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.BufferData(gl.ARRAY_BUFFER, count*desktop.SpriteStride*4, gl.Ptr(r.buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))
	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}

func (r *renderer) destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}
