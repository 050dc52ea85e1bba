// Package desktop presents frames in a GLFW window and polls its keyboard.
package desktop

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"flipper/internal/game"
)

func init() {
	// GLFW event handling must run on the main thread.
	runtime.LockOSThread()
}

var keyMap = []struct {
	glfw glfw.Key
	key  game.Key
}{
	{glfw.KeyLeft, game.KeyLeft},
	{glfw.KeyA, game.KeyLeft},
	{glfw.KeyRight, game.KeyRight},
	{glfw.KeyD, game.KeyRight},
	{glfw.KeyUp, game.KeyUp},
	{glfw.KeySpace, game.KeyUp},
	{glfw.KeyEscape, game.KeyEsc},
}

// Backend is a game.Backend backed by a GLFW window.
type Backend struct {
	window *glfw.Window
	blit   *blitter
	frame  []uint8
}

// New opens a window scale times the frame size.
func New(scale int) (*Backend, error) {
	if scale < 1 {
		scale = 1
	}
	window, err := initWindow(scale)
	if err != nil {
		return nil, err
	}
	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.ClearColor(0, 0, 0, 1)

	blit, err := newBlitter()
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, err
	}
	return &Backend{
		window: window,
		blit:   blit,
		frame:  make([]uint8, game.Width*game.Height*game.Channels),
	}, nil
}

func (b *Backend) Pump() (bool, game.Keys) {
	glfw.PollEvents()
	if b.window.ShouldClose() {
		return false, 0
	}
	var keys game.Keys
	for _, m := range keyMap {
		if b.window.GetKey(m.glfw) == glfw.Press {
			keys = keys.With(m.key, true)
		}
	}
	return true, keys
}

func (b *Backend) Render(buf *game.Buffer) {
	buf.CopyTo(b.frame)
	fbW, fbH := b.window.GetFramebufferSize()
	if fbW <= 0 || fbH <= 0 {
		return
	}
	b.blit.draw(b.frame, fbW, fbH)
	b.window.SwapBuffers()
}

func (b *Backend) Stop() {
	b.blit.destroy()
	b.window.Destroy()
	glfw.Terminate()
}
