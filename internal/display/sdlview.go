package display

import (
	"fmt"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

// View is an optional SDL2 window that blits a Framebuffer's bytes as a
// grayscale bitmap. Nothing in internal/cpu or internal/mmu imports this
// file; it exists so pocketcore-view has somewhere real to present the
// stub buffer, per SPEC_FULL.md §4.8.
type View struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	scale    int
}

// NewView opens a window scale times the framebuffer's native size.
func NewView(scale int) (*View, error) {
	if scale <= 0 {
		scale = 1
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0")

	window, err := sdl.CreateWindow(
		"pocketcore-view",
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(Width*scale),
		int32(Height*scale),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGB24,
		sdl.TEXTUREACCESS_STREAMING,
		int32(Width),
		int32(Height),
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create texture: %w", err)
	}

	return &View{window: window, renderer: renderer, texture: texture, scale: scale}, nil
}

// shadeLevel maps a 2-bit DMG shade index (0 = lightest) to a grayscale
// intensity.
func shadeLevel(shade byte) byte {
	levels := [4]byte{0xFF, 0xAA, 0x55, 0x00}
	return levels[shade&0x3]
}

// Present blits fb's bytes onto the window and flips it.
func (v *View) Present(fb *Framebuffer) error {
	shades := fb.Bytes()

	pixels := make([]byte, Width*Height*3)
	for i, shade := range shades {
		level := shadeLevel(shade)
		pixels[i*3] = level
		pixels[i*3+1] = level
		pixels[i*3+2] = level
	}

	pitch := Width * 3
	if err := v.texture.Update(nil, unsafe.Pointer(&pixels[0]), pitch); err != nil {
		return fmt.Errorf("update texture: %w", err)
	}

	v.renderer.Clear()
	v.renderer.Copy(v.texture, nil, nil)
	v.renderer.Present()
	return nil
}

// PollQuit reports whether the user requested the window be closed.
func (v *View) PollQuit() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch event.(type) {
		case *sdl.QuitEvent:
			return true
		}
	}
	return false
}

// Close tears down the window, renderer, texture, and the SDL subsystem.
func (v *View) Close() {
	v.texture.Destroy()
	v.renderer.Destroy()
	v.window.Destroy()
	sdl.Quit()
}
