package main

import (
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"

	"raywalk/internal/engine"
	"raywalk/internal/render"
)

// game adapts the engine core to ebiten's Update/Draw/Layout contract, the
// same split the core's own update()/render() pair is designed for.
type game struct {
	scene *engine.Scene
	state *engine.GameState

	fb    *render.Framebuffer
	depth *render.DepthBuffer

	rgba     *image.RGBA // raw 240x320 framebuffer, upscaled into scaled each Draw
	scaled   *image.RGBA // window-sized upscale target, reallocated on resize
	lastTick time.Time
}

func newGame(scene *engine.Scene, state *engine.GameState) *game {
	return &game{
		scene: scene,
		state: state,
		fb:    render.NewFramebuffer(),
		depth: render.NewDepthBuffer(),
		rgba:  image.NewRGBA(image.Rect(0, 0, render.Width, render.Height)),
	}
}

// keyScancodes maps the four keys the core reads to ebiten's key constants.
var keyScancodes = map[ebiten.Key]engine.Scancode{
	ebiten.KeyW: engine.ScancodeW,
	ebiten.KeyS: engine.ScancodeS,
	ebiten.KeyA: engine.ScancodeA,
	ebiten.KeyD: engine.ScancodeD,
}

func (g *game) Update() error {
	now := time.Now()
	if g.lastTick.IsZero() {
		g.lastTick = now
	}
	dt := now.Sub(g.lastTick).Seconds()
	g.lastTick = now

	var input engine.InputSnapshot
	for key, code := range keyScancodes {
		if ebiten.IsKeyPressed(key) {
			input[code] = 1
		}
	}

	engine.Update(dt, input, g.scene, g.state)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	engine.Render(g.fb, g.depth, g.scene, g.state)

	for i, px := range g.fb.Pixels {
		a := byte(px >> 24)
		r := byte(px >> 16)
		gg := byte(px >> 8)
		b := byte(px)
		g.rgba.Set(i%render.Width, i/render.Width, color.RGBA{R: r, G: gg, B: b, A: a})
	}

	bounds := screen.Bounds()
	if g.scaled == nil || g.scaled.Bounds().Dx() != bounds.Dx() || g.scaled.Bounds().Dy() != bounds.Dy() {
		g.scaled = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	}
	draw.NearestNeighbor.Scale(g.scaled, g.scaled.Bounds(), g.rgba, g.rgba.Bounds(), draw.Src, nil)
	screen.WritePixels(g.scaled.Pix)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
