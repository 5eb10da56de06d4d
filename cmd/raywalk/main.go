package main

import (
	"flag"
	"log"
	"path/filepath"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"

	"raywalk/internal/assets"
	"raywalk/internal/engine"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	levelName := flag.String("level", "test-room", "built-in level to load")
	assetsDir := flag.String("assets", "", "directory of wall textures named 1.png..7.png; empty uses procedural textures")
	scale := flag.Int("scale", 2, "window upscale factor over the 240x320 framebuffer")
	flag.Parse()

	level, ok := assets.Named(*levelName)
	if !ok {
		log.Fatalf("unknown level %q", *levelName)
	}
	log.Printf("Level loaded: %s (%dx%d)", level.Name, level.Grid.Width(), level.Grid.Height())

	scene := buildScene(level, *assetsDir)
	engine.BindScene(scene)

	state := &engine.GameState{Pose: level.Spawn}
	game := newGame(scene, state)

	ebiten.SetWindowSize(240*(*scale), 320*(*scale))
	ebiten.SetWindowTitle("raywalk — " + level.Name)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("game loop error: %v", err)
	}
}

func buildScene(level assets.Level, assetsDir string) *engine.Scene {
	scene := &engine.Scene{Grid: level.Grid}

	patterns := []assets.ProceduralKind{assets.KindBrick, assets.KindPlank, assets.KindCheckerboard, assets.KindSolid}
	colors := [][3]byte{{160, 82, 45}, {222, 184, 135}, {105, 105, 105}, {178, 34, 34}}

	for cell := 1; cell < len(scene.Textures); cell++ {
		if assetsDir != "" {
			path := filepath.Join(assetsDir, levelTextureName(cell))
			tex, err := assets.LoadPNG(path)
			if err == nil {
				scene.Textures[cell] = tex
				continue
			}
			log.Printf("texture for cell %d: %v; using a procedural texture", cell, err)
		}
		idx := (cell - 1) % len(patterns)
		c := colors[idx]
		scene.Textures[cell] = assets.Procedural(patterns[idx], 32, c[0], c[1], c[2])
	}

	return scene
}

// levelTextureName returns "<cell>.png", matching the documented
// 1.png..7.png naming for an -assets directory.
func levelTextureName(cell int) string {
	return strconv.Itoa(cell) + ".png"
}
