package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/smasonuk/flycam"
	"github.com/smasonuk/flycam/render"
)

type Game struct {
	cam   *flycam.Camera
	ctrl  *flycam.FlyController
	scene *render.Scene
	input flycam.Input

	width, height int
}

func NewGame(cfg flycam.Config) (*Game, error) {
	log.Println("Creating camera...")
	cam, err := cfg.NewCamera()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cam:    cam,
		ctrl:   cfg.NewController(cam),
		scene:  render.NewScene(),
		input:  render.EbitenInput{},
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
	}

	log.Println("Building scene...")
	frame := cam.CoordFrame()
	right := frame.FromCanonical(mgl64.Vec3{1, 0, 0})
	ahead := frame.FromCanonical(mgl64.Vec3{0, 0, 1})
	down := frame.Up().Mul(-2)

	g.scene.Add(render.NewGrid(20, 2, right, ahead), down, color.RGBA{R: 60, G: 60, B: 60, A: 255})
	g.scene.Add(render.NewCube(1), ahead.Mul(3), color.RGBA{R: 255, A: 255})
	g.scene.Add(render.NewCube(2), ahead.Mul(12).Add(right.Mul(5)), color.RGBA{G: 255, A: 255})
	g.scene.Add(render.NewCube(4), ahead.Mul(30).Sub(right.Mul(10)), color.RGBA{B: 255, A: 255})

	log.Println("Initialization Complete.")
	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.ctrl.Update(g.cam, g.input)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// every pass this frame reads the same state
	snap := g.cam.Snapshot()
	g.scene.Draw(screen, snap)

	eye := snap.Eye()
	near, far := snap.ClipPlanes()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"eye %.2f %.2f %.2f\nyaw %.3f pitch %.3f\nclip %.2f..%.0f",
		eye[0], eye[1], eye[2], snap.Yaw(), snap.Pitch(), near, far,
	))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.cam.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg := flycam.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = flycam.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	g, err := NewGame(cfg)
	if err != nil {
		log.Fatalf("Error creating game: %v", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
