package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/smasonuk/flycam"
)

var keyMap = map[flycam.Key]ebiten.Key{
	flycam.KeyW:         ebiten.KeyW,
	flycam.KeyA:         ebiten.KeyA,
	flycam.KeyS:         ebiten.KeyS,
	flycam.KeyD:         ebiten.KeyD,
	flycam.KeySpace:     ebiten.KeySpace,
	flycam.KeyLeftShift: ebiten.KeyShiftLeft,
	flycam.KeyEscape:    ebiten.KeyEscape,
}

// EbitenInput reads key state and cursor position from ebiten. It must only
// be used from the game's Update.
type EbitenInput struct{}

func (EbitenInput) IsKeyPressed(k flycam.Key) bool {
	ek, ok := keyMap[k]
	return ok && ebiten.IsKeyPressed(ek)
}

func (EbitenInput) CursorPosition() (x, y float64) {
	cx, cy := ebiten.CursorPosition()
	return float64(cx), float64(cy)
}
