package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// strokeSegments draws all segments as one batch of triangles in a single
// colour.
func strokeSegments(screen *ebiten.Image, segs []Segment, strokeWidth float32, clr color.RGBA) {
	if len(segs) == 0 {
		return
	}

	var path vector.Path
	for _, s := range segs {
		path.MoveTo(s.X0, s.Y0)
		path.LineTo(s.X1, s.Y1)
	}

	strokeOp := &vector.StrokeOptions{
		Width:    strokeWidth,
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	}
	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, strokeOp)

	cr := float32(clr.R) / 255.0
	cg := float32(clr.G) / 255.0
	cb := float32(clr.B) / 255.0
	ca := float32(clr.A) / 255.0
	for i := range vertices {
		vertices[i].ColorR = cr
		vertices[i].ColorG = cg
		vertices[i].ColorB = cb
		vertices[i].ColorA = ca
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
	}

	screen.DrawTriangles(vertices, indices, whiteSub, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
