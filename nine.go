package main

import (
	"image"

	"github.com/hajimehoshi/ebiten"
)

// Nine stretches a nine-slice image over a rectangle: corners keep their
// size, edges stretch along one axis and the centre along both.
type Nine struct {
	images         *ebiten.Image
	alpha          float64
	R, G, B, Scale float64
	cuts           [4]int
	x, y           int
	width, height  int
	targetX        [4]float64
	targetY        [4]float64
	scaleX         [3]float64
	scaleY         [3]float64
}

func NewNine(images *ebiten.Image, cuts [4]int, scale float64) *Nine {
	return &Nine{images: images, cuts: cuts, alpha: 1, R: 1, G: 1, B: 1, Scale: scale}
}

func (n *Nine) Place(r image.Rectangle) {
	n.x = r.Min.X
	n.y = r.Min.Y
	n.SetSize(r.Dx(), r.Dy())
}

func (n *Nine) SetSize(width, height int) {
	n.width = width
	n.height = height
	n.targetX, n.scaleX = n.stretch(n.x, n.width)
	n.targetY, n.scaleY = n.stretch(n.y, n.height)
}

func (n *Nine) stretch(from, length int) (targets [4]float64, scales [3]float64) {
	c := n.cuts
	targets[0] = float64(from)
	targets[1] = float64(from) + n.Scale*float64(c[1]-c[0])
	targets[2] = float64(from+length) - n.Scale*float64(c[3]-c[2])
	targets[3] = float64(from + length)
	scales[0] = n.Scale
	scales[1] = (targets[2] - targets[1]) / float64(c[2]-c[1])
	scales[2] = n.Scale
	return
}

func (n *Nine) Tint(c GameColor) {
	n.R, n.G, n.B = c.r, c.g, c.b
}

func (n *Nine) Draw(screen *ebiten.Image) {
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			src := image.Rect(n.cuts[col], n.cuts[row], n.cuts[col+1], n.cuts[row+1])
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(n.scaleX[col], n.scaleY[row])
			op.GeoM.Translate(n.targetX[col], n.targetY[row])
			op.ColorM.Scale(n.R, n.G, n.B, n.alpha)
			screen.DrawImage(n.images.SubImage(src).(*ebiten.Image), op)
		}
	}
}
