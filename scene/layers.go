package scene

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/zucenko/chaser/model"
)

const (
	MouthFrames = 5
	DotRadius   = 2
	// cut lines of the button panel for nine-slice drawing
	panelSize   = 24
	panelCorner = 6
)

var PanelCuts = [4]int{0, panelCorner, panelSize - panelCorner, panelSize}

var (
	COLOR_BACKGROUND = color.RGBA{0, 0, 0, 255}
	COLOR_WALL       = color.RGBA{33, 33, 222, 255}
	COLOR_PICKUP     = color.RGBA{255, 255, 255, 255}
	COLOR_PLAYER     = color.RGBA{255, 255, 0, 255}
)

// Walls renders the static maze layer once; it never changes at runtime.
func Walls(m model.Maze) image.Image {
	dc := gg.NewContext(Width, MazeHeight)
	dc.SetColor(COLOR_BACKGROUND)
	dc.Clear()
	dc.SetColor(COLOR_WALL)
	for r := 0; r < model.Rows; r++ {
		for c := 0; c < model.Cols; c++ {
			if m.IsWall(c, r) {
				dc.DrawRectangle(float64(c*model.CellSize), float64(r*model.CellSize), model.CellSize, model.CellSize)
			}
		}
	}
	dc.Fill()
	return dc.Image()
}

// Mouth draws the player facing right. Openness 0 is a closed disc; each
// unit of openness opens the jaw 45 degrees either side.
func Mouth(openness float64) image.Image {
	dc := gg.NewContext(model.CellSize, model.CellSize)
	half := float64(model.CellSize) / 2
	dc.SetColor(COLOR_PLAYER)
	jaw := gg.Radians(openness * 45)
	if jaw <= 0 {
		dc.DrawCircle(half, half, half)
	} else {
		dc.MoveTo(half, half)
		dc.DrawArc(half, half, half, jaw, 2*math.Pi-jaw)
		dc.ClosePath()
	}
	dc.Fill()
	return dc.Image()
}

// Mouths pre-renders the animation frames picked by MouthFrame.
func Mouths() []image.Image {
	frames := make([]image.Image, 0, MouthFrames)
	for i := 0; i < MouthFrames; i++ {
		frames = append(frames, Mouth(float64(i)*model.OpennessStep))
	}
	return frames
}

func MouthFrame(openness float64) int {
	i := int(math.Round(openness / model.OpennessStep))
	if i < 0 {
		return 0
	}
	if i >= MouthFrames {
		return MouthFrames - 1
	}
	return i
}

// Body is an adversary drawn in white, to be tinted by its tag colour.
func Body() image.Image {
	dc := gg.NewContext(model.CellSize, model.CellSize)
	half := float64(model.CellSize) / 2
	dc.SetColor(color.White)
	dc.DrawCircle(half, half, half)
	dc.DrawRectangle(0, half, model.CellSize, half)
	dc.Fill()
	return dc.Image()
}

func Dot() image.Image {
	dc := gg.NewContext(2*DotRadius, 2*DotRadius)
	dc.SetColor(COLOR_PICKUP)
	dc.DrawCircle(DotRadius, DotRadius, DotRadius)
	dc.Fill()
	return dc.Image()
}

// Panel is the white rounded square the menu buttons are stretched from.
func Panel() image.Image {
	dc := gg.NewContext(panelSize, panelSize)
	dc.SetColor(color.White)
	dc.DrawRoundedRectangle(0, 0, panelSize, panelSize, panelCorner-1)
	dc.Fill()
	return dc.Image()
}
