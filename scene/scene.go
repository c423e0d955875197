package scene

import (
	"image"

	"github.com/zucenko/chaser/model"
)

const (
	ScoreHeight = 60
	Width       = model.Cols * model.CellSize
	MazeHeight  = model.Rows * model.CellSize
	Height      = MazeHeight + ScoreHeight

	ButtonWidth  = 200
	ButtonHeight = 50
	TitleY       = 150
	BannerY      = 210
)

var (
	NewGameButton  = image.Rect((Width-ButtonWidth)/2, 250, (Width+ButtonWidth)/2, 250+ButtonHeight)
	ContinueButton = image.Rect((Width-ButtonWidth)/2, 320, (Width+ButtonWidth)/2, 320+ButtonHeight)
)

type Action int

const (
	ACTION_NONE Action = iota
	ACTION_NEW_GAME
	ACTION_CONTINUE
)

// Hit maps a click in window coordinates to a menu action.
func Hit(x, y int) Action {
	p := image.Pt(x, y)
	switch {
	case p.In(NewGameButton):
		return ACTION_NEW_GAME
	case p.In(ContinueButton):
		return ACTION_CONTINUE
	default:
		return ACTION_NONE
	}
}

// CellOrigin is where a cell's top left corner lands on screen.
func CellOrigin(c model.Cell) (float64, float64) {
	p := c.Position()
	return p.X, p.Y + ScoreHeight
}

// Origin is where a mover's box lands on screen.
func Origin(p model.Position) (float64, float64) {
	return p.X, p.Y + ScoreHeight
}
