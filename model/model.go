package model

import (
	"fmt"
	"math"
)

const (
	CellSize = 20
	Cols     = 28
	Rows     = 31

	PlayerSpeed    = 2.0
	AdversarySpeed = 1.5

	// chance an adversary re-rolls its direction on an exact cell boundary
	TurnChance = 0.2

	OpennessStep = 0.15
	OpennessMax  = 0.5
)

type Cell struct {
	Col, Row int
}

// Position returns the top left corner of the cell in pixels.
func (c Cell) Position() Position {
	return Position{X: float64(c.Col * CellSize), Y: float64(c.Row * CellSize)}
}

type Position struct {
	X, Y float64
}

// Cell is the cell containing the top left corner of a box anchored at p.
func (p Position) Cell() Cell {
	return Cell{Col: floorDiv(p.X), Row: floorDiv(p.Y)}
}

func (p Position) Step(d Direction, by float64) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx*by, Y: p.Y + dy*by}
}

func (p Position) Distance(o Position) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

func floorDiv(v float64) int {
	return int(math.Floor(v / CellSize))
}

type Direction int

const (
	Right Direction = iota
	Down
	Left
	Up
)

var Directions = [4]Direction{Right, Down, Left, Up}

func (d Direction) Delta() (float64, float64) {
	switch d {
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Up:
		return 0, -1
	default:
		return 0, 0
	}
}

// Angle is the clockwise rotation of a right-facing sprite, in radians.
func (d Direction) Angle() float64 {
	return float64(d) * math.Pi / 2
}

func (d Direction) Name() string {
	switch d {
	case Right:
		return "RIGHT"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Up:
		return "UP"
	default:
		return fmt.Sprintf("N/A(%d)", d)
	}
}
