package model

import "math"

// Collides tests the four corners of a CellSize box anchored at p against
// the maze. The right and bottom edges are sampled one unit inside the box
// so a box sitting exactly on a cell does not touch its neighbours.
func Collides(m Maze, p Position) bool {
	left, top := floorDiv(p.X), floorDiv(p.Y)
	right, bottom := floorDiv(p.X+CellSize-1), floorDiv(p.Y+CellSize-1)
	return m.IsWall(left, top) ||
		m.IsWall(right, top) ||
		m.IsWall(left, bottom) ||
		m.IsWall(right, bottom)
}

// Mover is the movement shared by the player and the adversaries.
type Mover struct {
	Pos   Position
	Dir   Direction
	Speed float64
}

// Step moves one speed step along Dir unless that would hit a wall.
// It reports whether the move happened.
func (mv *Mover) Step(m Maze) bool {
	next := mv.Pos.Step(mv.Dir, mv.Speed)
	if Collides(m, next) {
		return false
	}
	mv.Pos = next
	return true
}

// Aligned is true within one speed step past a cell boundary on both axes.
func (mv *Mover) Aligned() bool {
	return math.Mod(mv.Pos.X, CellSize) < mv.Speed && math.Mod(mv.Pos.Y, CellSize) < mv.Speed
}

// Snapped is true only exactly on a cell boundary.
func (mv *Mover) Snapped() bool {
	return math.Mod(mv.Pos.X, CellSize) == 0 && math.Mod(mv.Pos.Y, CellSize) == 0
}

func (mv *Mover) AlignedPosition() Position {
	return Position{
		X: math.Round(mv.Pos.X/CellSize) * CellSize,
		Y: math.Round(mv.Pos.Y/CellSize) * CellSize,
	}
}

func (mv *Mover) Cell() Cell {
	return mv.Pos.Cell()
}
