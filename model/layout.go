package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

var (
	ErrEmptyLayout    = errors.New("layout has no rows")
	ErrRaggedLayout   = errors.New("layout rows differ in width")
	ErrUnknownTile    = errors.New("unknown tile")
	ErrMissingSpawn   = errors.New("layout has no player spawn")
	ErrDuplicateSpawn = errors.New("spawn declared twice")
	ErrSpawnInWall    = errors.New("spawn sits in a wall")
)

const (
	tileWall   = '#'
	tileOpen   = '.'
	tilePlayer = 'P'
)

// Maze answers wall queries for any cell, including cells off the grid.
type Maze interface {
	IsWall(col, row int) bool
}

// Grid is an immutable wall table. The outer ring and everything beyond it
// is always wall, whatever the table says.
type Grid struct {
	cols, rows int
	walls      [][]bool
}

func (g *Grid) IsWall(col, row int) bool {
	if col <= 0 || row <= 0 || col >= g.cols-1 || row >= g.rows-1 {
		return true
	}
	return g.walls[col][row]
}

func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Rows() int { return g.rows }

// OpenCells lists every non-wall cell, row by row.
func (g *Grid) OpenCells() []Cell {
	cells := make([]Cell, 0)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if !g.IsWall(c, r) {
				cells = append(cells, Cell{Col: c, Row: r})
			}
		}
	}
	return cells
}

// Spawn is where an adversary starts; Tag picks its colour.
type Spawn struct {
	Cell Cell
	Tag  int
}

type Layout struct {
	Grid        *Grid
	Player      Cell
	Adversaries []Spawn
}

// ParseLayout reads one text row per grid row: '#' wall, '.' open,
// 'P' player spawn and '1'..'9' adversary spawns (tag = digit - 1).
// Spawn tiles are open cells.
func ParseLayout(reader io.Reader) (*Layout, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)

	lines := make([]string, 0)
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue
		}
		lines = append(lines, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyLayout
	}

	cols := len(lines[0])
	grid := &Grid{cols: cols, rows: len(lines), walls: make([][]bool, cols)}
	for c := range grid.walls {
		grid.walls[c] = make([]bool, len(lines))
	}

	var player *Cell
	adversaries := make(map[int]Cell)
	for row, s := range lines {
		if len(s) != cols {
			return nil, fmt.Errorf("row %d: %w", row, ErrRaggedLayout)
		}
		for col, char := range s {
			cell := Cell{Col: col, Row: row}
			switch {
			case char == tileWall:
				grid.walls[col][row] = true
			case char == tileOpen:
			case char == tilePlayer:
				if player != nil {
					return nil, fmt.Errorf("player at %d,%d: %w", col, row, ErrDuplicateSpawn)
				}
				player = &cell
			case char >= '1' && char <= '9':
				tag := int(char - '1')
				if _, found := adversaries[tag]; found {
					return nil, fmt.Errorf("adversary %c at %d,%d: %w", char, col, row, ErrDuplicateSpawn)
				}
				adversaries[tag] = cell
			default:
				return nil, fmt.Errorf("%q at %d,%d: %w", char, col, row, ErrUnknownTile)
			}
		}
	}
	if player == nil {
		return nil, ErrMissingSpawn
	}

	layout := &Layout{Grid: grid, Player: *player, Adversaries: make([]Spawn, 0, len(adversaries))}
	for tag, cell := range adversaries {
		layout.Adversaries = append(layout.Adversaries, Spawn{Cell: cell, Tag: tag})
	}
	sort.Slice(layout.Adversaries, func(i, j int) bool {
		return layout.Adversaries[i].Tag < layout.Adversaries[j].Tag
	})

	if grid.IsWall(player.Col, player.Row) {
		return nil, fmt.Errorf("player: %w", ErrSpawnInWall)
	}
	for _, s := range layout.Adversaries {
		if grid.IsWall(s.Cell.Col, s.Cell.Row) {
			return nil, fmt.Errorf("adversary %d: %w", s.Tag+1, ErrSpawnInWall)
		}
	}
	return layout, nil
}

// Reachable flood-fills open cells from start. The maze must be closed.
func Reachable(m Maze, start Cell) map[Cell]bool {
	seen := make(map[Cell]bool)
	if m.IsWall(start.Col, start.Row) {
		return seen
	}
	seen[start] = true
	queue := []Cell{start}
	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]
		for _, d := range Directions {
			dx, dy := d.Delta()
			next := Cell{Col: cell.Col + int(dx), Row: cell.Row + int(dy)}
			if seen[next] || m.IsWall(next.Col, next.Row) {
				continue
			}
			seen[next] = true
			queue = append(queue, next)
		}
	}
	return seen
}
