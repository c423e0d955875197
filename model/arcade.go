package model

import "strings"

// house: the walled block in the middle, rows 11-14, cols 11-16
var arcadeRows = []string{
	"############################",
	"#..........................#",
	"#..........................#",
	"#.####.#..#.####.####...#..#",
	"#.#....#..#.#..#.#..#...#..#",
	"#.#....#..#.#..#.#..#...#..#",
	"#.####.#..#.#.##.#.##...#..#",
	"#....#.#..#.#..#.#..#.#.#..#",
	"#....#.#..#.#..#.#..#.#.#..#",
	"#.####.####.#..#.#..#.###..#",
	"#...........1234...........#",
	"#..........######..........#",
	"#..........######..........#",
	"#..........######..........#",
	"#..........######..........#",
	"#..........................#",
	"#..........................#",
	"#.............P............#",
	"#..........................#",
	"#..........................#",
	"#...####################...#",
	"#............##............#",
	"#............##............#",
	"#............##............#",
	"#............##............#",
	"#.#######....##....#######.#",
	"#..........................#",
	"#..........................#",
	"#..........................#",
	"#..........................#",
	"############################",
}

// Arcade is the one fixed maze the game is played on.
var Arcade = mustLayout(arcadeRows)

func mustLayout(rows []string) *Layout {
	layout, err := ParseLayout(strings.NewReader(strings.Join(rows, "\n")))
	if err != nil {
		panic(err)
	}
	if layout.Grid.Cols() != Cols || layout.Grid.Rows() != Rows {
		panic("arcade layout does not match grid size")
	}
	return layout
}
