package engine

import (
	"github.com/oghanim/triviarena/internal/game"
)

// AssembleBoard builds the n x n grid from the ordered category labels and
// the approved questions. Column c holds category c; row r is worth
// (r+1)*game.PointStep. A slot with no matching approved question stays
// empty (nil question, unrevealed).
//
// When two approved questions collide on the same (category, points) pair
// the first one in slice order wins and the rest are stranded. The
// pipeline does not reject such collisions, so assembly must stay
// deterministic: identical input order always yields an identical grid.
func AssembleBoard(categories []string, approved []game.Question, n int) []game.Cell {
	cells := make([]game.Cell, 0, n*n)
	for r := 0; r < n; r++ {
		points := (r + 1) * game.PointStep
		for c := 0; c < n; c++ {
			cell := game.Cell{Row: r, Col: c}
			if c < len(categories) {
				if q := firstMatch(approved, categories[c], points); q != nil {
					id := q.ID
					cell.QuestionID = &id
				}
			}
			cells = append(cells, cell)
		}
	}
	return cells
}

func firstMatch(approved []game.Question, category string, points int) *game.Question {
	for i := range approved {
		if approved[i].Category == category && approved[i].Points == points {
			return &approved[i]
		}
	}
	return nil
}

// BoardComplete reports whether every populated cell has been revealed.
// Empty slots never block completion: a 3x3 board with seven questions
// finishes once those seven cells are revealed.
func BoardComplete(cells []game.Cell) bool {
	for i := range cells {
		if cells[i].QuestionID != nil && !cells[i].Revealed {
			return false
		}
	}
	return true
}
