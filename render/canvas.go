package render

import (
	"math"

	"github.com/lguibr/duopong/game"
	"github.com/lguibr/duopong/utils"
)

type RGBPixel struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

var (
	BackgroundColor = RGBPixel{R: 0, G: 0, B: 0}
	EntityColor     = RGBPixel{R: 255, G: 255, B: 255}
)

// Rasterize draws a frame onto a cols x rows grid indexed [row][col]. Each
// cell covers an equal slice of the snapshot's screen. Entities that are
// smaller than a cell still light the cell that holds them.
func Rasterize(snapshot game.Snapshot, cols, rows int) [][]RGBPixel {
	if cols <= 0 || rows <= 0 {
		return nil
	}

	grid := make([][]RGBPixel, rows)
	for i := range grid {
		grid[i] = make([]RGBPixel, cols)
		for j := range grid[i] {
			grid[i][j] = BackgroundColor
		}
	}

	cellWidth := float64(snapshot.Width) / float64(cols)
	cellHeight := float64(snapshot.Height) / float64(rows)

	for _, paddle := range []game.Rect{snapshot.LeftPaddle, snapshot.RightPaddle} {
		fillRect(grid, paddle, cellWidth, cellHeight)
	}
	fillCircle(grid, snapshot.Ball, cellWidth, cellHeight)

	return grid
}

func fillRect(grid [][]RGBPixel, rect game.Rect, cellWidth, cellHeight float64) {
	firstCol, lastCol := cellSpan(rect.X, rect.X+rect.Width, cellWidth, len(grid[0]))
	firstRow, lastRow := cellSpan(rect.Y, rect.Y+rect.Height, cellHeight, len(grid))

	for row := firstRow; row <= lastRow; row++ {
		for col := firstCol; col <= lastCol; col++ {
			grid[row][col] = EntityColor
		}
	}
}

func fillCircle(grid [][]RGBPixel, circle game.Circle, cellWidth, cellHeight float64) {
	rows, cols := len(grid), len(grid[0])

	firstCol, lastCol := cellSpan(circle.X-circle.Radius, circle.X+circle.Radius, cellWidth, cols)
	firstRow, lastRow := cellSpan(circle.Y-circle.Radius, circle.Y+circle.Radius, cellHeight, rows)

	for row := firstRow; row <= lastRow; row++ {
		for col := firstCol; col <= lastCol; col++ {
			// closest point of the cell to the centre
			top := [2]float64{float64(col) * cellWidth, float64(row) * cellHeight}
			bottom := [2]float64{top[0] + cellWidth, top[1] + cellHeight}
			closestX := utils.Clamp(circle.X, top[0], bottom[0])
			closestY := utils.Clamp(circle.Y, top[1], bottom[1])

			if utils.CheckPointWithinBounds(circle.X, circle.Y, top, bottom) ||
				utils.Distance(circle.X, circle.Y, closestX, closestY) < circle.Radius {
				grid[row][col] = EntityColor
			}
		}
	}
}

// cellSpan returns the inclusive range of cells covering [from, to), clipped
// to [0, count). An empty range comes back as first > last.
func cellSpan(from, to, cellSize float64, count int) (first, last int) {
	first = int(math.Floor(from / cellSize))
	last = int(math.Ceil(to/cellSize)) - 1
	if last < first {
		last = first
	}
	if first < 0 {
		first = 0
	}
	if last > count-1 {
		last = count - 1
	}
	return first, last
}
