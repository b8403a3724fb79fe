// ABOUTME: Terminal rendering of the drawing canvas
// ABOUTME: Rasterizes the latest snapshot onto a grid of styled cells
package ui

import (
	"fmt"
	"strings"

	"github.com/Resonate-Protocol/sketchwave/internal/app"
	"github.com/Resonate-Protocol/sketchwave/pkg/sketch"
	"github.com/charmbracelet/lipgloss"
)

type cellKind int

const (
	cellBackground cellKind = iota
	cellProgress
	cellEdge
	cellAxis
	cellMarker
	cellLabel
	cellWave
)

var cellStyles = map[cellKind]lipgloss.Style{
	cellBackground: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	cellProgress:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(lipgloss.Color("253")),
	cellEdge:       lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("253")),
	cellAxis:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	cellMarker:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
	cellLabel:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	cellWave:       lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
}

type cell struct {
	r    rune
	kind cellKind
}

// Cursor is the last pointer position over the canvas
type Cursor struct {
	X, Y  int
	Valid bool
}

// Canvas draws whatever snapshot was last requested
type Canvas struct {
	snap     app.Snapshot
	radius   int
	requests int
	err      error
}

// NewCanvas creates a canvas with the given start/end marker radius in pixels
func NewCanvas(radius int) *Canvas {
	return &Canvas{radius: radius}
}

// Request stores a new snapshot to draw
func (c *Canvas) Request(snap app.Snapshot) {
	c.snap = snap
	c.requests++
}

// ShowError records a playback error for the status line
func (c *Canvas) ShowError(err error) {
	c.err = err
}

// Snapshot returns the last requested snapshot
func (c *Canvas) Snapshot() app.Snapshot {
	return c.snap
}

// Requests returns how many renders have been requested
func (c *Canvas) Requests() int {
	return c.requests
}

// Err returns the last playback error, if any
func (c *Canvas) Err() error {
	return c.err
}

// View renders the snapshot onto a cols x rows grid
func (c *Canvas) View(cols, rows int) string {
	grid := c.rasterize(cols, rows)

	var b strings.Builder
	for _, row := range grid {
		b.WriteString(renderRow(row))
		b.WriteString("\n")
	}
	return b.String()
}

// Readout formats the cursor position as "x: X, y: Y"
func (c *Canvas) Readout(cursor Cursor) string {
	if !cursor.Valid {
		return "x: -, y: -"
	}
	return fmt.Sprintf("x: %d, y: %d", cursor.X, cursor.Y)
}

func (c *Canvas) rasterize(cols, rows int) [][]cell {
	grid := make([][]cell, rows)
	for r := range grid {
		grid[r] = make([]cell, cols)
		for col := range grid[r] {
			grid[r][col] = cell{r: ' ', kind: cellBackground}
		}
	}
	if cols == 0 || rows == 0 || c.snap.Width == 0 || c.snap.Height == 0 {
		return grid
	}

	w, h := c.snap.Width, c.snap.Height

	// Progress fill up to MaxX, with a line at MaxX
	if maxX := c.snap.Drawing.MaxX; maxX != sketch.NoData {
		edge := pixelToCol(maxX, w, cols)
		for r := 0; r < rows; r++ {
			for col := 0; col < edge; col++ {
				grid[r][col].kind = cellProgress
			}
			grid[r][edge] = cell{r: '│', kind: cellEdge}
		}
	}

	// Axis with start and end markers
	axis := rows / 2
	for col := 0; col < cols; col++ {
		if grid[axis][col].kind != cellEdge {
			grid[axis][col] = cell{r: '─', kind: cellAxis}
		}
	}
	grid[axis][0] = cell{r: '●', kind: cellMarker}
	grid[axis][cols-1] = cell{r: '●', kind: cellMarker}

	offset := c.radius * rows / h
	if offset < 1 {
		offset = 1
	}
	above, below := axis-offset, axis+offset
	putLabel(grid, above, 0, "START")
	putLabel(grid, above, cols-len("END"), "END")
	putLabel(grid, below, 0, "0s")
	end := fmt.Sprintf("%ds", c.snap.DurationSeconds)
	putLabel(grid, below, cols-len(end), end)

	// Waveform polyline
	points := c.snap.Drawing.Points
	for i, p := range points {
		col, row := pixelToCol(p.X, w, cols), pixelToRow(p.Y, h, rows)
		if i == 0 {
			plot(grid, col, row)
			continue
		}
		prev := points[i-1]
		line(grid, pixelToCol(prev.X, w, cols), pixelToRow(prev.Y, h, rows), col, row)
	}

	return grid
}

func putLabel(grid [][]cell, row, col int, text string) {
	if row < 0 || row >= len(grid) {
		return
	}
	for i, r := range text {
		c := col + i
		if c < 0 || c >= len(grid[row]) {
			continue
		}
		grid[row][c] = cell{r: r, kind: cellLabel}
	}
}

func plot(grid [][]cell, col, row int) {
	if row < 0 || row >= len(grid) || col < 0 || col >= len(grid[row]) {
		return
	}
	grid[row][col] = cell{r: '•', kind: cellWave}
}

// line plots a Bresenham segment between two cells
func line(grid [][]cell, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	for {
		plot(grid, x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// renderRow styles runs of equal cells together
func renderRow(row []cell) string {
	var b strings.Builder
	start := 0
	for i := 1; i <= len(row); i++ {
		if i < len(row) && row[i].kind == row[start].kind {
			continue
		}
		var run strings.Builder
		for _, c := range row[start:i] {
			run.WriteRune(c.r)
		}
		b.WriteString(cellStyles[row[start].kind].Render(run.String()))
		start = i
	}
	return b.String()
}

func pixelToCol(x, width, cols int) int {
	return clampIndex(x*cols/width, cols)
}

func pixelToRow(y, height, rows int) int {
	return clampIndex(y*rows/height, rows)
}

// cellToPixel maps a cell index to the pixel at its center
func cellToPixel(i, cells, size int) int {
	return (2*i + 1) * size / (2 * cells)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
