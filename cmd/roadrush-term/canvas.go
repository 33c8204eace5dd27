package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/roadrush/effect"
	"github.com/plus3/roadrush/game"
	"github.com/plus3/roadrush/geom"
	"github.com/plus3/roadrush/road"
	"github.com/plus3/roadrush/vehicle"
)

// Pixels per terminal cell. Cells are roughly twice as tall as wide.
const (
	cellWidth  = 10.0
	cellHeight = 20.0
)

var (
	roadColor  = tcell.NewRGBColor(0x33, 0x33, 0x33)
	roadStyle  = tcell.StyleDefault.Background(roadColor)
	lineStyle  = roadStyle.Foreground(tcell.ColorWhite)
	edgeStyle  = roadStyle.Foreground(tcell.ColorRed)
	hudStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	alertStyle = hudStyle.Foreground(tcell.ColorYellow).Bold(true)
)

// viewportFor converts a terminal size to the session viewport in pixels.
func viewportFor(cols, rows int) (width, height float64) {
	return float64(cols) * cellWidth, float64(rows) * cellHeight
}

// toCell maps a pixel position to the cell containing it.
func toCell(x, y float64) (int, int) {
	return int(math.Floor(x / cellWidth)), int(math.Floor(y / cellHeight))
}

func rgb(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// canvas draws a session as terminal cells. It implements
// game.PresentationSink and effect.Canvas.
type canvas struct {
	screen tcell.Screen
}

func (c *canvas) fill(r geom.Rect, ch rune, style tcell.Style) {
	cols, rows := c.screen.Size()
	x0, y0 := toCell(r.X, r.Y)
	x1, y1 := toCell(r.X+r.W, r.Y+r.H)
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, cols-1), min(y1, rows-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (c *canvas) DrawRoad(rd *road.Road) {
	cols, rows := c.screen.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c.screen.SetContent(x, y, ' ', nil, roadStyle)
		}
	}

	for _, b := range rd.Buildings {
		style := tcell.StyleDefault.Background(rgb(b.Color))
		c.fill(geom.Rect{X: b.X - b.Width/2, Y: b.Y - b.Height, W: b.Width, H: b.Height}, ' ', style)
	}

	for _, line := range rd.Lines {
		c.fill(geom.Rect{X: line.X, Y: line.Y, W: 0, H: road.LineHeight}, '│', lineStyle)
	}

	for y := 0; y < rows; y++ {
		c.screen.SetContent(0, y, '▌', nil, edgeStyle)
		c.screen.SetContent(cols-1, y, '▐', nil, edgeStyle)
	}
}

func (c *canvas) DrawVehicle(v *vehicle.Vehicle) {
	style := tcell.StyleDefault.Foreground(rgb(v.Color)).Background(roadColor)
	ch := '█'
	if v.Kind == vehicle.KindPlayer && v.Collided {
		style = style.Foreground(tcell.ColorGray)
		ch = '▒'
	}
	c.fill(geom.Rect{X: v.X - v.Width/2, Y: v.Y - v.Height/2, W: v.Width - 1, H: v.Height - 1}, ch, style)
}

func (c *canvas) DrawEffect(e effect.Effect) {
	e.Draw(c)
}

func (c *canvas) FillCircle(x, y, radius float64, clr color.Color) {
	style := tcell.StyleDefault.Foreground(rgb(clr)).Background(roadColor)
	ch := '*'
	if radius > cellWidth {
		ch = '░'
	}
	cols, rows := c.screen.Size()
	x0, y0 := toCell(x-radius, y-radius)
	x1, y1 := toCell(x+radius, y+radius)
	for cy := max(y0, 0); cy <= min(y1, rows-1); cy++ {
		for cx := max(x0, 0); cx <= min(x1, cols-1); cx++ {
			px := (float64(cx) + 0.5) * cellWidth
			py := (float64(cy) + 0.5) * cellHeight
			if math.Hypot(px-x, py-y) <= max(radius, cellWidth/2) {
				c.screen.SetContent(cx, cy, ch, nil, style)
			}
		}
	}
}

// DrawSprite always reports false: the terminal has no images, so effects
// fall back to shapes.
func (c *canvas) DrawSprite(name string, x, y, size, alpha float64) bool {
	return false
}

func (c *canvas) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		c.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (c *canvas) centred(y int, s string, style tcell.Style) {
	cols, _ := c.screen.Size()
	c.text((cols-len([]rune(s)))/2, y, s, style)
}

// hudLine is the status bar text.
func hudLine(s *game.Session, muted bool) string {
	line := fmt.Sprintf(" Score: %s  Speed: %3.0f/%.0f ", geom.FormatNumber(s.Score()), s.Speed(), s.MaxSpeed())
	if muted {
		line += " [muted]"
	}
	return line
}

func (c *canvas) drawHUD(s *game.Session, muted bool) {
	_, rows := c.screen.Size()
	c.text(0, 0, hudLine(s, muted), hudStyle)
	c.text(0, rows-1, " ←/→ steer  ↑ gas  ↓ brake  space horn  m mute  p pause  q quit ", hudStyle)

	mid := rows / 2
	switch s.State() {
	case game.StateIdle:
		c.centred(mid-1, " ROAD RUSH ", alertStyle)
		c.centred(mid+1, " Press Enter to start ", hudStyle)
	case game.StatePaused:
		c.centred(mid, " PAUSED ", alertStyle)
	case game.StateOver:
		c.centred(mid-1, " GAME OVER ", alertStyle)
		c.centred(mid+1, fmt.Sprintf(" Score: %s, Enter to play again ", geom.FormatNumber(s.Score())), hudStyle)
	}
}

var (
	_ game.PresentationSink = (*canvas)(nil)
	_ effect.Canvas         = (*canvas)(nil)
)
