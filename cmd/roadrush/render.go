package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/plus3/roadrush/assets"
	"github.com/plus3/roadrush/effect"
	"github.com/plus3/roadrush/game"
	"github.com/plus3/roadrush/geom"
	"github.com/plus3/roadrush/road"
	"github.com/plus3/roadrush/vehicle"
)

var (
	asphaltColor  = color.RGBA{0x33, 0x33, 0x33, 0xe0}
	lineColor     = color.RGBA{0xff, 0xff, 0xff, 0xff}
	edgeColor     = color.RGBA{0xff, 0x00, 0x00, 0xff}
	windowColor   = color.RGBA{0xff, 0xff, 0x99, 0xff}
	cabinColor    = color.RGBA{0x33, 0x33, 0x33, 0xff}
	hudTextColor  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	barBackground = color.RGBA{0x55, 0x55, 0x55, 0xc0}
	barFill       = color.RGBA{0x2e, 0xcc, 0x71, 0xff}
	pedalColor    = color.RGBA{0x22, 0x22, 0x22, 0xa0}
	pedalActive   = color.RGBA{0xf3, 0x9c, 0x12, 0xc0}
	wheelColor    = color.RGBA{0x11, 0x11, 0x11, 0xd0}
)

const (
	windowSize   = 10.0
	windowGap    = 15.0
	crashTilt    = math.Pi * 0.05
	steeringTilt = 0.1
)

// renderer draws a session onto an ebiten image. It implements
// game.PresentationSink and effect.Canvas.
type renderer struct {
	screen  *ebiten.Image
	sprites map[string]*ebiten.Image
	white   *ebiten.Image
	face    text.Face
}

func newRenderer(set *assets.Set) *renderer {
	r := &renderer{
		sprites: make(map[string]*ebiten.Image),
		white:   newWhitePixel(),
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
	for _, a := range set.All() {
		if a.Status == assets.StatusReady {
			r.sprites[a.Name] = ebiten.NewImageFromImage(a.Image)
		}
	}
	return r
}

func (r *renderer) begin(screen *ebiten.Image) {
	r.screen = screen
}

func (r *renderer) DrawRoad(rd *road.Road) {
	w, h := float32(rd.Width), float32(rd.Height)

	if len(rd.Layers) > 0 {
		vector.DrawFilledRect(r.screen, 0, 0, w, h, rd.Layers[0].Color, false)
	}
	for _, layer := range rd.Layers[min(1, len(rd.Layers)):] {
		y := float32(layer.Y)
		vector.DrawFilledRect(r.screen, 0, y, w, h-y, layer.Color, false)
		vector.DrawFilledRect(r.screen, 0, y-h, w, h, layer.Color, false)
	}

	for _, b := range rd.Buildings {
		left := b.X - b.Width/2
		top := b.Y - b.Height
		vector.DrawFilledRect(r.screen, float32(left), float32(top), float32(b.Width), float32(b.Height), b.Color, false)

		rows := int(b.Height/windowGap) - 1
		cols := int(b.Width/windowGap) - 1
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				if (row*7+col*13)%10 < 3 {
					continue
				}
				vector.DrawFilledRect(r.screen,
					float32(left+float64(col)*windowGap+windowGap/2),
					float32(top+float64(row)*windowGap+windowGap/2),
					windowSize, windowSize, windowColor, false)
			}
		}
	}

	vector.DrawFilledRect(r.screen, 0, 0, w, h, asphaltColor, false)
	for _, line := range rd.Lines {
		vector.DrawFilledRect(r.screen, float32(line.X-road.LineWidth/2), float32(line.Y), road.LineWidth, road.LineHeight, lineColor, false)
	}
	vector.DrawFilledRect(r.screen, 0, 0, 5, h, edgeColor, false)
	vector.DrawFilledRect(r.screen, w-5, 0, 5, h, edgeColor, false)
}

func (r *renderer) DrawVehicle(v *vehicle.Vehicle) {
	angle := 0.0
	crashed := v.Kind == vehicle.KindPlayer && v.Collided
	switch {
	case crashed:
		angle = crashTilt
	case v.Kind == vehicle.KindPlayer:
		angle = geom.DegToRad(v.WheelAngle * steeringTilt)
	}

	if sprite, ok := r.sprites[string(v.Model)]; ok {
		op := &ebiten.DrawImageOptions{}
		b := sprite.Bounds()
		op.GeoM.Scale(v.Width/float64(b.Dx()), v.Height/float64(b.Dy()))
		op.GeoM.Translate(-v.Width/2, -v.Height/2)
		op.GeoM.Rotate(angle)
		op.GeoM.Translate(v.X, v.Y)
		if crashed {
			op.ColorScale.Scale(0.5, 0.5, 0.5, 1)
		}
		r.screen.DrawImage(sprite, op)
		return
	}

	body := v.Color
	if crashed {
		body = greyed(body)
	}
	r.fillRotatedRect(v.X, v.Y, v.Width, v.Height, angle, body)
	r.fillRotatedRect(v.X, v.Y, v.Width*0.7, v.Height*0.4, angle, cabinColor)
}

// fillRotatedRect fills a w x h rectangle centred on (cx, cy) and rotated
// by angle radians.
func (r *renderer) fillRotatedRect(cx, cy, w, h, angle float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	r.screen.DrawImage(r.white, op)
}

func greyed(c color.RGBA) color.RGBA {
	l := uint8((uint16(c.R)*3 + uint16(c.G)*6 + uint16(c.B)) / 10 * 7 / 10)
	return color.RGBA{l, l, l, c.A}
}

func newWhitePixel() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

func (r *renderer) DrawEffect(e effect.Effect) {
	e.Draw(r)
}

func (r *renderer) FillCircle(x, y, radius float64, clr color.Color) {
	vector.DrawFilledCircle(r.screen, float32(x), float32(y), float32(radius), clr, true)
}

func (r *renderer) DrawSprite(name string, x, y, size, alpha float64) bool {
	sprite, ok := r.sprites[name]
	if !ok {
		return false
	}
	b := sprite.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size/float64(b.Dx()), size/float64(b.Dy()))
	op.GeoM.Translate(x-size/2, y-size/2)
	op.ColorScale.ScaleAlpha(float32(alpha))
	r.screen.DrawImage(sprite, op)
	return true
}

func (r *renderer) drawText(s string, x, y float64, scale float64) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(hudTextColor)
	text.Draw(r.screen, s, r.face, op)
}

func (r *renderer) drawCentredText(s string, cx, y, scale float64) {
	width := text.Advance(s, r.face) * scale
	r.drawText(s, cx-width/2, y, scale)
}

// drawHUD draws the score, the speed bar, the on-screen controls and the
// state banners.
func (r *renderer) drawHUD(s *game.Session, hud hudLayout, c controlsView) {
	r.drawText("Score: "+geom.FormatNumber(s.Score()), 16, 16, 2)

	bar := hud.SpeedBar
	vector.DrawFilledRect(r.screen, float32(bar.X), float32(bar.Y), float32(bar.W), float32(bar.H), barBackground, false)
	fill := speedFraction(s.Speed(), s.MaxSpeed())
	vector.DrawFilledRect(r.screen, float32(bar.X), float32(bar.Y), float32(bar.W*fill), float32(bar.H), barFill, false)

	r.drawPedal(hud.Brake, "BRAKE", c.braking)
	r.drawPedal(hud.Accelerate, "GAS", c.accelerating)
	r.drawWheel(hud, c.wheelAngle)

	cx := float64(r.screen.Bounds().Dx()) / 2
	cy := float64(r.screen.Bounds().Dy()) / 2
	switch s.State() {
	case game.StateIdle:
		r.drawCentredText("ROAD RUSH", cx, cy-60, 4)
		r.drawCentredText("Press Enter to start", cx, cy+10, 2)
	case game.StatePaused:
		r.drawCentredText("PAUSED", cx, cy-30, 4)
		r.drawCentredText("Esc to resume, R to restart", cx, cy+30, 2)
	case game.StateOver:
		r.drawCentredText("GAME OVER", cx, cy-60, 4)
		r.drawCentredText("Score: "+geom.FormatNumber(s.Score()), cx, cy, 2)
		r.drawCentredText("Press Enter to play again", cx, cy+40, 2)
	}
}

func (r *renderer) drawPedal(zone geom.Rect, label string, active bool) {
	clr := pedalColor
	if active {
		clr = pedalActive
	}
	vector.DrawFilledRect(r.screen, float32(zone.X), float32(zone.Y), float32(zone.W), float32(zone.H), clr, false)
	cx, cy := zone.Center()
	r.drawCentredText(label, cx, cy-6, 1)
}

func (r *renderer) drawWheel(hud hudLayout, angle float64) {
	rad := geom.DegToRad(angle)
	size := hud.WheelRadius * 2
	if sprite, ok := r.sprites[assets.SteeringWheel]; ok {
		b := sprite.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(size/float64(b.Dx()), size/float64(b.Dy()))
		op.GeoM.Translate(-hud.WheelRadius, -hud.WheelRadius)
		op.GeoM.Rotate(rad)
		op.GeoM.Translate(hud.WheelX, hud.WheelY)
		r.screen.DrawImage(sprite, op)
		return
	}

	x, y, radius := float32(hud.WheelX), float32(hud.WheelY), float32(hud.WheelRadius)
	vector.StrokeCircle(r.screen, x, y, radius, 8, wheelColor, true)
	vector.DrawFilledCircle(r.screen, x, y, radius*0.2, wheelColor, true)
	for _, spoke := range []float64{-math.Pi / 2, math.Pi / 6, math.Pi * 5 / 6} {
		sin, cos := math.Sincos(spoke + rad)
		vector.StrokeLine(r.screen, x, y, x+radius*float32(cos), y+radius*float32(sin), 6, wheelColor, true)
	}
}

var (
	_ game.PresentationSink = (*renderer)(nil)
	_ effect.Canvas         = (*renderer)(nil)
)
