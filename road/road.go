// Package road models the scrolling road: lane geometry, dashed lane
// markers, parallax background layers and roadside buildings.
package road

import (
	"image/color"
	"math"

	"github.com/plus3/roadrush/geom"
)

// Road defaults.
const (
	DefaultLanes   = 3
	LineWidth      = 10.0
	LineHeight     = 50.0
	LineGap        = 30.0
	BuildingCount  = 15
	BuildingFactor = 0.7
)

// Marker is one dash of a lane divider.
type Marker struct {
	X, Y float64
}

// Layer is a full-width parallax band.
type Layer struct {
	Y      float64
	Factor float64
	Color  color.RGBA
}

// Side is the road edge a building stands on.
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

// Building is a roadside block. Y is its bottom edge.
type Building struct {
	X, Y          float64
	Width, Height float64
	Color         color.RGBA
	Side          Side
}

var buildingColors = []color.RGBA{
	{0x55, 0x55, 0x55, 0xff},
	{0x66, 0x66, 0x66, 0xff},
	{0x77, 0x77, 0x77, 0xff},
	{0x88, 0x88, 0x88, 0xff},
	{0x99, 0x99, 0x99, 0xff},
}

// Road owns the geometry for the current viewport.
type Road struct {
	Width, Height float64
	Lanes         int
	LaneWidth     float64

	Lines     []Marker
	Layers    []Layer
	Buildings []Building

	rng geom.Rand
}

// New lays out a road for a width x height viewport.
func New(width, height float64, lanes int, r geom.Rand) *Road {
	if lanes <= 0 {
		lanes = DefaultLanes
	}
	rd := &Road{
		Lanes: lanes,
		rng:   r,
	}
	rd.Resize(width, height)
	rd.initLayers()
	rd.initBuildings()
	return rd
}

// Resize re-initialises all geometry that depends on the viewport.
// Markers are rebuilt from scratch; buildings keep their shape but are
// re-anchored to the new road edges.
func (rd *Road) Resize(width, height float64) {
	rd.Width = width
	rd.Height = height
	rd.LaneWidth = width / float64(rd.Lanes+1)
	rd.initLines()

	for i := range rd.Buildings {
		rd.anchorBuilding(&rd.Buildings[i])
	}
	if len(rd.Layers) > 0 {
		rd.initLayers()
	}
}

// LaneCenter returns the x coordinate of the middle of lane i.
func (rd *Road) LaneCenter(lane int) float64 {
	return (float64(lane) + 0.5) * rd.LaneWidth
}

// Update scrolls every element by scrollSpeed scaled with its own factor and
// recycles elements that left the bottom of the viewport.
func (rd *Road) Update(dt, scrollSpeed float64) {
	for i := range rd.Lines {
		line := &rd.Lines[i]
		line.Y += scrollSpeed * dt
		if line.Y > rd.Height {
			line.Y = -LineHeight
		}
	}

	for i := range rd.Layers {
		layer := &rd.Layers[i]
		layer.Y += scrollSpeed * layer.Factor * dt
		if layer.Y > rd.Height {
			layer.Y = 0
		}
	}

	for i := range rd.Buildings {
		b := &rd.Buildings[i]
		b.Y += scrollSpeed * BuildingFactor * dt
		if b.Y > rd.Height+b.Height {
			rd.reshapeBuilding(b)
			b.Y = -b.Height
		}
	}
}

func (rd *Road) initLines() {
	rows := int(math.Ceil(rd.Height/(LineHeight+LineGap))) + 1
	rd.Lines = rd.Lines[:0]
	for i := 0; i < rows; i++ {
		for lane := 1; lane < rd.Lanes; lane++ {
			rd.Lines = append(rd.Lines, Marker{
				X: float64(lane) * rd.LaneWidth,
				Y: float64(i)*(LineHeight+LineGap) - (LineHeight + LineGap),
			})
		}
	}
}

func (rd *Road) initLayers() {
	rd.Layers = []Layer{
		{Y: 0, Factor: 0.1, Color: color.RGBA{0x87, 0xce, 0xeb, 0xff}},
		{Y: rd.Height * 0.3, Factor: 0.3, Color: color.RGBA{0x22, 0x8b, 0x22, 0xff}},
		{Y: rd.Height * 0.5, Factor: 0.5, Color: color.RGBA{0x00, 0x64, 0x00, 0xff}},
	}
}

func (rd *Road) initBuildings() {
	rd.Buildings = make([]Building, BuildingCount)
	for i := range rd.Buildings {
		b := &rd.Buildings[i]
		b.Side = SideLeft
		if i%2 == 1 {
			b.Side = SideRight
		}
		rd.reshapeBuilding(b)
		b.Y = float64(geom.RandomInt(rd.rng, 0, int(rd.Height)))
	}
}

func (rd *Road) reshapeBuilding(b *Building) {
	b.Width = float64(geom.RandomInt(rd.rng, 50, 100))
	b.Height = float64(geom.RandomInt(rd.rng, 100, 300))
	b.Color = geom.RandomChoice(rd.rng, buildingColors)
	rd.anchorBuilding(b)
}

func (rd *Road) anchorBuilding(b *Building) {
	if b.Side == SideLeft {
		b.X = -b.Width / 2
	} else {
		b.X = rd.Width + b.Width/2
	}
}
