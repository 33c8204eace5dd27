package road_test

import (
	"testing"

	"github.com/plus3/roadrush/geom"
	"github.com/plus3/roadrush/road"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoad(t *testing.T) *road.Road {
	t.Helper()
	return road.New(800, 600, road.DefaultLanes, geom.NewRand(11))
}

func TestNew(t *testing.T) {
	rd := newRoad(t)

	assert.Equal(t, 3, rd.Lanes)
	assert.Equal(t, 200.0, rd.LaneWidth)
	// ceil(600/80)+1 = 9 rows, 2 dividers per row
	assert.Len(t, rd.Lines, 18)
	assert.Len(t, rd.Layers, 3)
	assert.Len(t, rd.Buildings, road.BuildingCount)

	for _, line := range rd.Lines {
		assert.Contains(t, []float64{200, 400}, line.X)
	}
	for i, b := range rd.Buildings {
		if i%2 == 0 {
			assert.Equal(t, road.SideLeft, b.Side)
			assert.Equal(t, -b.Width/2, b.X)
		} else {
			assert.Equal(t, road.SideRight, b.Side)
			assert.Equal(t, 800+b.Width/2, b.X)
		}
		assert.GreaterOrEqual(t, b.Width, 50.0)
		assert.LessOrEqual(t, b.Width, 100.0)
		assert.GreaterOrEqual(t, b.Height, 100.0)
		assert.LessOrEqual(t, b.Height, 300.0)
	}
}

func TestLaneCenter(t *testing.T) {
	rd := newRoad(t)
	assert.Equal(t, 100.0, rd.LaneCenter(0))
	assert.Equal(t, 300.0, rd.LaneCenter(1))
	assert.Equal(t, 500.0, rd.LaneCenter(2))
}

func TestUpdateRecyclesLines(t *testing.T) {
	rd := newRoad(t)
	count := len(rd.Lines)

	for i := 0; i < 600; i++ {
		rd.Update(0.1, 300)
		require.Len(t, rd.Lines, count)
		for _, line := range rd.Lines {
			if line.Y < -road.LineHeight-road.LineGap || line.Y > rd.Height {
				t.Fatalf("line escaped the loop: %+v", line)
			}
		}
	}
}

func TestUpdateScrollFactors(t *testing.T) {
	rd := newRoad(t)
	line := rd.Lines[0]
	layer := rd.Layers[1]

	rd.Update(0.1, 100)

	assert.InDelta(t, line.Y+10, rd.Lines[0].Y, 1e-9)
	assert.InDelta(t, layer.Y+3, rd.Layers[1].Y, 1e-9)
}

func TestUpdateRecyclesBuildings(t *testing.T) {
	rd := newRoad(t)
	b := &rd.Buildings[0]
	b.Y = rd.Height + b.Height - 1

	rd.Update(0.1, 100)

	assert.Equal(t, -b.Height, b.Y)
	assert.Equal(t, -b.Width/2, b.X)
}

func TestUpdateWrapsLayers(t *testing.T) {
	rd := newRoad(t)
	rd.Layers[2].Y = rd.Height - 0.5
	rd.Update(0.1, 100)
	assert.Equal(t, 0.0, rd.Layers[2].Y)
}

func TestResize(t *testing.T) {
	rd := newRoad(t)
	rd.Update(0.37, 250)

	rd.Resize(400, 1000)

	assert.Equal(t, 100.0, rd.LaneWidth)
	// ceil(1000/80)+1 = 14 rows
	assert.Len(t, rd.Lines, 28)
	assert.Equal(t, -80.0, rd.Lines[0].Y, "markers are rebuilt, not scaled")
	assert.Equal(t, 300.0, rd.Layers[1].Y)
	for _, b := range rd.Buildings {
		if b.Side == road.SideRight {
			assert.Equal(t, 400+b.Width/2, b.X)
		}
	}
}
