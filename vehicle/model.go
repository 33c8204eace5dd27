package vehicle

import "image/color"

// Model names a car body. It doubles as the sprite asset name.
type Model string

const (
	ModelPlayer    Model = "car"
	ModelEnemy1    Model = "enemy-car1"
	ModelEnemy2    Model = "enemy-car2"
	ModelEnemy3    Model = "enemy-car3"
	ModelSportsCar Model = "sports-car"
	ModelSUV       Model = "suv"
	ModelTruck     Model = "truck"
	ModelPolice    Model = "police-car"
	ModelTaxi      Model = "taxi"
)

// EnemyModels lists the traffic bodies the spawner picks from.
var EnemyModels = []Model{
	ModelEnemy1,
	ModelEnemy2,
	ModelEnemy3,
	ModelSportsCar,
	ModelSUV,
	ModelTruck,
	ModelPolice,
	ModelTaxi,
}

// Size returns the visual extents of a model.
func (m Model) Size() (width, height float64) {
	if m == ModelTruck {
		return 60, 120
	}
	return 50, 100
}

// PlayerColor is the fallback body colour of the player car.
var PlayerColor = color.RGBA{0x34, 0x98, 0xdb, 0xff}

// EnemyColors are the fallback body colours of traffic.
var EnemyColors = []color.RGBA{
	{0xe7, 0x4c, 0x3c, 0xff},
	{0x2e, 0xcc, 0x71, 0xff},
	{0xf3, 0x9c, 0x12, 0xff},
	{0x9b, 0x59, 0xb6, 0xff},
	{0x1a, 0xbc, 0x9c, 0xff},
}
