package game_test

import (
	"fmt"

	"github.com/plus3/roadrush/game"
	"github.com/plus3/roadrush/geom"
)

// ExampleSession drives a seeded session for twenty simulated seconds with
// the accelerator held down.
func ExampleSession() {
	s, err := game.New(game.DefaultConfig(), 800, 600,
		game.WithRand(geom.NewRand(1)),
		game.WithInput(game.FixedInput{Accelerating: true}),
	)
	if err != nil {
		panic(err)
	}
	if err := s.Start(); err != nil {
		panic(err)
	}

	for range 200 {
		s.Update(0.1)
	}

	fmt.Println("state:", s.State())
	fmt.Println("max speed:", s.MaxSpeed())
	fmt.Println("spawn interval:", s.SpawnInterval())
	// Output:
	// state: active
	// max speed: 320
	// spawn interval: 1.35375s
}
