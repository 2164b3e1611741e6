package main

import (
	"fmt"
	"log"

	"github.com/akmonengine/moire"
	"github.com/akmonengine/moire/geom"
)

func main() {
	base := moire.DefaultParams(2.0, 0, geom.AxisZ)

	// Sweep the first quarter turn in 15° steps; a z rotation repeats with
	// period 90° for a cube.
	angles := []float64{0, 15, 30, 45, 60, 75, 90}
	cache := moire.NewResultCache(16)

	for _, r := range moire.Sweep(base, angles, 4) {
		if r.Err != nil {
			log.Fatal(r.Err)
		}
		fmt.Println(r.Result.Summary())
	}

	// Revisiting an angle hits the cache instead of recomputing
	params := base
	params.RotationAngleDegrees = 60
	if _, err := cache.Analyze(params); err != nil {
		log.Fatal(err)
	}
	if _, err := cache.Analyze(params); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("cache holds %d result(s)\n", cache.Len())
}
