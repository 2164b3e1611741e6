package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/akmonengine/moire"
	"github.com/akmonengine/moire/config"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	configPath := flag.String("config", os.Getenv("MOIRE_CONFIG"), "path to a TOML config file")
	side := flag.Float64("side", 2.0, "cube side length")
	angle := flag.Float64("angle", 60.0, "rotation angle in degrees")
	axis := flag.String("axis", "z", "rotation axis: x, y, z or three comma-separated components")
	sweep := flag.String("sweep", "", "comma-separated list of angles to sweep instead of a single run")
	workers := flag.Int("workers", 1, "worker count for sweeps")
	asJSON := flag.Bool("json", false, "emit the structured result as JSON")
	flag.Parse()

	var params moire.Params
	sweepAngles := parseAngles(*sweep)

	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		params, err = cfg.Params()
		if err != nil {
			log.Fatal(err)
		}
		if len(cfg.Run.SweepAngles) > 0 {
			sweepAngles = cfg.Run.SweepAngles
		}
		if cfg.Run.Workers > 0 {
			*workers = cfg.Run.Workers
		}
	} else {
		parsedAxis, err := config.ParseAxis(*axis)
		if err != nil {
			log.Fatal(err)
		}
		params = moire.DefaultParams(*side, *angle, parsedAxis)
	}

	runID := uuid.New()

	if len(sweepAngles) > 0 {
		runSweep(params, sweepAngles, *workers, runID, *asJSON)
		return
	}

	result, err := moire.Analyze(params)
	if err != nil {
		log.Fatal(err)
	}

	if *asJSON {
		emitJSON(map[string]any{"run_id": runID, "result": result})
		return
	}
	fmt.Printf("run %s\n%s", runID, result.Summary())
}

func runSweep(params moire.Params, angles []float64, workers int, runID uuid.UUID, asJSON bool) {
	results := moire.Sweep(params, angles, workers)

	if asJSON {
		emitJSON(map[string]any{"run_id": runID, "sweep": results})
		return
	}

	fmt.Printf("run %s: sweep over %d angles\n", runID, len(angles))
	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("angle %g°: %v\n", r.Params.RotationAngleDegrees, r.Err)
			continue
		}
		fmt.Println(r.Result.Summary())
	}
}

func emitJSON(payload any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		log.Fatal(err)
	}
}

func parseAngles(s string) []float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	var angles []float64
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			log.Fatalf("invalid sweep angle %q: %v", part, err)
		}
		angles = append(angles, v)
	}

	return angles
}
