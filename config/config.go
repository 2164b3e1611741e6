// Package config loads run configuration for the moire CLI from a TOML file
// and turns it into engine parameters.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/akmonengine/moire"
	"github.com/akmonengine/moire/geom"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pelletier/go-toml/v2"
)

type RunConfig struct {
	SideLength    float64   `toml:"side_length"`
	RotationAngle float64   `toml:"rotation_angle"`
	RotationAxis  string    `toml:"rotation_axis"`
	SweepAngles   []float64 `toml:"sweep_angles"`
	Workers       int       `toml:"workers"`
}

type LimitsConfig struct {
	MaxDistancePairs  int `toml:"max_distance_pairs"`
	MaxDirectionPairs int `toml:"max_direction_pairs"`
}

type ToleranceConfig struct {
	GoldenRatio  float64 `toml:"golden_ratio"`
	SpecialAngle float64 `toml:"special_angle"`
	Geometry     float64 `toml:"geometry"`
}

type Config struct {
	Run        RunConfig       `toml:"run"`
	Limits     LimitsConfig    `toml:"limits"`
	Tolerances ToleranceConfig `toml:"tolerances"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return &cfg, nil
}

// Params converts the configuration into engine parameters. Unset bounds and
// tolerances keep their engine defaults.
func (c *Config) Params() (moire.Params, error) {
	axis, err := ParseAxis(c.Run.RotationAxis)
	if err != nil {
		return moire.Params{}, err
	}

	return moire.Params{
		SideLength:            c.Run.SideLength,
		RotationAngleDegrees:  c.Run.RotationAngle,
		RotationAxis:          axis,
		MaxDistancePairs:      c.Limits.MaxDistancePairs,
		MaxDirectionPairs:     c.Limits.MaxDirectionPairs,
		GoldenRatioTolerance:  c.Tolerances.GoldenRatio,
		SpecialAngleTolerance: c.Tolerances.SpecialAngle,
		Tolerance:             c.Tolerances.Geometry,
	}, nil
}

// ParseAxis accepts a named axis ("x", "y", "z") or three comma-separated
// components ("1,1,0"). An empty string defaults to the z axis.
func ParseAxis(s string) (mgl64.Vec3, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return geom.AxisZ, nil
	}

	if !strings.Contains(s, ",") {
		return geom.NamedAxis(s)
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("axis %q: want 3 components, got %d", s, len(parts))
	}

	var axis mgl64.Vec3
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return mgl64.Vec3{}, fmt.Errorf("axis %q: component %d: %w", s, i, err)
		}
		axis[i] = v
	}

	return axis, nil
}
