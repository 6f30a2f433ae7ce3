package lander

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrInvalidTerrain is returned by GenerateTerrain for an empty horizontal
// extent or height range.
var ErrInvalidTerrain = errors.New("lander: invalid terrain config")

// TerrainDepth is how far, in meters, terrain polygons extend below the
// surface samples.
const TerrainDepth = 10.0

// PartitionTerrain splits a surface polyline into convex quadrilaterals, one
// per pair of consecutive samples p1, p2:
//
//	[p1, p2, (p2.X, p2.Y-TerrainDepth), (p1.X, p1.Y-TerrainDepth)]
//
// Fewer than two samples yield no polygons.
func PartitionTerrain(samples []Position) [][4]Position {
	if len(samples) < 2 {
		return nil
	}
	polys := make([][4]Position, 0, len(samples)-1)
	for i := 0; i+1 < len(samples); i++ {
		p1, p2 := samples[i], samples[i+1]
		polys = append(polys, [4]Position{
			p1,
			p2,
			{X: p2.X, Y: p2.Y - TerrainDepth},
			{X: p1.X, Y: p1.Y - TerrainDepth},
		})
	}
	return polys
}

// TerrainBodies returns one fixed body per polygon of PartitionTerrain.
func TerrainBodies(samples []Position) ([]*RigidBody, error) {
	polys := PartitionTerrain(samples)
	bodies := make([]*RigidBody, 0, len(polys))
	for i := range polys {
		b, err := FixedBody(polys[i][:])
		if err != nil {
			return nil, fmt.Errorf("terrain segment %d: %w", i, err)
		}
		bodies = append(bodies, b)
	}
	return bodies, nil
}

// TerrainConfig configures GenerateTerrain. Each zero field takes the
// default noted on it. Right must exceed Left and MaxHeight must exceed
// MinHeight after defaults are applied.
type TerrainConfig struct {
	Left      float64 // left edge in meters (default 0)
	Right     float64 // right edge in meters (default 100)
	Segments  int     // number of segments; samples = Segments+1 (default 20)
	MinHeight float64 // lowest sample height (default 2)
	MaxHeight float64 // sample heights are below this (default 20)
}

func (c TerrainConfig) withDefaults() TerrainConfig {
	if c.Right == 0 {
		c.Right = 100
	}
	if c.Segments <= 0 {
		c.Segments = 20
	}
	if c.MinHeight == 0 {
		c.MinHeight = 2
	}
	if c.MaxHeight == 0 {
		c.MaxHeight = 20
	}
	return c
}

// GenerateTerrain returns Segments+1 evenly spaced surface samples from Left
// to Right with random heights in [MinHeight, MaxHeight), and flattens one
// randomly chosen segment into a landing site.
func GenerateTerrain(rng *rand.Rand, cfg TerrainConfig) ([]Position, error) {
	cfg = cfg.withDefaults()
	if !(cfg.Right > cfg.Left) {
		return nil, fmt.Errorf("extent [%v, %v]: %w", cfg.Left, cfg.Right, ErrInvalidTerrain)
	}
	if !(cfg.MaxHeight > cfg.MinHeight) {
		return nil, fmt.Errorf("heights [%v, %v): %w", cfg.MinHeight, cfg.MaxHeight, ErrInvalidTerrain)
	}
	step := (cfg.Right - cfg.Left) / float64(cfg.Segments)

	samples := make([]Position, cfg.Segments+1)
	x := cfg.Left
	for i := range samples {
		samples[i] = Position{X: x, Y: cfg.MinHeight + rng.Float64()*(cfg.MaxHeight-cfg.MinHeight)}
		x += step
	}

	site := rng.IntN(len(samples) - 1)
	samples[site+1].Y = samples[site].Y
	return samples, nil
}

// LandingSite returns the index of the first flat segment, i.e. the first i
// with samples[i].Y == samples[i+1].Y, or -1 if there is none.
func LandingSite(samples []Position) int {
	for i := 0; i+1 < len(samples); i++ {
		if samples[i].Y == samples[i+1].Y {
			return i
		}
	}
	return -1
}
