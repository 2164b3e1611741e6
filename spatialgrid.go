package moire

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ============================================================================
// Types
// ============================================================================

// cellKey - Coordonnées d'une cellule dans l'espace 3D
type cellKey struct {
	X, Y, Z int
}

// bucketGrid - Uniform hash grid used for ε-neighborhood queries during point
// deduplication. The cell size equals the query radius, so any point within
// that radius of a query sits in the query's cell or one of its 26 neighbors.
type bucketGrid struct {
	cellSize float64
	cells    map[cellKey][]mgl64.Vec3
}

// ============================================================================
// Constructeur
// ============================================================================

func newBucketGrid(cellSize float64) *bucketGrid {
	return &bucketGrid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]mgl64.Vec3),
	}
}

// ============================================================================
// Opérations
// ============================================================================

func (g *bucketGrid) worldToCell(p mgl64.Vec3) cellKey {
	return cellKey{
		X: int(math.Floor(p.X() / g.cellSize)),
		Y: int(math.Floor(p.Y() / g.cellSize)),
		Z: int(math.Floor(p.Z() / g.cellSize)),
	}
}

// insert registers a point in its cell.
func (g *bucketGrid) insert(p mgl64.Vec3) {
	key := g.worldToCell(p)
	g.cells[key] = append(g.cells[key], p)
}

// hasNeighborWithin reports whether any registered point lies within dist of
// p. dist must not exceed the cell size, otherwise the 27-cell neighborhood
// scan would miss candidates.
func (g *bucketGrid) hasNeighborWithin(p mgl64.Vec3, dist float64) bool {
	center := g.worldToCell(p)

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				key := cellKey{X: center.X + dx, Y: center.Y + dy, Z: center.Z + dz}
				for _, q := range g.cells[key] {
					if q.Sub(p).Len() <= dist {
						return true
					}
				}
			}
		}
	}

	return false
}
