package spectral

import "github.com/go-gl/mathgl/mgl64"

// Canonicalize maps v and -v to the same representative: the sign is flipped
// so that the first coordinate whose magnitude exceeds eps is positive,
// checking x, then y, then z. This is the single canonicalization rule used
// everywhere directions are compared.
func Canonicalize(v mgl64.Vec3, eps float64) mgl64.Vec3 {
	for i := 0; i < 3; i++ {
		if v[i] > eps {
			return v
		}
		if v[i] < -eps {
			return v.Mul(-1)
		}
	}

	return v
}

// Directions computes the unit direction of every point pair in fixed (i < j)
// order, canonicalizes the sign, and deduplicates the results under eps:
// a direction is kept only if it differs by more than eps from every direction
// already kept, treating directions as points on the unit sphere. Pair
// enumeration truncates deterministically at maxPairs.
func Directions(points []mgl64.Vec3, maxPairs int, eps float64) ([]mgl64.Vec3, bool) {
	var unique []mgl64.Vec3
	pairs := 0
	truncated := false

scan:
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if pairs >= maxPairs {
				truncated = true
				break scan
			}
			pairs++

			delta := points[j].Sub(points[i])
			if delta.Len() < eps {
				continue
			}

			dir := Canonicalize(delta.Normalize(), eps)

			duplicate := false
			for _, u := range unique {
				if u.Sub(dir).Len() <= eps {
					duplicate = true
					break
				}
			}
			if !duplicate {
				unique = append(unique, dir)
			}
		}
	}

	return unique, truncated
}
