package geomerge

// ringArea computes the signed planar area of a closed ring. The sign
// encodes winding: positive for clockwise rings, negative for
// counter-clockwise ones.
func ringArea(points [][]float64) float64 {
	sum := 0.0
	for i, p := range points[:len(points)-1] {
		next := points[i+1]
		sum += (next[0] - p[0]) * (next[1] + p[1])
	}
	return sum / 2
}

func isClockwise(points [][]float64) bool {
	return ringArea(points) >= 0
}

func reverseRing(points [][]float64) [][]float64 {
	c := make([][]float64, len(points))
	for i := 0; i < len(points); i++ {
		c[i] = points[len(points)-i-1]
	}
	return c
}
