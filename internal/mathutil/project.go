package mathutil

// ErrShortPoint is the panic message for projecting fewer than 3 coordinates.
const ErrShortPoint = "mathutil: project needs at least 3 coordinates"

// Project collapses p to three dimensions by repeated perspective division,
// one axis at a time from the highest down. Each step divides the remaining
// coordinates by (perspectiveDist - w), w being the dropped last coordinate.
//
// p is not modified. When perspectiveDist equals w at some step the result
// holds Inf or NaN; choosing a distance outside the data range is up to the
// caller. Panics when len(p) < 3.
func Project(p Point, perspectiveDist float64) Vec3 {
	if len(p) < 3 {
		panic(ErrShortPoint)
	}

	cur := p.Clone()
	for len(cur) > 3 {
		last := len(cur) - 1
		scale := 1.0 / (perspectiveDist - cur[last])

		next := make(Point, last)
		for i := 0; i < last; i++ {
			next[i] = cur[i] * scale
		}
		cur = next
	}

	return Vec3{cur[0], cur[1], cur[2]}
}
