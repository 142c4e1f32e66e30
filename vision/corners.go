package vision

import (
	"sort"

	"gocv.io/x/gocv"

	"autoaim/config"
	"autoaim/geometry"
)

// yTolerance is the pixel tolerance under which two corners are
// considered to be on the same row, per spec.md §4.D.
const yTolerance = 5.0

// ExtractCorners implements spec.md §4.D. Under LegacyCornerOrder (the
// default) it reproduces the known source quirk verbatim: sorting the
// rotated rect's 4 corners by (y, x) with a 5px y-tolerance yields a
// TL, TR, BL, BR ordering, not the TL, TR, BR, BL the 3D armor models
// assume (see spec.md §9). Under FixedCornerOrder it produces the true
// TL, TR, BR, BL ordering instead.
func ExtractCorners(rect gocv.RotatedRect, mode config.CornerOrderMode) [4]geometry.Vector2 {
	corners := make([]geometry.Vector2, 0, 4)
	for _, p := range rect.Contour {
		corners = append(corners, geometry.Vector2{X: float64(p.X), Y: float64(p.Y)})
	}
	// Defensive: gocv's RotatedRect.Contour is expected to carry exactly
	// the 4 box corners; pad with the center if a degenerate contour
	// yielded fewer, so callers always see 4 points.
	for len(corners) < 4 {
		corners = append(corners, geometry.Vector2{X: float64(rect.Center.X), Y: float64(rect.Center.Y)})
	}

	if mode == FixedOrder {
		return fixedOrder(corners)
	}
	return legacyOrder(corners)
}

// FixedOrder is a local alias kept for readability at call sites; it
// mirrors config.FixedCornerOrder.
const FixedOrder = config.FixedCornerOrder

func legacyOrder(corners []geometry.Vector2) [4]geometry.Vector2 {
	sorted := append([]geometry.Vector2(nil), corners...)
	sort.SliceStable(sorted, func(i, j int) bool {
		dy := sorted[i].Y - sorted[j].Y
		if dy < 0 {
			dy = -dy
		}
		if dy < yTolerance {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})
	var out [4]geometry.Vector2
	copy(out[:], sorted[:4])
	return out
}

func fixedOrder(corners []geometry.Vector2) [4]geometry.Vector2 {
	sorted := append([]geometry.Vector2(nil), corners...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Y < sorted[j].Y })

	top := sorted[:2]
	bottom := sorted[2:4]
	sort.SliceStable(top, func(i, j int) bool { return top[i].X < top[j].X })
	sort.SliceStable(bottom, func(i, j int) bool { return bottom[i].X > bottom[j].X })

	var out [4]geometry.Vector2
	out[0], out[1] = top[0], top[1]
	out[2], out[3] = bottom[0], bottom[1]
	return out
}
