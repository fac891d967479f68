package layout

import (
	"math"

	"github.com/BobdaProgrammer/chefwm/geom"
)

// Cone bands around the ideal direction, tightest first, and the distance
// multiplier applied to a candidate falling in each.
var cones = []struct {
	delta float64
	mult  float64
}{
	{10, 0.80},
	{25, 0.85},
	{35, 0.90},
	{50, 3.0},
}

// Cardinal picks the candidate to focus when moving from focus in direction
// dir. It returns the index into candidates, or -1 when nothing qualifies.
// Lower scores win and ties keep the earliest candidate.
func Cardinal(dir geom.Direction, focus geom.Rect, candidates []geom.Rect) int {
	fx, fy := focus.Center()
	best := -1
	bestScore := 0.0

	for i, c := range candidates {
		cx, cy := c.Center()
		if !inHalfPlane(dir, fx, fy, cx, cy) {
			continue
		}

		dx := float64(cx - fx)
		dy := float64(cy - fy)
		score := math.Hypot(dx, dy)
		angle := 0.0
		if dx != 0 || dy != 0 {
			angle = math.Atan2(dx, dy) * 180 / math.Pi
		}

		inCone := false
		for _, cone := range cones {
			if inDirection(dir, angle, cone.delta) {
				if overlapsAcross(dir, focus, c) {
					score *= 0.1
				}
				score *= cone.mult
				inCone = true
				break
			}
		}
		if !inCone {
			continue
		}
		if alignedWith(dir, focus, cx, cy) {
			score *= 0.9
		}

		if best == -1 || score < bestScore {
			best, bestScore = i, score
		}
	}
	return best
}

func inHalfPlane(dir geom.Direction, fx, fy, cx, cy int) bool {
	switch dir {
	case geom.North:
		return cy < fy
	case geom.South:
		return cy >= fy
	case geom.West:
		return cx < fx
	case geom.East:
		return cx >= fx
	}
	return false
}

// inDirection tests an angle, measured by atan2(dx, dy) in degrees, against
// the cone of half-width delta around dir. Screen y grows downwards, so south
// is 0 and north is ±180.
func inDirection(dir geom.Direction, angle, delta float64) bool {
	switch dir {
	case geom.North:
		return angle >= 180-delta || angle <= -180+delta
	case geom.South:
		return math.Abs(angle) <= delta
	case geom.East:
		return angle <= 90+delta && angle > 90-delta
	case geom.West:
		return angle <= -90+delta && angle >= -90-delta
	}
	return false
}

// overlapsAcross reports whether c shares part of focus's extent on the axis
// perpendicular to dir.
func overlapsAcross(dir geom.Direction, focus, c geom.Rect) bool {
	if dir == geom.North || dir == geom.South {
		return c.X <= focus.Right() && focus.X <= c.Right()
	}
	return c.Y <= focus.Bottom() && focus.Y <= c.Bottom()
}

// alignedWith reports whether the point lies within focus's perpendicular
// extent.
func alignedWith(dir geom.Direction, focus geom.Rect, cx, cy int) bool {
	if dir == geom.North || dir == geom.South {
		return focus.X <= cx && cx <= focus.Right()
	}
	return focus.Y <= cy && cy <= focus.Bottom()
}
