package tess

import "math"

// Tolerance bounds how close two segments' directions may be before the
// intersection test refuses to solve for a crossing point. Without it, nearly
// parallel segments produce crossing points so far off that they destabilize
// the event order.
const Tolerance = 1e-6

// pi shortens the convexity and side tests that all compare against π.
const pi = math.Pi

// Below reports whether p comes after other in sweep order: strictly larger
// Y, with X breaking ties. Every comparison in the engine must go through
// this one total order or span bookkeeping falls apart.
func (p Point) Below(other Point) bool {
	if p.Y != other.Y {
		return p.Y > other.Y
	}
	return p.X > other.X
}

// Above reports whether p comes before other in sweep order.
func (p Point) Above(other Point) bool { return other.Below(p) }

func (p Point) sub(other Point) Point { return Point{p.X - other.X, p.Y - other.Y} }

// directedAngle returns the clockwise angle from v1 to v2 in [0, 2π), with Y
// pointing down. Equivalent to the counterclockwise angle if Y points up.
//
// ex: directedAngle({0,1}, {1,0}) = 3/2 π rad = 270 deg
func directedAngle(v1, v2 Point) float64 {
	a := math.Atan2(v2.Y, v2.X) - math.Atan2(v1.Y, v1.X)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// directedAngleAt returns the directed angle between (a - center) and
// (b - center).
func directedAngleAt(center, a, b Point) float64 {
	return directedAngle(a.sub(center), b.sub(center))
}

// lineHorizontalIntersection returns the X coordinate where the line through
// a and b crosses the horizontal at y. For a horizontal segment the division
// has no solution and the result is NaN; callers compare against it, and a
// NaN comparison is always false, which reads as "no boundary here".
func lineHorizontalIntersection(a, b Point, y float64) float64 {
	return a.X + (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)
}

// segmentIntersection returns the crossing point of segments a1-a2 and b1-b2,
// if they cross strictly inside both. Touching endpoints do not count as a
// crossing, and nearly parallel segments deterministically resolve to no
// intersection rather than solving an ill-conditioned system.
func segmentIntersection(a1, a2, b1, b2 Point) (Point, bool) {
	da := a2.sub(a1)
	db := b2.sub(b1)

	den := da.X*db.Y - da.Y*db.X
	if math.Abs(den) < Tolerance {
		return Point{}, false
	}

	d := b1.sub(a1)
	ta := (d.X*db.Y - d.Y*db.X) / den
	tb := (d.X*da.Y - d.Y*da.X) / den

	if ta <= Tolerance || ta >= 1-Tolerance || tb <= Tolerance || tb >= 1-Tolerance {
		return Point{}, false
	}

	return Point{a1.X + da.X*ta, a1.Y + da.Y*ta}, true
}
