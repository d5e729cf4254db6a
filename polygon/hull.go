package polygon

import (
	"math"
	"sort"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/curvedit"
)

// Hull returns the convex hull of the knots' projection onto the xy-plane,
// as a counter-clockwise polyclip contour. Collinear knots are dropped.
func (pg *Polygon) Hull() polyclip.Contour {
	pts := make([]polyclip.Point, len(pg.points))
	for i, p := range pg.points {
		pts[i] = polyclip.Point{X: p.X, Y: p.Y}
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})
	if len(pts) < 3 {
		return polyclip.Contour(pts)
	}
	// Andrew's monotone chain
	hull := make([]polyclip.Point, 0, 2*len(pts))
	for _, p := range pts {
		for len(hull) >= 2 && turn(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && turn(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return polyclip.Contour(hull[:len(hull)-1])
}

// turn > 0 for a left turn o→a→b.
func turn(o, a, b polyclip.Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// HullContains is a predicate: does the projection of p onto the xy-plane
// lie inside or on the convex hull of the knots? Points on the hull's
// boundary count as contained, within a tolerance of Epsilon.
func (pg *Polygon) HullContains(p curvedit.Point) bool {
	return hullContains(pg.Hull(), p)
}

func hullContains(hull polyclip.Contour, p curvedit.Point) bool {
	q := polyclip.Point{X: p.X, Y: p.Y}
	if hull.Contains(q) {
		return true
	}
	for i := range hull {
		if distToSegment(q, hull[i], hull[(i+1)%len(hull)]) <= 100*curvedit.Epsilon {
			return true
		}
	}
	return false
}

// HullContainsAll is HullContains for a set of points. It computes the hull
// only once.
func (pg *Polygon) HullContainsAll(pts []curvedit.Point) bool {
	hull := pg.Hull()
	for _, p := range pts {
		if !hullContains(hull, p) {
			tracer().Debugf("point %s outside of hull", p)
			return false
		}
	}
	return true
}

func distToSegment(p, a, b polyclip.Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / l2
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}

// BoundingBox returns the xy bounding box of the knots.
func (pg *Polygon) BoundingBox() polyclip.Rectangle {
	c := make(polyclip.Contour, len(pg.points))
	for i, p := range pg.points {
		c[i] = polyclip.Point{X: p.X, Y: p.Y}
	}
	return c.BoundingBox()
}
