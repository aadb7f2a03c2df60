package spatial

import "math"

// Circle is used for SOURCE/SOURCE_RADIUS/SOURCE_RADIUS2/TARGET_RADIUS AoE.
type Circle struct {
	Center Position
	Radius float64
}

// Contains reports whether pos lies within the circle, inclusive.
func (c Circle) Contains(pos Position) bool {
	return c.Center.Distance(pos) <= c.Radius
}

// FrontArc is used for FRONT_1/FRONT_2/FRONT_3 AoE: a wedge centered on the
// source's facing direction. HalfWidth is in radians, derived from the
// skill's AoEPercent as (AoEPercent/100)*pi.
type FrontArc struct {
	Apex      Position
	Facing    float64 // radians
	Range     float64
	HalfWidth float64
}

// Contains reports whether pos lies within the arc.
func (f FrontArc) Contains(pos Position) bool {
	if f.Apex.Distance(pos) > f.Range {
		return false
	}
	angle := f.Apex.AngleTo(pos)
	delta := normalizeAngle(angle - f.Facing)
	return math.Abs(delta) <= f.HalfWidth
}

// Line is used for STRAIGHT_LINE AoE: a rectangle running from Start toward
// Direction for Length, HalfWidth wide on each side.
type Line struct {
	Start     Position
	Direction Position // unit vector
	Length    float64
	HalfWidth float64
}

// Contains reports whether pos lies within the line's rectangle by
// projecting pos onto the line's axis and checking both the along-axis and
// perpendicular bounds.
func (l Line) Contains(pos Position) bool {
	dir := l.Direction.Normalize()
	rel := pos.Subtract(l.Start)

	along := rel.X*dir.X + rel.Y*dir.Y
	if along < 0 || along > l.Length {
		return false
	}

	perp := rel.X*(-dir.Y) + rel.Y*dir.X
	return math.Abs(perp) <= l.HalfWidth
}

// NewFrontArc builds a FrontArc from a source position/facing, a range, and
// an AoEPercent in [0,100] mapped to a half-width of (AoEPercent/100)*pi
// radians.
func NewFrontArc(apex Position, facing, rng float64, aoePercent int) FrontArc {
	return FrontArc{
		Apex:      apex,
		Facing:    facing,
		Range:     rng,
		HalfWidth: float64(aoePercent) / 100 * math.Pi,
	}
}

// NewLine builds a Line spanning from source toward target, width units wide.
func NewLine(source, target Position, width float64) Line {
	dir := target.Subtract(source)
	return Line{
		Start:     source,
		Direction: dir.Normalize(),
		Length:    dir.Length(),
		HalfWidth: width / 2,
	}
}
