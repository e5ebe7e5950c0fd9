// Package fcas derives FCAS trapezia from casefile offers, applies the
// physical scaling pipeline and decides per-offer availability.
package fcas

// Slope is the gradient of a trapezium edge. A vertical edge has no defined
// gradient; the tag is decided before any arithmetic so degenerate handling
// is an explicit branch rather than a caught division error.
type Slope struct {
	value   float64
	defined bool
}

// DefinedSlope returns a slope with a known gradient.
func DefinedSlope(value float64) Slope {
	return Slope{value: value, defined: true}
}

// VerticalSlope returns the undefined slope of a vertical edge.
func VerticalSlope() Slope {
	return Slope{}
}

// Defined reports whether the slope has a gradient.
func (s Slope) Defined() bool {
	return s.defined
}

// Value returns the gradient. Only meaningful when Defined.
func (s Slope) Value() float64 {
	return s.value
}

// slopeBetween computes rise/run as a slope, yielding a vertical slope when
// the run is zero.
func slopeBetween(rise, run float64) Slope {
	if run == 0 {
		return VerticalSlope()
	}
	return DefinedSlope(rise / run)
}

// Line is a 2-D line described by its slope and x-intercept.
type Line struct {
	Slope      Slope
	XIntercept float64
}

// YIntercept returns the y-intercept, which does not exist for a vertical
// line.
func (l Line) YIntercept() (float64, bool) {
	if !l.Slope.Defined() {
		return 0, false
	}
	return -l.Slope.Value() * l.XIntercept, true
}

// heightAt evaluates the line at x. Callers must ensure the slope is defined.
func (l Line) heightAt(x float64) float64 {
	yIntercept, _ := l.YIntercept()
	return l.Slope.Value()*x + yIntercept
}

// Point is an intersection coordinate in (MW energy, MW FCAS) space.
type Point struct {
	X float64
	Y float64
}

// Intersection returns the point where two lines cross. Parallel lines
// (two horizontals, two verticals, or equal defined slopes) do not intersect.
func Intersection(a, b Line) (Point, bool) {
	switch {
	case a.Slope.Defined() && b.Slope.Defined():
		if a.Slope.Value() == b.Slope.Value() {
			return Point{}, false
		}
		aY, _ := a.YIntercept()
		bY, _ := b.YIntercept()
		x := (bY - aY) / (a.Slope.Value() - b.Slope.Value())
		return Point{X: x, Y: a.heightAt(x)}, true
	case !a.Slope.Defined() && b.Slope.Defined():
		return Point{X: a.XIntercept, Y: b.heightAt(a.XIntercept)}, true
	case a.Slope.Defined() && !b.Slope.Defined():
		return Point{X: b.XIntercept, Y: a.heightAt(b.XIntercept)}, true
	default:
		return Point{}, false
	}
}

// NewBreakpoint returns the x-coordinate where a line anchored at xIntercept
// reaches targetHeight. A vertical or horizontal edge is insensitive to the
// height change, so the x-intercept is returned unchanged.
func NewBreakpoint(slope Slope, xIntercept, targetHeight float64) float64 {
	if !slope.Defined() || slope.Value() == 0 {
		return xIntercept
	}
	return xIntercept + targetHeight/slope.Value()
}
