package fcas

import (
	"math"

	"github.com/akxen/nemde-fcas/pkg/constants"
)

// ScaleLowerEnablementLimit tightens the trapezium's lower bound to a unit's
// lower AGC enablement limit. No scaling applies when the limit is absent or
// the offered EnablementMin is already at least as restrictive.
//
// The moved rising edge (anchored at the limit, original gradient) is
// intersected with the unmoved falling edge; if they cross below the current
// ceiling, MaxAvail drops to the crossing height and both breakpoints are
// recomputed against it.
func ScaleLowerEnablementLimit(t Trapezium, limit *float64) Trapezium {
	if limit == nil || *limit <= t.EnablementMin {
		return t
	}

	lhs := Line{Slope: t.lhsSlope(), XIntercept: *limit}
	rhs := Line{Slope: t.rhsSlope(), XIntercept: t.EnablementMax}

	if crossing, ok := Intersection(lhs, rhs); ok && crossing.Y < t.MaxAvail {
		t.MaxAvail = crossing.Y
	}

	t.LowBreakpoint = NewBreakpoint(lhs.Slope, lhs.XIntercept, t.MaxAvail)
	t.HighBreakpoint = NewBreakpoint(rhs.Slope, rhs.XIntercept, t.MaxAvail)
	t.EnablementMin = *limit
	return t
}

// ScaleUpperEnablementLimit tightens the trapezium's upper bound to a unit's
// upper AGC enablement limit; the mirror image of ScaleLowerEnablementLimit.
func ScaleUpperEnablementLimit(t Trapezium, limit *float64) Trapezium {
	if limit == nil || *limit >= t.EnablementMax {
		return t
	}

	lhs := Line{Slope: t.lhsSlope(), XIntercept: t.EnablementMin}
	rhs := Line{Slope: t.rhsSlope(), XIntercept: *limit}

	if crossing, ok := Intersection(lhs, rhs); ok && crossing.Y < t.MaxAvail {
		t.MaxAvail = crossing.Y
	}

	t.LowBreakpoint = NewBreakpoint(lhs.Slope, lhs.XIntercept, t.MaxAvail)
	t.HighBreakpoint = NewBreakpoint(rhs.Slope, rhs.XIntercept, t.MaxAvail)
	t.EnablementMax = *limit
	return t
}

// ScaleRampRate caps MaxAvail at what the unit's AGC ramp rate can deliver
// over one five-minute interval. A missing or zero ramp rate applies no
// scaling (a zero reading is a stale SCADA value, not a hard limit).
// Breakpoints move along the original edges when the ceiling drops.
func ScaleRampRate(t Trapezium, rampRate *float64) Trapezium {
	if rampRate == nil || *rampRate == 0 {
		return t
	}

	effective := math.Min(t.MaxAvail, *rampRate/constants.IntervalsPerHour)
	if effective < t.MaxAvail {
		t.LowBreakpoint = NewBreakpoint(t.lhsSlope(), t.EnablementMin, effective)
		t.HighBreakpoint = NewBreakpoint(t.rhsSlope(), t.EnablementMax, effective)
	}
	t.MaxAvail = effective
	return t
}

// ScaleUIGF curtails the trapezium's upper bound to a semi-scheduled unit's
// forecast output. The high breakpoint moves along the unmoved falling edge
// to the forecast height; MaxAvail is untouched. When the forecast falls
// below the flat top this leaves the trapezium malformed (HighBreakpoint
// outside [LowBreakpoint, EnablementMax]); the market rules do the same, so
// no clamping is applied.
func ScaleUIGF(t Trapezium, uigf *float64) Trapezium {
	if uigf == nil || *uigf >= t.EnablementMax {
		return t
	}

	t.HighBreakpoint = NewBreakpoint(t.rhsSlope(), t.EnablementMax, *uigf)
	t.EnablementMax = *uigf
	return t
}

// ScaledTrapezium applies the full scaling pipeline to a regulating offer:
// lower AGC limit, upper AGC limit, AGC ramp rate, then UIGF. The stages are
// not commutative - the UIGF stage recomputes its edge from whatever the AGC
// stages produced - so this order must never be rearranged or run
// concurrently within one offer. Non-regulating offers pass through
// unscaled.
func ScaledTrapezium(t Trapezium, offer TradeType, unit UnitState) Trapezium {
	if !offer.IsRegulating() {
		return t
	}
	t = ScaleLowerEnablementLimit(t, unit.LMW)
	t = ScaleUpperEnablementLimit(t, unit.HMW)
	t = ScaleRampRate(t, unit.RegulationRampRate(offer))
	return ScaleUIGF(t, unit.UIGF)
}
