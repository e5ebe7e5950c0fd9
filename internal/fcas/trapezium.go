package fcas

// TradeType enumerates the offer types a trader can submit.
type TradeType string

const (
	// Energy offers
	ENOF TradeType = "ENOF" // generator energy
	LDOF TradeType = "LDOF" // load energy

	// Regulation FCAS offers
	R5RE TradeType = "R5RE" // raise regulation
	L5RE TradeType = "L5RE" // lower regulation

	// Contingency FCAS offers
	R6SE TradeType = "R6SE"
	R60S TradeType = "R60S"
	R5MI TradeType = "R5MI"
	L6SE TradeType = "L6SE"
	L60S TradeType = "L60S"
	L5MI TradeType = "L5MI"
)

// IsEnergy reports whether the offer is an energy offer.
func (t TradeType) IsEnergy() bool {
	return t == ENOF || t == LDOF
}

// IsRegulating reports whether the offer is a regulation FCAS offer. Only
// regulating offers pass through the scaling pipeline.
func (t TradeType) IsRegulating() bool {
	return t == R5RE || t == L5RE
}

// IsContingency reports whether the offer is a contingency FCAS offer.
func (t TradeType) IsContingency() bool {
	switch t {
	case R6SE, R60S, R5MI, L6SE, L60S, L5MI:
		return true
	}
	return false
}

// IsFCAS reports whether the offer is any FCAS offer.
func (t TradeType) IsFCAS() bool {
	return t.IsRegulating() || t.IsContingency()
}

// TraderType enumerates the kinds of dispatchable unit.
type TraderType string

const (
	Generator      TraderType = "GENERATOR"
	Load           TraderType = "LOAD"
	NormallyOnLoad TraderType = "NORMALLY_ON_LOAD"
)

// Trapezium is the piecewise-linear feasible region bounding deliverable
// FCAS capacity as a function of energy output. All fields are megawatts.
// Stages of the scaling pipeline consume and return trapezium values; an
// individual value is never mutated in place.
type Trapezium struct {
	EnablementMin  float64
	LowBreakpoint  float64
	HighBreakpoint float64
	EnablementMax  float64
	MaxAvail       float64
}

// WellFormed reports whether the trapezium's coordinates are ordered and its
// ceiling non-negative. UIGF scaling can legitimately produce a malformed
// trapezium; downstream consumers must not assume this holds.
func (t Trapezium) WellFormed() bool {
	return t.EnablementMin <= t.LowBreakpoint &&
		t.LowBreakpoint <= t.HighBreakpoint &&
		t.HighBreakpoint <= t.EnablementMax &&
		t.MaxAvail >= 0
}

// lhsSlope is the gradient of the rising edge between EnablementMin and
// LowBreakpoint; vertical when the edge has no width.
func (t Trapezium) lhsSlope() Slope {
	return slopeBetween(t.MaxAvail, t.LowBreakpoint-t.EnablementMin)
}

// rhsSlope is the gradient of the falling edge between HighBreakpoint and
// EnablementMax; vertical when the edge has no width.
func (t Trapezium) rhsSlope() Slope {
	return slopeBetween(-t.MaxAvail, t.EnablementMax-t.HighBreakpoint)
}
