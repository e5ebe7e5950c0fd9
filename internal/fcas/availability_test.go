package fcas

import (
	"errors"
	"testing"
)

// failingReader errors on any lookup, proving a short-circuit never reached
// the repository.
type failingReader struct{}

func (failingReader) QuantityBandAttribute(traderID, tradeType, attribute string) (float64, error) {
	return 0, errors.New("unexpected repository access")
}

func (failingReader) QuantityBandAvailabilities(traderID, tradeType string) ([]float64, error) {
	return nil, errors.New("unexpected repository access")
}

func TestAvailability(t *testing.T) {
	repo := testRepository(t)
	okTrapezium := Trapezium{EnablementMin: 30, LowBreakpoint: 38, HighBreakpoint: 92, EnablementMax: 100, MaxAvail: 20}
	okUnit := UnitState{TraderType: Generator, InitialMW: 60, AGCStatus: "1"}

	tests := []struct {
		name      string
		traderID  string
		offer     TradeType
		trapezium Trapezium
		unit      UnitState
		want      bool
	}{
		{
			name:      "All conditions hold",
			traderID:  "GEN1",
			offer:     R5RE,
			trapezium: okTrapezium,
			unit:      okUnit,
			want:      true,
		},
		{
			name:      "No offered volume in any band",
			traderID:  "GEN2",
			offer:     R6SE,
			trapezium: Trapezium{EnablementMin: 0, LowBreakpoint: 10, HighBreakpoint: 90, EnablementMax: 100, MaxAvail: 20},
			unit:      UnitState{TraderType: Generator, InitialMW: 50, AGCStatus: "0"},
			want:      false,
		},
		{
			name:      "No energy offer passes the energy check",
			traderID:  "GEN2",
			offer:     R60S,
			trapezium: Trapezium{EnablementMin: 0, LowBreakpoint: 10, HighBreakpoint: 90, EnablementMax: 100, MaxAvail: 20},
			unit:      UnitState{TraderType: Generator, InitialMW: 50, AGCStatus: "0"},
			want:      true,
		},
		{
			name:      "Energy offer below enablement min",
			traderID:  "LOAD1",
			offer:     L5RE,
			trapezium: Trapezium{EnablementMin: 20, LowBreakpoint: 30, HighBreakpoint: 70, EnablementMax: 80, MaxAvail: 40},
			unit:      UnitState{TraderType: Load, InitialMW: 40, AGCStatus: "1"},
			want:      false,
		},
		{
			name:      "Negative enablement max",
			traderID:  "GEN1",
			offer:     R5RE,
			trapezium: Trapezium{EnablementMin: -30, LowBreakpoint: -20, HighBreakpoint: -10, EnablementMax: -5, MaxAvail: 20},
			unit:      UnitState{TraderType: Generator, InitialMW: -10, AGCStatus: "1"},
			want:      false,
		},
		{
			name:      "Unit operating below the enablement band",
			traderID:  "GEN1",
			offer:     R5RE,
			trapezium: okTrapezium,
			unit:      UnitState{TraderType: Generator, InitialMW: 10, AGCStatus: "1"},
			want:      false,
		},
		{
			name:      "Unit operating above the enablement band",
			traderID:  "GEN1",
			offer:     R5RE,
			trapezium: okTrapezium,
			unit:      UnitState{TraderType: Generator, InitialMW: 110, AGCStatus: "1"},
			want:      false,
		},
		{
			name:      "Regulation offer without AGC",
			traderID:  "GEN1",
			offer:     R5RE,
			trapezium: okTrapezium,
			unit:      UnitState{TraderType: Generator, InitialMW: 60, AGCStatus: "0"},
			want:      false,
		},
		{
			name:      "Contingency offer does not need AGC",
			traderID:  "GEN1",
			offer:     R6SE,
			trapezium: Trapezium{EnablementMin: 0, LowBreakpoint: 10, HighBreakpoint: 90, EnablementMax: 100, MaxAvail: 30},
			unit:      UnitState{TraderType: Generator, InitialMW: 60, AGCStatus: "0"},
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Availability(repo, tt.traderID, tt.offer, tt.trapezium, tt.unit)
			if err != nil {
				t.Fatalf("Availability() returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Availability() = %t, expected %t", got, tt.want)
			}
		})
	}
}

func TestAvailabilityShortCircuitsOnZeroCeiling(t *testing.T) {
	trapezium := Trapezium{EnablementMin: 0, LowBreakpoint: 20, HighBreakpoint: 80, EnablementMax: 100, MaxAvail: 0}
	got, err := Availability(failingReader{}, "GEN1", R5RE, trapezium, UnitState{})
	if err != nil {
		t.Fatalf("expected no repository access for a zero ceiling, got %v", err)
	}
	if got {
		t.Error("Availability() = true, expected false")
	}
}
