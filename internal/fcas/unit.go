package fcas

import (
	"errors"
	"fmt"

	"github.com/akxen/nemde-fcas/internal/casefile"
)

// UnitState is a read-only per-interval snapshot of a unit's physical state.
// Optional limits are nil when the casefile does not publish them; the
// corresponding scaling stage is then a passthrough.
type UnitState struct {
	TraderType   TraderType
	SemiDispatch bool
	InitialMW    float64
	AGCStatus    string // "1" when AGC is active
	LMW          *float64
	HMW          *float64
	RampUpRate   *float64 // SCADARampUpRate, MW/h
	RampDnRate   *float64 // SCADARampDnRate, MW/h
	UIGF         *float64 // only published by semi-scheduled units
}

// RegulationRampRate selects the SCADA ramp rate constraining a regulation
// offer: raise regulation draws on ramp-up capability, lower regulation on
// ramp-down.
func (u UnitState) RegulationRampRate(offer TradeType) *float64 {
	switch offer {
	case R5RE:
		return u.RampUpRate
	case L5RE:
		return u.RampDnRate
	}
	return nil
}

// LoadUnitState reads a unit's per-interval snapshot from the repository.
// A missing optional limit is recorded as nil; any other lookup failure is
// returned.
func LoadUnitState(repo *casefile.Repository, traderID string) (UnitState, error) {
	traderType, err := repo.TraderAttribute(traderID, "@TraderType")
	if err != nil {
		return UnitState{}, fmt.Errorf("unit state %s: %w", traderID, err)
	}
	semiDispatch, err := repo.TraderAttribute(traderID, "@SemiDispatch")
	if err != nil {
		return UnitState{}, fmt.Errorf("unit state %s: %w", traderID, err)
	}
	initialMW, err := repo.TraderInitialCondition(traderID, "InitialMW")
	if err != nil {
		return UnitState{}, fmt.Errorf("unit state %s: %w", traderID, err)
	}
	agcStatus, err := repo.TraderInitialConditionText(traderID, "AGCStatus")
	if err != nil {
		return UnitState{}, fmt.Errorf("unit state %s: %w", traderID, err)
	}

	unit := UnitState{
		TraderType:   TraderType(traderType),
		SemiDispatch: semiDispatch == "1",
		InitialMW:    initialMW,
		AGCStatus:    agcStatus,
	}

	if unit.LMW, err = optionalInitialCondition(repo, traderID, "LMW"); err != nil {
		return UnitState{}, err
	}
	if unit.HMW, err = optionalInitialCondition(repo, traderID, "HMW"); err != nil {
		return UnitState{}, err
	}
	if unit.RampUpRate, err = optionalInitialCondition(repo, traderID, "SCADARampUpRate"); err != nil {
		return UnitState{}, err
	}
	if unit.RampDnRate, err = optionalInitialCondition(repo, traderID, "SCADARampDnRate"); err != nil {
		return UnitState{}, err
	}

	if unit.SemiDispatch {
		uigf, err := repo.TraderPeriodAttribute(traderID, "@UIGF")
		if err != nil {
			if !isNotFound(err) {
				return UnitState{}, fmt.Errorf("unit state %s: %w", traderID, err)
			}
		} else {
			unit.UIGF = &uigf
		}
	}

	return unit, nil
}

// optionalInitialCondition reads an initial condition that a unit may not
// publish, mapping absence to nil.
func optionalInitialCondition(repo *casefile.Repository, traderID, conditionID string) (*float64, error) {
	value, err := repo.TraderInitialCondition(traderID, conditionID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("unit state %s: %w", traderID, err)
	}
	return &value, nil
}

func isNotFound(err error) bool {
	var notFound *casefile.AttributeNotFoundError
	return errors.As(err, &notFound)
}
