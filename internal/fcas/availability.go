package fcas

import "fmt"

// Availability reports whether a trader's FCAS offer is available for
// enablement. Six conditions must all hold over the scaled trapezium and the
// unit's state; evaluation short-circuits on the first failure. The
// optimization model forces the offer's target to zero when unavailable
// instead of emitting capacity constraints.
func Availability(repo quantityBandReader, traderID string, offer TradeType, trapezium Trapezium, unit UnitState) (bool, error) {
	// Condition 1 - the scaled ceiling must be positive.
	if trapezium.MaxAvail <= 0 {
		return false, nil
	}

	// Condition 2 - at least one quantity band must carry volume.
	bands, err := repo.QuantityBandAvailabilities(traderID, string(offer))
	if err != nil {
		return false, fmt.Errorf("availability %s %s: %w", traderID, offer, err)
	}
	if !anyPositive(bands) {
		return false, nil
	}

	// Condition 3 - an energy offer, when present, must reach the service's
	// enablement min.
	energyMaxAvail, err := energyOfferMaxAvail(repo, traderID, unit.TraderType)
	if err != nil {
		return false, fmt.Errorf("availability %s %s: %w", traderID, offer, err)
	}
	if energyMaxAvail != nil && *energyMaxAvail < trapezium.EnablementMin {
		return false, nil
	}

	// Condition 4 - enablement max must be non-negative.
	if trapezium.EnablementMax < 0 {
		return false, nil
	}

	// Condition 5 - the unit must be operating inside the enablement band.
	if unit.InitialMW < trapezium.EnablementMin || unit.InitialMW > trapezium.EnablementMax {
		return false, nil
	}

	// Condition 6 - AGC must be active for regulation offers.
	if offer.IsRegulating() && unit.AGCStatus != "1" {
		return false, nil
	}

	return true, nil
}

// quantityBandReader is the slice of the repository surface the availability
// predicate needs.
type quantityBandReader interface {
	QuantityBandAttribute(traderID, tradeType, attribute string) (float64, error)
	QuantityBandAvailabilities(traderID, tradeType string) ([]float64, error)
}

func anyPositive(values []float64) bool {
	for _, v := range values {
		if v > 0 {
			return true
		}
	}
	return false
}

// energyOfferMaxAvail returns the MaxAvail of the trader's energy offer, or
// nil when the trader submits no energy offer. Generators offer ENOF; loads
// offer LDOF.
func energyOfferMaxAvail(repo quantityBandReader, traderID string, traderType TraderType) (*float64, error) {
	energyOffer := ENOF
	if traderType == Load || traderType == NormallyOnLoad {
		energyOffer = LDOF
	}
	value, err := repo.QuantityBandAttribute(traderID, string(energyOffer), "@MaxAvail")
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &value, nil
}
