package fcas

import "fmt"

// OfferTrapezium reads the unscaled FCAS trapezium for a trader's offer from
// the quantity-band attributes. Values are copied verbatim; any lookup
// failure is fatal to the (trader, offer) run.
func OfferTrapezium(repo quantityBandReader, traderID string, offer TradeType) (Trapezium, error) {
	var trapezium Trapezium
	fields := []struct {
		attribute string
		target    *float64
	}{
		{"@EnablementMin", &trapezium.EnablementMin},
		{"@LowBreakpoint", &trapezium.LowBreakpoint},
		{"@HighBreakpoint", &trapezium.HighBreakpoint},
		{"@EnablementMax", &trapezium.EnablementMax},
		{"@MaxAvail", &trapezium.MaxAvail},
	}
	for _, field := range fields {
		value, err := repo.QuantityBandAttribute(traderID, string(offer), field.attribute)
		if err != nil {
			return Trapezium{}, fmt.Errorf("offer trapezium %s %s: %w", traderID, offer, err)
		}
		*field.target = value
	}
	return trapezium, nil
}
