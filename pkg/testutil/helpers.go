// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/akxen/nemde-fcas/internal/dispatch"
	"github.com/akxen/nemde-fcas/internal/fcas"
)

// FindOffer finds an offer result by trader and trade type in the results
// slice. Returns a pointer to the result if found, nil otherwise.
func FindOffer(results []dispatch.OfferResult, traderID string, tradeType fcas.TradeType) *dispatch.OfferResult {
	for i := range results {
		if results[i].TraderID == traderID && results[i].TradeType == tradeType {
			return &results[i]
		}
	}
	return nil
}
