package casefile

import (
	"fmt"

	"github.com/akxen/nemde-fcas/pkg/constants"
)

// Offer identifies one (trader, trade type) offer in the case.
type Offer struct {
	TraderID  string
	TradeType string
}

// Repository provides typed attribute lookups over a case document. All
// lookups are read-only and safe for concurrent use.
type Repository struct {
	doc *Document
}

// NewRepository constructs a repository over a decoded case document.
func NewRepository(doc *Document) *Repository {
	return &Repository{doc: doc}
}

// CaseAttribute returns a case-level attribute, e.g. @CaseID or @Intervention.
func (r *Repository) CaseAttribute(attribute string) (string, error) {
	caseNode, err := r.doc.section("NEMSPDCaseFile", "NemSpdInputs", "Case")
	if err != nil {
		return "", err
	}
	node, ok := caseNode.(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("unexpected case section type %T", caseNode)
	}
	value, ok := node[attribute]
	if !ok {
		return "", &AttributeNotFoundError{Entity: "Case", Attribute: attribute, Context: "Case"}
	}
	return toText(attribute, value)
}

// InterventionStatus reports which solved scenario's outputs apply: "0" when
// no intervention pricing run occurred, "1" (the physical run) otherwise.
func (r *Repository) InterventionStatus() (string, error) {
	flag, err := r.CaseAttribute("@Intervention")
	if err != nil {
		return "", err
	}
	if flag == "False" {
		return "0", nil
	}
	return "1", nil
}

// traders returns the trader collection as a normalized sequence.
func (r *Repository) traders() ([]interface{}, error) {
	node, err := r.doc.section("NEMSPDCaseFile", "NemSpdInputs", "TraderCollection", "Trader")
	if err != nil {
		return nil, err
	}
	return asSequence(node)
}

// trader returns the trader collection entry for a trader ID.
func (r *Repository) trader(traderID string) (map[string]interface{}, error) {
	traders, err := r.traders()
	if err != nil {
		return nil, err
	}
	for _, entry := range traders {
		node, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		if node["@TraderID"] == traderID {
			return node, nil
		}
	}
	return nil, &AttributeNotFoundError{Entity: traderID, Attribute: "@TraderID", Context: "TraderCollection"}
}

// TraderAttribute returns an attribute from a trader's collection entry,
// e.g. @TraderType or @SemiDispatch.
func (r *Repository) TraderAttribute(traderID, attribute string) (string, error) {
	trader, err := r.trader(traderID)
	if err != nil {
		return "", err
	}
	value, ok := trader[attribute]
	if !ok {
		return "", &AttributeNotFoundError{Entity: traderID, Attribute: attribute, Context: "TraderCollection"}
	}
	return toText(attribute, value)
}

// traderInitialCondition returns the raw value of a trader initial condition.
func (r *Repository) traderInitialCondition(traderID, conditionID string) (interface{}, error) {
	trader, err := r.trader(traderID)
	if err != nil {
		return nil, err
	}
	collection, ok := trader["TraderInitialConditionCollection"].(map[string]interface{})
	if !ok {
		return nil, &AttributeNotFoundError{Entity: traderID, Attribute: conditionID, Context: "TraderInitialConditionCollection"}
	}
	conditions, err := asSequence(collection["TraderInitialCondition"])
	if err != nil {
		return nil, err
	}
	for _, entry := range conditions {
		node, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		if node["@InitialConditionID"] == conditionID {
			return node["@Value"], nil
		}
	}
	return nil, &AttributeNotFoundError{Entity: traderID, Attribute: conditionID, Context: "TraderInitialConditionCollection"}
}

// TraderInitialCondition returns a trader initial condition as a float,
// e.g. InitialMW, LMW, HMW, SCADARampUpRate, SCADARampDnRate.
func (r *Repository) TraderInitialCondition(traderID, conditionID string) (float64, error) {
	value, err := r.traderInitialCondition(traderID, conditionID)
	if err != nil {
		return 0, err
	}
	return toFloat(conditionID, value)
}

// TraderInitialConditionText returns a trader initial condition as its string
// form, e.g. AGCStatus which carries "0" or "1".
func (r *Repository) TraderInitialConditionText(traderID, conditionID string) (string, error) {
	value, err := r.traderInitialCondition(traderID, conditionID)
	if err != nil {
		return "", err
	}
	return toText(conditionID, value)
}

// traderPeriods returns the trader period collection as a normalized sequence.
func (r *Repository) traderPeriods() ([]interface{}, error) {
	node, err := r.doc.section("NEMSPDCaseFile", "NemSpdInputs", "PeriodCollection", "Period",
		"TraderPeriodCollection", "TraderPeriod")
	if err != nil {
		return nil, err
	}
	return asSequence(node)
}

// traderPeriod returns the trader period entry for a trader ID.
func (r *Repository) traderPeriod(traderID string) (map[string]interface{}, error) {
	periods, err := r.traderPeriods()
	if err != nil {
		return nil, err
	}
	for _, entry := range periods {
		node, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		if node["@TraderID"] == traderID {
			return node, nil
		}
	}
	return nil, &AttributeNotFoundError{Entity: traderID, Attribute: "@TraderID", Context: "TraderPeriodCollection"}
}

// TraderPeriodAttribute returns a per-period trader attribute as a float,
// e.g. @UIGF for semi-scheduled units.
func (r *Repository) TraderPeriodAttribute(traderID, attribute string) (float64, error) {
	period, err := r.traderPeriod(traderID)
	if err != nil {
		return 0, err
	}
	value, ok := period[attribute]
	if !ok {
		return 0, &AttributeNotFoundError{Entity: traderID, Attribute: attribute, Context: "TraderPeriodCollection"}
	}
	return toFloat(attribute, value)
}

// trades returns the normalized trade sequence for a trader.
func (r *Repository) trades(traderID string) ([]interface{}, error) {
	period, err := r.traderPeriod(traderID)
	if err != nil {
		return nil, err
	}
	collection, ok := period["TradeCollection"].(map[string]interface{})
	if !ok {
		return nil, &AttributeNotFoundError{Entity: traderID, Attribute: "TradeCollection", Context: "TraderPeriodCollection"}
	}
	return asSequence(collection["Trade"])
}

// trade returns the trade entry for a (trader, trade type) pair.
func (r *Repository) trade(traderID, tradeType string) (map[string]interface{}, error) {
	trades, err := r.trades(traderID)
	if err != nil {
		return nil, err
	}
	for _, entry := range trades {
		node, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		if node["@TradeType"] == tradeType {
			return node, nil
		}
	}
	return nil, &AttributeNotFoundError{Entity: traderID, Attribute: tradeType, Context: "TradeCollection"}
}

// QuantityBandAttribute returns a quantity-band attribute for a trader's
// offer, e.g. @EnablementMin or @MaxAvail.
func (r *Repository) QuantityBandAttribute(traderID, tradeType, attribute string) (float64, error) {
	trade, err := r.trade(traderID, tradeType)
	if err != nil {
		return 0, err
	}
	value, ok := trade[attribute]
	if !ok {
		return 0, &AttributeNotFoundError{Entity: traderID, Attribute: attribute, Context: "TradeCollection/" + tradeType}
	}
	return toFloat(attribute, value)
}

// QuantityBandAvailabilities returns the @BandAvail1..@BandAvail10 values for
// a trader's offer. Absent bands are skipped.
func (r *Repository) QuantityBandAvailabilities(traderID, tradeType string) ([]float64, error) {
	trade, err := r.trade(traderID, tradeType)
	if err != nil {
		return nil, err
	}
	bands := make([]float64, 0, constants.QuantityBandCount)
	for i := 1; i <= constants.QuantityBandCount; i++ {
		attribute := fmt.Sprintf("@BandAvail%d", i)
		value, ok := trade[attribute]
		if !ok {
			continue
		}
		f, err := toFloat(attribute, value)
		if err != nil {
			return nil, err
		}
		bands = append(bands, f)
	}
	return bands, nil
}

// TraderSolutionAttribute returns a solved output for a trader, filtered by
// the intervention flag, e.g. @EnergyTarget or @R5RegTarget.
func (r *Repository) TraderSolutionAttribute(traderID, attribute, intervention string) (float64, error) {
	node, err := r.doc.section("NEMSPDCaseFile", "NemSpdOutputs", "TraderSolution")
	if err != nil {
		return 0, err
	}
	solutions, err := asSequence(node)
	if err != nil {
		return 0, err
	}
	for _, entry := range solutions {
		solution, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		if solution["@TraderID"] != traderID || solution["@Intervention"] != intervention {
			continue
		}
		value, ok := solution[attribute]
		if !ok {
			return 0, &AttributeNotFoundError{Entity: traderID, Attribute: attribute, Context: "TraderSolution"}
		}
		return toFloat(attribute, value)
	}
	return 0, &AttributeNotFoundError{Entity: traderID, Attribute: attribute, Context: "TraderSolution/intervention=" + intervention}
}

// TraderOffers returns every (trader, trade type) offer in the case.
func (r *Repository) TraderOffers() ([]Offer, error) {
	periods, err := r.traderPeriods()
	if err != nil {
		return nil, err
	}
	var offers []Offer
	for _, entry := range periods {
		period, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		traderID, err := toText("@TraderID", period["@TraderID"])
		if err != nil {
			return nil, err
		}
		collection, ok := period["TradeCollection"].(map[string]interface{})
		if !ok {
			continue
		}
		trades, err := asSequence(collection["Trade"])
		if err != nil {
			return nil, err
		}
		for _, tradeEntry := range trades {
			trade, ok := tradeEntry.(map[string]interface{})
			if !ok {
				continue
			}
			tradeType, err := toText("@TradeType", trade["@TradeType"])
			if err != nil {
				return nil, err
			}
			offers = append(offers, Offer{TraderID: traderID, TradeType: tradeType})
		}
	}
	return offers, nil
}
