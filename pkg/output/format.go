// Package output provides utilities for formatting and displaying offer
// evaluation results.
package output

import (
	"fmt"
	"os"

	"github.com/akxen/nemde-fcas/internal/dispatch"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(results []dispatch.OfferResult) {
	p := message.NewPrinter(language.English)
	fmt.Printf("Trader     | Type | EnabMin  | LowBP    | HighBP   | EnabMax  | MaxAvail | Avail | Target\n")
	fmt.Printf("______     | ____ | _______  | _____    | ______   | _______  | ________ | _____ | ______\n")
	for _, result := range results {
		t := result.Scaled
		target := "-"
		if result.Target != nil {
			target = fmt.Sprintf("%.2f", *result.Target)
		}
		_, _ = p.Printf("%-10s | %-4s | %8.2f | %8.2f | %8.2f | %8.2f | %8.2f | %-5t | %s\n",
			result.TraderID, result.TradeType,
			t.EnablementMin, t.LowBreakpoint, t.HighBreakpoint, t.EnablementMax, t.MaxAvail,
			result.Available, target)
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []dispatch.OfferResult) {
	fmt.Println(`"trader","trade_type","enablement_min","low_breakpoint","high_breakpoint","enablement_max","max_avail","available","target"`)
	for _, result := range results {
		t := result.Scaled
		target := ""
		if result.Target != nil {
			target = fmt.Sprintf("%.2f", *result.Target)
		}
		fmt.Printf(`"%s","%s","%.2f","%.2f","%.2f","%.2f","%.2f","%t","%s"`,
			result.TraderID, result.TradeType,
			t.EnablementMin, t.LowBreakpoint, t.HighBreakpoint, t.EnablementMax, t.MaxAvail,
			result.Available, target)
		fmt.Printf("\n")
	}
}

// offerRow is the YAML projection of one offer result.
type offerRow struct {
	Trader         string   `yaml:"trader"`
	TradeType      string   `yaml:"tradeType"`
	EnablementMin  float64  `yaml:"enablementMin"`
	LowBreakpoint  float64  `yaml:"lowBreakpoint"`
	HighBreakpoint float64  `yaml:"highBreakpoint"`
	EnablementMax  float64  `yaml:"enablementMax"`
	MaxAvail       float64  `yaml:"maxAvail"`
	Available      bool     `yaml:"available"`
	Target         *float64 `yaml:"target,omitempty"`
}

// YamlFormat outputs results as a YAML document.
func YamlFormat(results []dispatch.OfferResult) error {
	rows := make([]offerRow, 0, len(results))
	for _, result := range results {
		t := result.Scaled
		rows = append(rows, offerRow{
			Trader:         result.TraderID,
			TradeType:      string(result.TradeType),
			EnablementMin:  t.EnablementMin,
			LowBreakpoint:  t.LowBreakpoint,
			HighBreakpoint: t.HighBreakpoint,
			EnablementMax:  t.EnablementMax,
			MaxAvail:       t.MaxAvail,
			Available:      result.Available,
			Target:         result.Target,
		})
	}
	encoder := yaml.NewEncoder(os.Stdout)
	defer func() {
		_ = encoder.Close()
	}()
	return encoder.Encode(rows)
}
