package fcas

import (
	"testing"

	"github.com/akxen/nemde-fcas/internal/casefile"
)

// caseFixture is a trimmed dispatch-interval casefile. GEN1 is a scheduled
// generator with energy, regulation and contingency offers. GEN2 submits no
// energy offer and zero-volume bands on one service. WIND1 is semi-scheduled
// with a singleton trade entry, exercising object-vs-sequence normalization.
// LOAD1 is a scheduled load whose energy offer cannot reach its lower
// regulation enablement min.
const caseFixture = `{
  "NEMSPDCaseFile": {
    "NemSpdInputs": {
      "Case": {"@CaseID": "20201101001", "@Intervention": "False"},
      "TraderCollection": {
        "Trader": [
          {
            "@TraderID": "GEN1",
            "@TraderType": "GENERATOR",
            "@SemiDispatch": "0",
            "TraderInitialConditionCollection": {
              "TraderInitialCondition": [
                {"@InitialConditionID": "AGCStatus", "@Value": "1"},
                {"@InitialConditionID": "InitialMW", "@Value": 60},
                {"@InitialConditionID": "LMW", "@Value": 30},
                {"@InitialConditionID": "HMW", "@Value": 90},
                {"@InitialConditionID": "SCADARampUpRate", "@Value": 240},
                {"@InitialConditionID": "SCADARampDnRate", "@Value": 600}
              ]
            }
          },
          {
            "@TraderID": "GEN2",
            "@TraderType": "GENERATOR",
            "@SemiDispatch": "0",
            "TraderInitialConditionCollection": {
              "TraderInitialCondition": [
                {"@InitialConditionID": "AGCStatus", "@Value": "0"},
                {"@InitialConditionID": "InitialMW", "@Value": 50}
              ]
            }
          },
          {
            "@TraderID": "WIND1",
            "@TraderType": "GENERATOR",
            "@SemiDispatch": "1",
            "TraderInitialConditionCollection": {
              "TraderInitialCondition": [
                {"@InitialConditionID": "AGCStatus", "@Value": "1"},
                {"@InitialConditionID": "InitialMW", "@Value": 35}
              ]
            }
          },
          {
            "@TraderID": "LOAD1",
            "@TraderType": "LOAD",
            "@SemiDispatch": "0",
            "TraderInitialConditionCollection": {
              "TraderInitialCondition": [
                {"@InitialConditionID": "AGCStatus", "@Value": "1"},
                {"@InitialConditionID": "InitialMW", "@Value": 40}
              ]
            }
          }
        ]
      },
      "PeriodCollection": {
        "Period": {
          "TraderPeriodCollection": {
            "TraderPeriod": [
              {
                "@TraderID": "GEN1",
                "TradeCollection": {
                  "Trade": [
                    {"@TradeType": "ENOF", "@MaxAvail": 100, "@BandAvail1": 50, "@BandAvail2": 50},
                    {"@TradeType": "R5RE", "@EnablementMin": 0, "@LowBreakpoint": 20, "@HighBreakpoint": 80, "@EnablementMax": 100, "@MaxAvail": 50, "@BandAvail1": 25, "@BandAvail2": 25},
                    {"@TradeType": "R6SE", "@EnablementMin": 0, "@LowBreakpoint": 10, "@HighBreakpoint": 90, "@EnablementMax": 100, "@MaxAvail": 30, "@BandAvail1": 30}
                  ]
                }
              },
              {
                "@TraderID": "GEN2",
                "TradeCollection": {
                  "Trade": [
                    {"@TradeType": "R6SE", "@EnablementMin": 0, "@LowBreakpoint": 10, "@HighBreakpoint": 90, "@EnablementMax": 100, "@MaxAvail": 20, "@BandAvail1": 0, "@BandAvail2": 0},
                    {"@TradeType": "R60S", "@EnablementMin": 0, "@LowBreakpoint": 10, "@HighBreakpoint": 90, "@EnablementMax": 100, "@MaxAvail": 20, "@BandAvail1": 20}
                  ]
                }
              },
              {
                "@TraderID": "WIND1",
                "@UIGF": 40,
                "TradeCollection": {
                  "Trade": {"@TradeType": "R5RE", "@EnablementMin": 0, "@LowBreakpoint": 20, "@HighBreakpoint": 80, "@EnablementMax": 100, "@MaxAvail": 50, "@BandAvail1": 50}
                }
              },
              {
                "@TraderID": "LOAD1",
                "TradeCollection": {
                  "Trade": [
                    {"@TradeType": "LDOF", "@MaxAvail": 10, "@BandAvail1": 10},
                    {"@TradeType": "L5RE", "@EnablementMin": 20, "@LowBreakpoint": 30, "@HighBreakpoint": 70, "@EnablementMax": 80, "@MaxAvail": 40, "@BandAvail1": 40}
                  ]
                }
              }
            ]
          }
        }
      }
    },
    "NemSpdOutputs": {
      "TraderSolution": [
        {"@TraderID": "GEN1", "@Intervention": "0", "@R5RegTarget": 18.5, "@R6Target": 30},
        {"@TraderID": "WIND1", "@Intervention": "0", "@R5RegTarget": 0}
      ]
    }
  }
}`

func testRepository(t *testing.T) *casefile.Repository {
	t.Helper()
	doc, err := casefile.Decode([]byte(caseFixture))
	if err != nil {
		t.Fatalf("failed to decode fixture: %v", err)
	}
	return casefile.NewRepository(doc)
}
