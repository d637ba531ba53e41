package reconcile

import "github.com/agentstation/docverify/pkg/constants"

// Risk score weights. The score is a bounded heuristic, not a calibrated
// probability; keep the weights as they are for compatibility.
const (
	MismatchWeight = 8
	TaxFailWeight  = 15
)

// RiskScore returns min(100, mismatches*8 + (taxOK ? 0 : 15)).
func RiskScore(mismatches int, taxOK bool) int {
	if mismatches < 0 {
		mismatches = 0
	}
	score := mismatches * MismatchWeight
	if !taxOK {
		score += TaxFailWeight
	}
	return min(constants.MaxRiskScore, score)
}
