package types

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskAssessment is computed fresh per query and never stored.
type RiskAssessment struct {
	OverallRisk     float64            `json:"overallRisk"`
	RiskLevel       RiskLevel          `json:"riskLevel"`
	Factors         map[string]float64 `json:"factors"`
	Recommendations []string           `json:"recommendations"`
}
