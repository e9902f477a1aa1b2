package models

// Risk levels derived from the weighted risk index.
const (
	RiskLevelDanger    = "danger"
	RiskLevelCaution   = "caution"
	RiskLevelAttention = "attention"
)

// Weights applied to the accident counts when computing the risk index.
const (
	deathWeight    = 10
	accidentWeight = 5
	casualtyWeight = 1
)

// Classification thresholds on the risk index.
const (
	dangerThreshold  = 500
	cautionThreshold = 300
)

// Hotspot is an accident-prone location loaded once from the reference
// dataset. Rows are never mutated through the API.
type Hotspot struct {
	HotspotID     int64   `json:"hotspot_id"`
	GuName        string  `json:"gu_name"`
	LocationName  string  `json:"location_name"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	AccidentCount int     `json:"accident_count"`
	CasualtyCount int     `json:"casualty_count"`
	DeathCount    int     `json:"death_count"`
}

// RiskAssessment is a hotspot annotated with its derived risk data. It is
// recomputed on every query and never persisted.
type RiskAssessment struct {
	Hotspot
	TotalRiskIndex int    `json:"total_risk_index"`
	RiskLevel      string `json:"calculated_risk_level"`
	SafetyAdvice   string `json:"safety_advice"`
}

// RiskIndex computes the weighted risk index for a hotspot.
func RiskIndex(h *Hotspot) int {
	return h.DeathCount*deathWeight + h.AccidentCount*accidentWeight + h.CasualtyCount*casualtyWeight
}

// RiskLevelFor classifies a risk index into a risk level.
func RiskLevelFor(index int) string {
	switch {
	case index >= dangerThreshold:
		return RiskLevelDanger
	case index >= cautionThreshold:
		return RiskLevelCaution
	default:
		return RiskLevelAttention
	}
}
