package models

// SafetyAdvice maps a risk level to its seeded advisory text.
type SafetyAdvice struct {
	RiskLevel          string `json:"risk_level"`
	RecommendationType string `json:"recommendation_type"`
	DetailAdvice       string `json:"detail_advice"`
}
