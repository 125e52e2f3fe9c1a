package entity

import "github.com/shopspring/decimal"

// ScoreResult — результат оценки сделки (0-100) с объяснением.
type ScoreResult struct {
	Score           int              `json:"score"`
	Factors         []string         `json:"factors"`
	Discount        *float64         `json:"discount,omitempty"`
	Profit          *decimal.Decimal `json:"profit,omitempty"`
	UrgencyKeywords []string         `json:"urgency_keywords"`
	// Err заполнен, если оценка упала и вернулся запасной результат.
	Err string `json:"error,omitempty"`
}

// Failed сообщает, что вернулся запасной результат.
func (r ScoreResult) Failed() bool {
	return r.Err != ""
}
