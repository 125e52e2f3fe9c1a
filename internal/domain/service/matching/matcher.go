package matching

import (
	"strings"

	"dealflow/internal/domain/entity"
)

const (
	FactorCategoryMatch = "Category match"
	FactorBudgetInRange = "Perfect budget match"
	FactorBudgetBelow   = "Below budget"
	FactorBudgetNear    = "Slightly above budget"
	FactorLocationMatch = "Location match"
)

// Explanation — оценка совпадения и сработавшие признаки.
type Explanation struct {
	Score   int      `json:"match_score"`
	Factors []string `json:"factors"`
}

type Matcher struct {
	cfg Config
}

func NewMatcher(cfg Config) *Matcher {
	return &Matcher{cfg: cfg}
}

func (m *Matcher) Config() Config {
	return m.cfg
}

// Score — оценка совпадения сделки и покупателя в диапазоне 0-100.
func (m *Matcher) Score(deal entity.Deal, buyer entity.Buyer) int {
	return m.Explain(deal, buyer).Score
}

// Explain считает оценку и собирает признаки, давшие полный балл.
// Нейтральные значения ("нет предпочтений") признаков не дают.
func (m *Matcher) Explain(deal entity.Deal, buyer entity.Buyer) Explanation {
	score := 0
	factors := make([]string, 0, 4)

	if len(buyer.Categories) == 0 {
		score += m.cfg.CategoryAny
	} else {
		for _, c := range buyer.Categories {
			if c == deal.Category {
				score += m.cfg.CategoryMatch
				factors = append(factors, FactorCategoryMatch)
				break
			}
		}
	}

	switch {
	case !buyer.HasBudget():
		score += m.cfg.BudgetAny
	case deal.Price.GreaterThanOrEqual(*buyer.BudgetMin) && deal.Price.LessThanOrEqual(*buyer.BudgetMax):
		score += m.cfg.BudgetInRange
		factors = append(factors, FactorBudgetInRange)
	case deal.Price.LessThan(*buyer.BudgetMin):
		score += m.cfg.BudgetBelow
		factors = append(factors, FactorBudgetBelow)
	case deal.Price.LessThanOrEqual(buyer.BudgetMax.Mul(m.cfg.NearMissFactor)):
		score += m.cfg.BudgetNear
		factors = append(factors, FactorBudgetNear)
	}

	locations := normalizeLocations(buyer.Locations)
	dealLocation := strings.ToLower(strings.TrimSpace(deal.Location))
	if len(locations) == 0 || dealLocation == "" {
		score += m.cfg.LocationAny
	} else if locationMatches(dealLocation, locations) {
		score += m.cfg.LocationMatch
		factors = append(factors, FactorLocationMatch)
	}

	for _, tier := range m.cfg.QualityTiers {
		if deal.AIScore >= tier.MinScore {
			score += tier.Points
			factors = append(factors, tier.Label)
			break
		}
	}

	return Explanation{
		Score:   min(score, m.cfg.MaxScore),
		Factors: factors,
	}
}

// Qualifies сообщает, проходит ли оценка порог отбора.
func (m *Matcher) Qualifies(score int) bool {
	return score >= m.cfg.Threshold
}

func normalizeLocations(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, loc := range raw {
		loc = strings.ToLower(strings.TrimSpace(loc))
		if loc != "" {
			out = append(out, loc)
		}
	}
	return out
}

func locationMatches(deal string, buyer []string) bool {
	for _, loc := range buyer {
		if strings.Contains(deal, loc) || strings.Contains(loc, deal) {
			return true
		}
	}
	return false
}
