package value

import (
	"fmt"
	"strings"
)

type SubscriptionTier string

const (
	SubscriptionFree       SubscriptionTier = "free"
	SubscriptionBasic      SubscriptionTier = "basic"
	SubscriptionPremium    SubscriptionTier = "premium"
	SubscriptionEnterprise SubscriptionTier = "enterprise"
)

func (t SubscriptionTier) String() string {
	return string(t)
}

// ParseSubscriptionTier; пустая строка даёт free.
func ParseSubscriptionTier(s string) (SubscriptionTier, error) {
	switch tier := SubscriptionTier(strings.ToLower(strings.TrimSpace(s))); tier {
	case "":
		return SubscriptionFree, nil
	case SubscriptionFree, SubscriptionBasic, SubscriptionPremium, SubscriptionEnterprise:
		return tier, nil
	default:
		return "", fmt.Errorf("unknown subscription tier %q", s)
	}
}
