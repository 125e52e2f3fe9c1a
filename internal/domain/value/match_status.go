package value

import "fmt"

// MatchStatus — состояние совпадения:
// pending → notified → viewed → {interested | rejected}.
// Переходы не ограничиваются, любой статус можно выставить повторно.
type MatchStatus string

const (
	MatchStatusPending    MatchStatus = "pending"
	MatchStatusNotified   MatchStatus = "notified"
	MatchStatusViewed     MatchStatus = "viewed"
	MatchStatusInterested MatchStatus = "interested"
	MatchStatusRejected   MatchStatus = "rejected"
)

func (s MatchStatus) String() string {
	return string(s)
}

func ParseMatchStatus(s string) (MatchStatus, error) {
	switch status := MatchStatus(s); status {
	case MatchStatusPending, MatchStatusNotified, MatchStatusViewed, MatchStatusInterested, MatchStatusRejected:
		return status, nil
	default:
		return "", fmt.Errorf("unknown match status %q", s)
	}
}

// TrackAction — действие покупателя со ссылкой из уведомления.
type TrackAction string

const (
	TrackActionView     TrackAction = "view"
	TrackActionInterest TrackAction = "interest"
	TrackActionReject   TrackAction = "reject"
)

// Status возвращает статус, в который переводит действие.
func (a TrackAction) Status() (MatchStatus, error) {
	switch a {
	case TrackActionView:
		return MatchStatusViewed, nil
	case TrackActionInterest:
		return MatchStatusInterested, nil
	case TrackActionReject:
		return MatchStatusRejected, nil
	default:
		return "", fmt.Errorf("unknown track action %q", string(a))
	}
}
