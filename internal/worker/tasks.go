package worker

import (
	"fmt"

	"github.com/hibiken/asynq"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	TypeMatchDeal = "match:deal"

	QueueMatching = "matching"
)

type MatchDealPayload struct {
	DealID int64 `json:"deal_id"`
}

func NewMatchDealTask(dealID int64) (*asynq.Task, error) {
	payload, err := json.Marshal(MatchDealPayload{DealID: dealID})
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return asynq.NewTask(TypeMatchDeal, payload), nil
}

// matchDealTaskID не даёт поставить в очередь второй подбор для той же сделки,
// пока первый ещё не выполнен.
func matchDealTaskID(dealID int64) string {
	return fmt.Sprintf("%s:%d", TypeMatchDeal, dealID)
}
