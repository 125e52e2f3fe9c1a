package contextx

import (
	"context"
	"fmt"
	"strconv"
)

type DealID int64

type contextKeyDealID struct{}

func (d DealID) String() string {
	return strconv.FormatInt(int64(d), 10)
}

func WithDealID(ctx context.Context, dealID DealID) context.Context {
	return context.WithValue(ctx, contextKeyDealID{}, dealID)
}

func DealIDFromContext(ctx context.Context) (DealID, error) {
	dealID, ok := ctx.Value(contextKeyDealID{}).(DealID)
	if !ok {
		return 0, fmt.Errorf("deal id: %w", ErrNoValue)
	}

	return dealID, nil
}
