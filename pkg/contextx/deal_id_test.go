package contextx_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"dealflow/pkg/contextx"
)

func TestDealID(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	dealID, err := contextx.DealIDFromContext(ctx)
	rq.Zero(dealID)
	rq.ErrorIs(err, contextx.ErrNoValue)
	rq.ErrorContains(err, "deal id: no value in context")

	ctx = contextx.WithDealID(ctx, contextx.DealID(42))

	dealID, err = contextx.DealIDFromContext(ctx)
	rq.Equal(contextx.DealID(42), dealID)
	rq.Equal("42", dealID.String())
	rq.NoError(err)
}
