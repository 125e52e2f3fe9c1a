package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dealflow/internal/domain/value"
)

func TestParseMatchStatus(t *testing.T) {
	rq := require.New(t)

	for _, s := range []string{"pending", "notified", "viewed", "interested", "rejected"} {
		status, err := value.ParseMatchStatus(s)
		rq.NoError(err)
		rq.Equal(s, status.String())
	}

	_, err := value.ParseMatchStatus("archived")
	rq.Error(err)
}

func TestTrackActionStatus(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		action value.TrackAction
		status value.MatchStatus
	}{
		{action: value.TrackActionView, status: value.MatchStatusViewed},
		{action: value.TrackActionInterest, status: value.MatchStatusInterested},
		{action: value.TrackActionReject, status: value.MatchStatusRejected},
	}

	for _, tc := range testCases {
		status, err := tc.action.Status()
		rq.NoError(err)
		rq.Equal(tc.status, status)
	}

	_, err := value.TrackAction("click").Status()
	rq.Error(err)
}

func TestParseCategoryAndSource(t *testing.T) {
	rq := require.New(t)

	rq.Equal(value.CategoryRealEstate, value.ParseCategory("  Real-Estate "))
	rq.Equal(value.SourceFSBO, value.ParseSource("FSBO"))
}
