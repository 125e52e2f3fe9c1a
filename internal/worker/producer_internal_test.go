package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"
)

type fakeEnqueuer struct {
	tasks []*asynq.Task
	opts  [][]asynq.Option
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	f.tasks = append(f.tasks, task)
	f.opts = append(f.opts, opts)
	if f.err != nil {
		return nil, f.err
	}
	return &asynq.TaskInfo{ID: matchDealTaskID(1), Queue: QueueMatching}, nil
}

func TestProducer_DispatchMatch(t *testing.T) {
	rq := require.New(t)
	q := &fakeEnqueuer{}

	p := newProducer(q).WithMaxRetry(5)
	rq.NoError(p.DispatchMatch(context.Background(), 1))

	rq.Len(q.tasks, 1)
	rq.Equal(TypeMatchDeal, q.tasks[0].Type())
	rq.JSONEq(`{"deal_id":1}`, string(q.tasks[0].Payload()))

	var (
		queue    string
		taskID   string
		maxRetry int
	)
	for _, opt := range q.opts[0] {
		switch opt.Type() {
		case asynq.QueueOpt:
			queue = opt.Value().(string)
		case asynq.TaskIDOpt:
			taskID = opt.Value().(string)
		case asynq.MaxRetryOpt:
			maxRetry = opt.Value().(int)
		}
	}
	rq.Equal(QueueMatching, queue)
	rq.Equal("match:deal:1", taskID)
	rq.Equal(5, maxRetry)
}

func TestProducer_AlreadyQueued(t *testing.T) {
	rq := require.New(t)

	p := newProducer(&fakeEnqueuer{err: asynq.ErrTaskIDConflict})
	rq.NoError(p.DispatchMatch(context.Background(), 1))

	p = newProducer(&fakeEnqueuer{err: errors.New("redis down")})
	rq.Error(p.DispatchMatch(context.Background(), 1))
}
