package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	departmentMock "go-hr-admin/internal/department/mock"
	"go-hr-admin/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func lifecycleMessage(t *testing.T, event events.EmployeeLifecycleEvent) kafkago.Message {
	raw, err := json.Marshal(event)
	require.NoError(t, err)
	return kafkago.Message{Topic: events.EmployeeLifecycleTopic, Key: []byte(event.EmployeeID), Value: raw}
}

func TestHandleLifecycleMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("recounts every department in the event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		counter := departmentMock.NewMockCounter(ctrl)

		first, second := uint(1), uint(2)
		counter.EXPECT().Recount(ctx, &first).Return(nil)
		counter.EXPECT().Recount(ctx, &second).Return(nil)

		event, err := HandleLifecycleMessage(ctx, counter, lifecycleMessage(t, events.EmployeeLifecycleEvent{
			EventType:     events.EmployeeTransferred,
			EmployeeID:    "EMP001",
			DepartmentIDs: []uint{1, 2},
			OccurredAt:    time.Now().UTC(),
		}))

		assert.NoError(t, err)
		assert.Equal(t, "EMP001", event.EmployeeID)
	})

	t.Run("recount failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		counter := departmentMock.NewMockCounter(ctrl)

		counter.EXPECT().Recount(ctx, gomock.Any()).Return(errors.New("db down"))

		_, err := HandleLifecycleMessage(ctx, counter, lifecycleMessage(t, events.EmployeeLifecycleEvent{
			EmployeeID:    "EMP001",
			DepartmentIDs: []uint{3},
		}))

		assert.Error(t, err)
		assert.NotErrorIs(t, err, errUndecodable)
	})

	t.Run("garbage payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		counter := departmentMock.NewMockCounter(ctrl)

		_, err := HandleLifecycleMessage(ctx, counter, kafkago.Message{Value: []byte("not-json")})

		assert.ErrorIs(t, err, errUndecodable)
	})
}

type scriptedReader struct {
	msgs      []kafkago.Message
	fetchErrs []error
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (r *scriptedReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.fetchErrs) > 0 {
		err := r.fetchErrs[0]
		r.fetchErrs = r.fetchErrs[1:]
		return kafkago.Message{}, err
	}
	if len(r.msgs) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *scriptedReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func fastRetries(t *testing.T) {
	prev := retryBackoff
	retryBackoff = time.Millisecond
	t.Cleanup(func() { retryBackoff = prev })
}

func TestConsumeEmployeeLifecycle(t *testing.T) {
	t.Run("transient recount failure is retried before commit", func(t *testing.T) {
		fastRetries(t)
		ctrl := gomock.NewController(t)
		counter := departmentMock.NewMockCounter(ctrl)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		msg := lifecycleMessage(t, events.EmployeeLifecycleEvent{EmployeeID: "EMP002", DepartmentIDs: []uint{2}})
		gomock.InOrder(
			counter.EXPECT().Recount(gomock.Any(), gomock.Any()).Return(errors.New("db down")),
			counter.EXPECT().Recount(gomock.Any(), gomock.Any()).Return(nil),
		)

		reader := &scriptedReader{msgs: []kafkago.Message{msg}, cancel: cancel}

		ConsumeEmployeeLifecycle(ctx, reader, counter, zap.NewNop())

		require.Len(t, reader.committed, 1)
		assert.Equal(t, msg.Value, reader.committed[0].Value)
	})

	t.Run("exhausted retries do not block later messages", func(t *testing.T) {
		fastRetries(t)
		ctrl := gomock.NewController(t)
		counter := departmentMock.NewMockCounter(ctrl)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		failing := lifecycleMessage(t, events.EmployeeLifecycleEvent{EmployeeID: "EMP002", DepartmentIDs: []uint{2}})
		ok := lifecycleMessage(t, events.EmployeeLifecycleEvent{EmployeeID: "EMP001", DepartmentIDs: []uint{1}})
		poison := kafkago.Message{Value: []byte("{")}

		attempts := map[uint]int{}
		counter.EXPECT().Recount(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id *uint) error {
			attempts[*id]++
			if *id == 2 {
				return errors.New("db down")
			}
			return nil
		}).Times(maxReconcileAttempts + 1)

		reader := &scriptedReader{msgs: []kafkago.Message{failing, ok, poison}, cancel: cancel}

		ConsumeEmployeeLifecycle(ctx, reader, counter, zap.NewNop())

		assert.Equal(t, maxReconcileAttempts, attempts[2])
		assert.Equal(t, 1, attempts[1])
		require.Len(t, reader.committed, 3)
		assert.Equal(t, failing.Value, reader.committed[0].Value)
		assert.Equal(t, ok.Value, reader.committed[1].Value)
		assert.Equal(t, poison.Value, reader.committed[2].Value)
	})

	t.Run("fetch errors back off and recover", func(t *testing.T) {
		fastRetries(t)
		ctrl := gomock.NewController(t)
		counter := departmentMock.NewMockCounter(ctrl)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		msg := lifecycleMessage(t, events.EmployeeLifecycleEvent{EmployeeID: "EMP001", DepartmentIDs: []uint{1}})
		counter.EXPECT().Recount(gomock.Any(), gomock.Any()).Return(nil)

		reader := &scriptedReader{
			msgs:      []kafkago.Message{msg},
			fetchErrs: []error{errors.New("broker unavailable"), errors.New("broker unavailable")},
			cancel:    cancel,
		}

		start := time.Now()
		ConsumeEmployeeLifecycle(ctx, reader, counter, zap.NewNop())

		// 1ms then 2ms of backoff before the message arrives
		assert.GreaterOrEqual(t, time.Since(start), 3*time.Millisecond)
		require.Len(t, reader.committed, 1)
	})

	t.Run("cancellation during backoff stops without commit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		counter := departmentMock.NewMockCounter(ctrl)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		msg := lifecycleMessage(t, events.EmployeeLifecycleEvent{EmployeeID: "EMP002", DepartmentIDs: []uint{2}})
		counter.EXPECT().Recount(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, *uint) error {
			cancel()
			return errors.New("db down")
		})

		reader := &scriptedReader{msgs: []kafkago.Message{msg}, cancel: cancel}

		ConsumeEmployeeLifecycle(ctx, reader, counter, zap.NewNop())

		assert.Empty(t, reader.committed)
	})
}

func TestBackoff(t *testing.T) {
	fastRetries(t)

	assert.Equal(t, time.Millisecond, backoff(0))
	assert.Equal(t, 4*time.Millisecond, backoff(2))
	assert.Equal(t, 32*time.Millisecond, backoff(10))
}
