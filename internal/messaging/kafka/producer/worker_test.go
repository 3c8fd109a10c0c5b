package producer

import (
	"context"
	"errors"
	"testing"

	"go-hr-admin/internal/messaging/kafka"
	kafkaMock "go-hr-admin/internal/messaging/kafka/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	failFor map[string]error
	written []kafkago.Message
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if err := w.failFor[string(m.Key)]; err != nil {
			return err
		}
		w.written = append(w.written, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("sends and marks each event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{}

		repo.EXPECT().ListPending(ctx, batchSize).Return([]kafka.OutboxEvent{
			{ID: "o-1", RequestID: "req-1", AggregateType: "employee", AggregateID: "EMP001", EventType: "employee_onboarded", Topic: "hr.employee.lifecycle.v1", Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkSent(ctx, "o-1").Return(nil)

		require.NoError(t, processPendingEvents(ctx, repo, writer, logger))

		require.Len(t, writer.written, 1)
		msg := writer.written[0]
		assert.Equal(t, "EMP001", string(msg.Key))
		assert.Equal(t, "hr.employee.lifecycle.v1", msg.Topic)
		assert.Contains(t, msg.Headers, kafkago.Header{Key: "request_id", Value: []byte("req-1")})
	})

	t.Run("failed publish is marked and the batch continues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{failFor: map[string]error{"EMP001": errors.New("broker down")}}

		repo.EXPECT().ListPending(ctx, batchSize).Return([]kafka.OutboxEvent{
			{ID: "o-1", AggregateID: "EMP001", Topic: "t", Payload: []byte(`{}`)},
			{ID: "o-2", AggregateID: "EMP002", Topic: "t", Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkFailed(ctx, "o-1", "broker down").Return(nil)
		repo.EXPECT().MarkSent(ctx, "o-2").Return(nil)

		require.NoError(t, processPendingEvents(ctx, repo, writer, logger))
		assert.Len(t, writer.written, 1)
	})

	t.Run("list failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)

		repo.EXPECT().ListPending(ctx, batchSize).Return(nil, errors.New("db down"))

		assert.Error(t, processPendingEvents(ctx, repo, &fakeWriter{}, logger))
	})
}
