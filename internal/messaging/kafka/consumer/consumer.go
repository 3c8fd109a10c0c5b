package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-hr-admin/internal/department"
	"go-hr-admin/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

const maxReconcileAttempts = 3

// retryBackoff is the first wait between attempts; it doubles per retry.
var retryBackoff = 500 * time.Millisecond

var errUndecodable = errors.New("undecodable employee lifecycle event")

// ConsumeEmployeeLifecycle recounts every department touched by a lifecycle
// event. Recount is idempotent, so redelivery only rewrites the same value.
//
// A group reader commits offsets in order, so a failed message cannot be
// skipped and redelivered later. Reconciliation is retried inline with
// backoff; after the last attempt the message is committed anyway and the
// drift is left to the next event or the department read path.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	counter department.Counter,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	fetchFailures := 0
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			if !sleep(ctx, backoff(fetchFailures)) {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			fetchFailures++
			continue
		}
		fetchFailures = 0

		event, err := reconcile(ctx, counter, msg, log)
		switch {
		case ctx.Err() != nil:
			log.Info("employee lifecycle consumer stopped", zap.Int64("offset", msg.Offset))
			return
		case errors.Is(err, errUndecodable):
			log.Error("decode employee lifecycle event failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		case err != nil:
			log.Error("reconcile department counts gave up",
				zap.String("employee_id", event.EmployeeID),
				zap.String("request_id", event.RequestID),
				zap.Int("attempts", maxReconcileAttempts),
				zap.Error(err),
			)
		default:
			log.Info("department counts reconciled",
				zap.String("event_type", event.EventType),
				zap.String("employee_id", event.EmployeeID),
				zap.String("request_id", event.RequestID),
				zap.Int("departments", len(event.DepartmentIDs)),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
		}
	}
}

func reconcile(ctx context.Context, counter department.Counter, msg kafkago.Message, log *zap.Logger) (events.EmployeeLifecycleEvent, error) {
	var (
		event events.EmployeeLifecycleEvent
		err   error
	)
	for attempt := 0; attempt < maxReconcileAttempts; attempt++ {
		if attempt > 0 {
			log.Warn("retrying department reconciliation",
				zap.String("employee_id", event.EmployeeID),
				zap.Int("attempt", attempt+1),
				zap.Error(err),
			)
			if !sleep(ctx, backoff(attempt-1)) {
				return event, ctx.Err()
			}
		}
		event, err = HandleLifecycleMessage(ctx, counter, msg)
		if err == nil || errors.Is(err, errUndecodable) {
			return event, err
		}
	}
	return event, err
}

func backoff(failures int) time.Duration {
	if failures > 5 {
		failures = 5
	}
	return retryBackoff << failures
}

// sleep waits for d and reports false when ctx ends first.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// HandleLifecycleMessage decodes msg and recounts its departments, stopping
// at the first failure.
func HandleLifecycleMessage(ctx context.Context, counter department.Counter, msg kafkago.Message) (events.EmployeeLifecycleEvent, error) {
	var event events.EmployeeLifecycleEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return event, fmt.Errorf("%w: %v", errUndecodable, err)
	}

	for _, id := range event.DepartmentIDs {
		deptID := id
		if err := counter.Recount(ctx, &deptID); err != nil {
			return event, err
		}
	}
	return event, nil
}
