// Package alert delivers low-stock notifications queued by the sale operation.
package alert

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gestao/backend/internal/application/adapter"
)

type fakeQueue struct {
	jobs   []*adapter.AlertJob
	sent   []uuid.UUID
	failed []uuid.UUID
}

func (q *fakeQueue) Enqueue(_ context.Context, job *adapter.AlertJob) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *fakeQueue) FetchPending(_ context.Context, limit int) ([]*adapter.AlertJob, error) {
	if len(q.jobs) > limit {
		return q.jobs[:limit], nil
	}
	return q.jobs, nil
}

func (q *fakeQueue) MarkSent(_ context.Context, id uuid.UUID) error {
	q.sent = append(q.sent, id)
	return nil
}

func (q *fakeQueue) MarkFailed(_ context.Context, id uuid.UUID, _ int) error {
	q.failed = append(q.failed, id)
	return nil
}

type fakeSender struct {
	err   error
	calls int
}

func (s *fakeSender) Send(_ context.Context, _ *adapter.AlertJob) error {
	s.calls++
	return s.err
}

func pendingJob(name string) *adapter.AlertJob {
	return &adapter.AlertJob{
		ID:          uuid.New(),
		ProductID:   uuid.New(),
		ProductName: name,
		Quantity:    1,
		MinStock:    3,
		Status:      adapter.AlertJobPending,
		CreatedAt:   time.Now(),
	}
}

func TestWorker_ProcessBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("delivered jobs are marked sent", func(t *testing.T) {
		queue := &fakeQueue{jobs: []*adapter.AlertJob{pendingJob("Mouse"), pendingJob("Teclado")}}
		sender := &fakeSender{}
		worker := NewWorker(queue, sender, DefaultWorkerConfig())

		worker.processBatch(ctx)

		if sender.calls != 2 {
			t.Errorf("expected 2 deliveries, got %d", sender.calls)
		}
		if len(queue.sent) != 2 {
			t.Errorf("expected 2 jobs marked sent, got %d", len(queue.sent))
		}
		if len(queue.failed) != 0 {
			t.Errorf("expected no failures, got %d", len(queue.failed))
		}
	})

	t.Run("delivery failures are recorded, not fatal", func(t *testing.T) {
		queue := &fakeQueue{jobs: []*adapter.AlertJob{pendingJob("Mouse")}}
		sender := &fakeSender{err: errors.New("smtp down")}
		worker := NewWorker(queue, sender, DefaultWorkerConfig())

		worker.processBatch(ctx)

		if len(queue.sent) != 0 {
			t.Errorf("expected no jobs marked sent, got %d", len(queue.sent))
		}
		if len(queue.failed) != 1 {
			t.Errorf("expected 1 job marked failed, got %d", len(queue.failed))
		}
	})

	t.Run("batch size caps one pass", func(t *testing.T) {
		queue := &fakeQueue{}
		for i := 0; i < 5; i++ {
			queue.jobs = append(queue.jobs, pendingJob("Produto"))
		}
		sender := &fakeSender{}
		worker := NewWorker(queue, sender, WorkerConfig{
			PollInterval: time.Second,
			BatchSize:    3,
			MaxAttempts:  3,
		})

		worker.processBatch(ctx)

		if sender.calls != 3 {
			t.Errorf("expected 3 deliveries in one batch, got %d", sender.calls)
		}
	})

	t.Run("a cancelled context stops the batch", func(t *testing.T) {
		queue := &fakeQueue{jobs: []*adapter.AlertJob{pendingJob("Mouse")}}
		sender := &fakeSender{}
		worker := NewWorker(queue, sender, DefaultWorkerConfig())

		cancelled, cancel := context.WithCancel(context.Background())
		cancel()
		worker.processBatch(cancelled)

		if sender.calls != 0 {
			t.Errorf("expected no deliveries after cancellation, got %d", sender.calls)
		}
	})
}
