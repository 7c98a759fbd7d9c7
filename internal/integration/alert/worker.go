// Package alert delivers low-stock notifications queued by the sale operation.
package alert

import (
	"context"
	"log/slog"
	"time"

	"github.com/gestao/backend/internal/application/adapter"
)

// Worker polls the alert queue and delivers pending low-stock notifications.
type Worker struct {
	queue        adapter.AlertQueue
	sender       adapter.AlertSender
	pollInterval time.Duration
	batchSize    int
	maxAttempts  int
}

// WorkerConfig holds configuration for the alert worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 30 * time.Second,
		BatchSize:    10,
		MaxAttempts:  3,
	}
}

// NewWorker creates a new alert worker.
func NewWorker(queue adapter.AlertQueue, sender adapter.AlertSender, config WorkerConfig) *Worker {
	return &Worker{
		queue:        queue,
		sender:       sender,
		pollInterval: config.PollInterval,
		batchSize:    config.BatchSize,
		maxAttempts:  config.MaxAttempts,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Low-stock alert worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Process immediately on start, then on ticker
	w.processBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Low-stock alert worker shutting down")
			return
		case <-ticker.C:
			w.processBatch(ctx)
		}
	}
}

// processBatch fetches and delivers a batch of pending alerts.
func (w *Worker) processBatch(ctx context.Context) {
	jobs, err := w.queue.FetchPending(ctx, w.batchSize)
	if err != nil {
		slog.Error("Failed to fetch pending alerts", "error", err)
		return
	}

	for _, job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
			w.processJob(ctx, job)
		}
	}
}

// processJob delivers a single alert.
func (w *Worker) processJob(ctx context.Context, job *adapter.AlertJob) {
	logger := slog.With(
		"job_id", job.ID,
		"product", job.ProductName,
	)

	if err := w.sender.Send(ctx, job); err != nil {
		logger.Warn("Failed to deliver low-stock alert", "error", err)
		if err := w.queue.MarkFailed(ctx, job.ID, w.maxAttempts); err != nil {
			logger.Error("Failed to record alert failure", "error", err)
		}
		return
	}

	if err := w.queue.MarkSent(ctx, job.ID); err != nil {
		logger.Error("Failed to mark alert as sent", "error", err)
		return
	}

	logger.Info("Low-stock alert delivered",
		"quantity", job.Quantity,
		"min_stock", job.MinStock,
	)
}
