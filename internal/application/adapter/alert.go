// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AlertJobStatus represents the delivery state of a low-stock alert job.
type AlertJobStatus string

const (
	AlertJobPending AlertJobStatus = "pending"
	AlertJobSent    AlertJobStatus = "sent"
	AlertJobFailed  AlertJobStatus = "failed"
)

// AlertJob is a queued low-stock notification for one product.
type AlertJob struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	MinStock    int
	Status      AlertJobStatus
	Attempts    int
	CreatedAt   time.Time
	SentAt      *time.Time
}

// AlertQueue defines the interface for the low-stock alert job queue.
type AlertQueue interface {
	// Enqueue appends a pending alert job.
	Enqueue(ctx context.Context, job *AlertJob) error

	// FetchPending retrieves up to limit pending jobs, oldest first.
	FetchPending(ctx context.Context, limit int) ([]*AlertJob, error)

	// MarkSent marks a job as delivered.
	MarkSent(ctx context.Context, id uuid.UUID) error

	// MarkFailed records a failed delivery attempt; jobs that exhausted their
	// attempts move to the failed status.
	MarkFailed(ctx context.Context, id uuid.UUID, maxAttempts int) error
}

// AlertSender delivers a low-stock alert to the configured recipient.
type AlertSender interface {
	Send(ctx context.Context, job *AlertJob) error
}
