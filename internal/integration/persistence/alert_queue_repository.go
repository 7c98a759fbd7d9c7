// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gestao/backend/internal/application/adapter"
	"github.com/gestao/backend/internal/integration/persistence/model"
)

// alertQueueRepository implements the adapter.AlertQueue interface on top of
// the low_stock_alerts table.
type alertQueueRepository struct {
	db *gorm.DB
}

// NewAlertQueueRepository creates a new alert queue repository instance.
func NewAlertQueueRepository(db *gorm.DB) adapter.AlertQueue {
	return &alertQueueRepository{
		db: db,
	}
}

// Enqueue appends a pending alert job.
func (r *alertQueueRepository) Enqueue(ctx context.Context, job *adapter.AlertJob) error {
	jobModel := model.AlertJobFromJob(job)
	result := r.db.WithContext(ctx).Create(jobModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FetchPending retrieves up to limit pending jobs, oldest first.
func (r *alertQueueRepository) FetchPending(ctx context.Context, limit int) ([]*adapter.AlertJob, error) {
	var jobModels []model.AlertJobModel
	result := r.db.WithContext(ctx).
		Where("status = ?", string(adapter.AlertJobPending)).
		Order("created_at ASC").
		Limit(limit).
		Find(&jobModels)
	if result.Error != nil {
		return nil, result.Error
	}

	jobs := make([]*adapter.AlertJob, len(jobModels))
	for i, jm := range jobModels {
		jobs[i] = jm.ToJob()
	}
	return jobs, nil
}

// MarkSent marks a job as delivered.
func (r *alertQueueRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&model.AlertJobModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":  string(adapter.AlertJobSent),
			"sent_at": &now,
		})
	return result.Error
}

// MarkFailed records a failed attempt; the job moves to the failed status
// once attempts reach maxAttempts.
func (r *alertQueueRepository) MarkFailed(ctx context.Context, id uuid.UUID, maxAttempts int) error {
	var jobModel model.AlertJobModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&jobModel).Error; err != nil {
		return err
	}

	jobModel.Attempts++
	if jobModel.Attempts >= maxAttempts {
		jobModel.Status = string(adapter.AlertJobFailed)
	}

	return r.db.WithContext(ctx).Save(&jobModel).Error
}
