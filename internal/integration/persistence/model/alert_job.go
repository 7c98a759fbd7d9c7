// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestao/backend/internal/application/adapter"
)

// AlertJobModel represents the low_stock_alerts table in the database.
type AlertJobModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProductID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductName string     `gorm:"type:varchar(100);not null"`
	Quantity    int        `gorm:"not null"`
	MinStock    int        `gorm:"not null"`
	Status      string     `gorm:"type:varchar(10);not null;index"`
	Attempts    int        `gorm:"not null;default:0"`
	CreatedAt   time.Time  `gorm:"not null;index"`
	SentAt      *time.Time `gorm:"type:timestamp"`
}

// TableName returns the table name for the AlertJobModel.
func (AlertJobModel) TableName() string {
	return "low_stock_alerts"
}

// ToJob converts an AlertJobModel to an adapter AlertJob.
func (m *AlertJobModel) ToJob() *adapter.AlertJob {
	return &adapter.AlertJob{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		MinStock:    m.MinStock,
		Status:      adapter.AlertJobStatus(m.Status),
		Attempts:    m.Attempts,
		CreatedAt:   m.CreatedAt,
		SentAt:      m.SentAt,
	}
}

// AlertJobFromJob creates an AlertJobModel from an adapter AlertJob.
func AlertJobFromJob(job *adapter.AlertJob) *AlertJobModel {
	return &AlertJobModel{
		ID:          job.ID,
		ProductID:   job.ProductID,
		ProductName: job.ProductName,
		Quantity:    job.Quantity,
		MinStock:    job.MinStock,
		Status:      string(job.Status),
		Attempts:    job.Attempts,
		CreatedAt:   job.CreatedAt,
		SentAt:      job.SentAt,
	}
}
