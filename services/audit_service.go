package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"grandstay-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuditService struct {
	DB *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{DB: db}
}

// Record appends an audit entry on tx so it commits or rolls back with the
// mutation it describes. A nil tx records outside any transaction.
func (s *AuditService) Record(tx *gorm.DB, userID uint, action, entityType string, entityID uint, details map[string]interface{}) error {
	if tx == nil {
		tx = s.DB
	}

	var payload datatypes.JSON
	if len(details) > 0 {
		raw, err := json.Marshal(details)
		if err != nil {
			log.Printf("warning: failed to marshal audit details for %s %s/%d: %v", action, entityType, entityID, err)
		} else {
			payload = datatypes.JSON(raw)
		}
	}

	entry := models.AuditLog{
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    payload,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}

type AuditFilter struct {
	EntityType string
	EntityID   uint
	Action     string
	From       time.Time
	To         time.Time
	Limit      int
}

func (s *AuditService) List(filter AuditFilter) ([]models.AuditLog, error) {
	q := s.DB.Preload("User").Order("created_at DESC")

	if filter.EntityType != "" {
		q = q.Where("entity_type = ?", filter.EntityType)
	}
	if filter.EntityID != 0 {
		q = q.Where("entity_id = ?", filter.EntityID)
	}
	if filter.Action != "" {
		q = q.Where("action = ?", filter.Action)
	}
	if !filter.From.IsZero() {
		q = q.Where("created_at >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		q = q.Where("created_at <= ?", filter.To)
	}

	limit := filter.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var logs []models.AuditLog
	if err := q.Limit(limit).Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return logs, nil
}
