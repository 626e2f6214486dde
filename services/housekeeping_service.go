package services

import (
	"fmt"

	"grandstay-backend/models"

	"gorm.io/gorm"
)

type HousekeepingService struct {
	DB *gorm.DB
}

func NewHousekeepingService(db *gorm.DB) *HousekeepingService {
	return &HousekeepingService{DB: db}
}

func (s *HousekeepingService) Create(task *models.HousekeepingTask) error {
	var room models.Room
	if err := s.DB.First(&room, task.RoomID).Error; err != nil {
		return err
	}
	if task.Status == "" {
		task.Status = models.TaskPending
	}
	if err := s.DB.Create(task).Error; err != nil {
		return fmt.Errorf("failed to create housekeeping task: %w", err)
	}
	return nil
}

func (s *HousekeepingService) List(status models.TaskStatus) ([]models.HousekeepingTask, error) {
	q := s.DB.Preload("Room").Preload("AssignedUser").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var tasks []models.HousekeepingTask
	if err := q.Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list housekeeping tasks: %w", err)
	}
	return tasks, nil
}

func (s *HousekeepingService) GetByID(id uint) (*models.HousekeepingTask, error) {
	var task models.HousekeepingTask
	if err := s.DB.Preload("Room").First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *HousekeepingService) Update(id uint, updates map[string]interface{}) (*models.HousekeepingTask, error) {
	var task models.HousekeepingTask
	if err := s.DB.First(&task, id).Error; err != nil {
		return nil, err
	}

	delete(updates, "id")
	delete(updates, "created_at")
	delete(updates, "room_id")

	if err := s.DB.Model(&task).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update housekeeping task: %w", err)
	}
	return s.GetByID(id)
}

// Complete finishes a task. If the room was waiting on cleaning, completion
// flips it back to available in the same transaction, so the room cannot
// read cleaned-but-still-blocked.
func (s *HousekeepingService) Complete(id uint) (*models.HousekeepingTask, error) {
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var task models.HousekeepingTask
		if err := forUpdate(tx).First(&task, id).Error; err != nil {
			return err
		}
		if task.Status == models.TaskCompleted {
			return nil
		}
		if err := tx.Model(&task).Update("status", models.TaskCompleted).Error; err != nil {
			return fmt.Errorf("failed to complete task: %w", err)
		}

		var room models.Room
		if err := forUpdate(tx).First(&room, task.RoomID).Error; err != nil {
			return err
		}
		if room.Status == models.RoomCleaning {
			if err := tx.Model(&room).Update("status", models.RoomAvailable).Error; err != nil {
				return fmt.Errorf("failed to release cleaned room: %w", err)
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.GetByID(id)
}
