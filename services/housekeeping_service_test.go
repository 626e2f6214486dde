package services

import (
	"testing"

	"grandstay-backend/models"
)

func TestCompleteTaskReleasesCleaningRoom(t *testing.T) {
	db := newTestDB(t)
	svc := NewHousekeepingService(db)

	deluxe := createRoomType(t, db, "Deluxe")
	room := createRoom(t, db, "201", deluxe.ID, models.RoomCleaning)

	task := &models.HousekeepingTask{RoomID: room.ID, Notes: "turnover"}
	if err := svc.Create(task); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.Status != models.TaskPending {
		t.Fatalf("expected default pending status, got %s", task.Status)
	}

	done, err := svc.Complete(task.ID)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if done.Status != models.TaskCompleted {
		t.Errorf("expected completed, got %s", done.Status)
	}

	var reloaded models.Room
	if err := db.First(&reloaded, room.ID).Error; err != nil {
		t.Fatalf("failed to reload room: %v", err)
	}
	if reloaded.Status != models.RoomAvailable {
		t.Errorf("expected cleaned room released to available, got %s", reloaded.Status)
	}
}

func TestCompleteTaskLeavesMaintenanceRoomAlone(t *testing.T) {
	db := newTestDB(t)
	svc := NewHousekeepingService(db)

	deluxe := createRoomType(t, db, "Deluxe")
	room := createRoom(t, db, "201", deluxe.ID, models.RoomMaintenance)

	task := &models.HousekeepingTask{RoomID: room.ID}
	if err := svc.Create(task); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Complete(task.ID); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	var reloaded models.Room
	if err := db.First(&reloaded, room.ID).Error; err != nil {
		t.Fatalf("failed to reload room: %v", err)
	}
	if reloaded.Status != models.RoomMaintenance {
		t.Errorf("completing a task must not clear maintenance, got %s", reloaded.Status)
	}
}

func TestCreateTaskRejectsUnknownRoom(t *testing.T) {
	db := newTestDB(t)
	svc := NewHousekeepingService(db)

	if err := svc.Create(&models.HousekeepingTask{RoomID: 999}); err == nil {
		t.Fatal("expected an error for an unknown room")
	}
}
