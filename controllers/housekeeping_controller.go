package controllers

import (
	"net/http"

	"grandstay-backend/models"
	"grandstay-backend/services"
	"grandstay-backend/utils"

	"github.com/gin-gonic/gin"
)

type HousekeepingController struct {
	Tasks *services.HousekeepingService
}

func NewHousekeepingController(tasks *services.HousekeepingService) *HousekeepingController {
	return &HousekeepingController{Tasks: tasks}
}

func (ctrl *HousekeepingController) GetTasks(c *gin.Context) {
	tasks, err := ctrl.Tasks.List(models.TaskStatus(c.Query("status")))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tasks)
}

func (ctrl *HousekeepingController) GetTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	task, err := ctrl.Tasks.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, task)
}

func (ctrl *HousekeepingController) CreateTask(c *gin.Context) {
	var task models.HousekeepingTask
	if err := c.ShouldBindJSON(&task); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := ctrl.Tasks.Create(&task); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, task)
}

func (ctrl *HousekeepingController) UpdateTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	task, err := ctrl.Tasks.Update(id, updates)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, task)
}

// CompleteTask finishes a task; a room that was in cleaning returns to
// available as part of the same commit.
func (ctrl *HousekeepingController) CompleteTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	task, err := ctrl.Tasks.Complete(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, task)
}
