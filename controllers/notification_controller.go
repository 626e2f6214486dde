package controllers

import (
	"net/http"
	"strconv"

	"grandstay-backend/models"
	"grandstay-backend/services"
	"grandstay-backend/utils"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	Notifications *services.NotificationService
}

func NewNotificationController(notifications *services.NotificationService) *NotificationController {
	return &NotificationController{Notifications: notifications}
}

func (ctrl *NotificationController) GetNotifications(c *gin.Context) {
	unreadOnly := c.Query("unread_only") == "true"
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, err := ctrl.Notifications.List(actorID(c), unreadOnly, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

func (ctrl *NotificationController) CreateNotification(c *gin.Context) {
	var n models.Notification
	if err := c.ShouldBindJSON(&n); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := ctrl.Notifications.Create(&n); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, n)
}

func (ctrl *NotificationController) MarkRead(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	n, err := ctrl.Notifications.MarkRead(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, n)
}

func (ctrl *NotificationController) MarkAllRead(c *gin.Context) {
	if err := ctrl.Notifications.MarkAllRead(actorID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "all notifications marked read")
}
