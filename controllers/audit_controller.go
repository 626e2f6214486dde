package controllers

import (
	"net/http"
	"strconv"
	"time"

	"grandstay-backend/services"
	"grandstay-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuditController struct {
	Audit *services.AuditService
}

func NewAuditController(audit *services.AuditService) *AuditController {
	return &AuditController{Audit: audit}
}

func (ctrl *AuditController) GetLogs(c *gin.Context) {
	filter := services.AuditFilter{
		EntityType: c.Query("entity_type"),
		Action:     c.Query("action"),
	}
	if raw := c.Query("entity_id"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.EntityID = uint(v)
		}
	}
	if raw := c.Query("from_date"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			filter.From = t
		}
	}
	if raw := c.Query("to_date"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			// inclusive end of day
			filter.To = t.AddDate(0, 0, 1)
		}
	}
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))

	logs, err := ctrl.Audit.List(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, logs)
}
