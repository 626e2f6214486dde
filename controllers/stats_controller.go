package controllers

import (
	"net/http"
	"strconv"
	"time"

	"grandstay-backend/services"
	"grandstay-backend/utils"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	Stats *services.StatsService
}

func NewStatsController(stats *services.StatsService) *StatsController {
	return &StatsController{Stats: stats}
}

func (ctrl *StatsController) GetDashboard(c *gin.Context) {
	stats, err := ctrl.Stats.Dashboard(time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}

func (ctrl *StatsController) GetGuestsPerDay(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	series, err := ctrl.Stats.GuestsPerDaySeries(time.Now(), days)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, series)
}
