package controllers

import (
	"net/http"

	"grandstay-backend/models"
	"grandstay-backend/services"
	"grandstay-backend/utils"

	"github.com/gin-gonic/gin"
)

type GuestController struct {
	Guests *services.GuestService
}

func NewGuestController(guests *services.GuestService) *GuestController {
	return &GuestController{Guests: guests}
}

func (ctrl *GuestController) GetGuests(c *gin.Context) {
	guests, err := ctrl.Guests.List(c.Query("search"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guests)
}

func (ctrl *GuestController) GetGuest(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	guest, err := ctrl.Guests.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

func (ctrl *GuestController) CreateGuest(c *gin.Context) {
	var guest models.Guest
	if err := c.ShouldBindJSON(&guest); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := ctrl.Guests.Create(&guest); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, guest)
}

func (ctrl *GuestController) UpdateGuest(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	guest, err := ctrl.Guests.Update(id, updates)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

func (ctrl *GuestController) DeleteGuest(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.Guests.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "guest deleted")
}
