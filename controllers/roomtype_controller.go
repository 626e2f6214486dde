package controllers

import (
	"net/http"

	"grandstay-backend/models"
	"grandstay-backend/services"
	"grandstay-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomTypeController struct {
	RoomTypes *services.RoomTypeService
}

func NewRoomTypeController(roomTypes *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{RoomTypes: roomTypes}
}

func (ctrl *RoomTypeController) GetRoomTypes(c *gin.Context) {
	types, err := ctrl.RoomTypes.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}

func (ctrl *RoomTypeController) GetRoomType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	rt, err := ctrl.RoomTypes.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rt)
}

func (ctrl *RoomTypeController) CreateRoomType(c *gin.Context) {
	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := ctrl.RoomTypes.Create(&rt); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, rt)
}

func (ctrl *RoomTypeController) UpdateRoomType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	rt, err := ctrl.RoomTypes.Update(id, updates)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rt)
}

func (ctrl *RoomTypeController) DeleteRoomType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.RoomTypes.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "room type deleted")
}
