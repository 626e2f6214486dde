package controllers

import (
	"net/http"

	"grandstay-backend/models"
	"grandstay-backend/services"
	"grandstay-backend/utils"

	"github.com/gin-gonic/gin"
)

type KitchenController struct {
	Meals *services.MealService
}

func NewKitchenController(meals *services.MealService) *KitchenController {
	return &KitchenController{Meals: meals}
}

func (ctrl *KitchenController) GetOrders(c *gin.Context) {
	orders, err := ctrl.Meals.ListOrders(models.MealOrderStatus(c.Query("status")))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, orders)
}

func (ctrl *KitchenController) CreateOrder(c *gin.Context) {
	var order models.MealOrder
	if err := c.ShouldBindJSON(&order); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := ctrl.Meals.CreateOrder(&order); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, order)
}

func (ctrl *KitchenController) UpdateOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	order, err := ctrl.Meals.Update(id, updates)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, order)
}

// AdvanceOrder moves an order one kitchen stage forward.
func (ctrl *KitchenController) AdvanceOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	order, err := ctrl.Meals.Advance(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, order)
}
