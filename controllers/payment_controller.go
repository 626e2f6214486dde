package controllers

import (
	"net/http"
	"strconv"

	"grandstay-backend/middleware"
	"grandstay-backend/models"
	"grandstay-backend/services"
	"grandstay-backend/utils"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	Payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{Payments: payments}
}

type createPaymentPayload struct {
	BookingID     uint                 `json:"booking_id" binding:"required"`
	Amount        float64              `json:"amount" binding:"required"`
	PaymentMethod models.PaymentMethod `json:"payment_method" binding:"required"`
	Notes         string               `json:"notes"`
}

func (ctrl *PaymentController) CreatePayment(c *gin.Context) {
	var payload createPaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	var processedBy *uint
	if user := middleware.CurrentUser(c); user != nil {
		processedBy = &user.ID
	}

	payment, err := ctrl.Payments.Create(payload.BookingID, payload.Amount, payload.PaymentMethod, payload.Notes, processedBy)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, payment)
}

func (ctrl *PaymentController) GetPayments(c *gin.Context) {
	var bookingID uint
	if raw := c.Query("booking_id"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil {
			bookingID = uint(v)
		}
	}

	payments, err := ctrl.Payments.List(bookingID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payments)
}

func (ctrl *PaymentController) GetPayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	payment, err := ctrl.Payments.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payment)
}

type refundPayload struct {
	PaymentID uint   `json:"payment_id" binding:"required"`
	Reason    string `json:"reason"`
}

func (ctrl *PaymentController) RefundPayment(c *gin.Context) {
	var payload refundPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "payment_id is required")
		return
	}

	payment, err := ctrl.Payments.Refund(payload.PaymentID, payload.Reason, actorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payment)
}
