package controllers

import (
	"net/http"
	"strconv"

	"grandstay-backend/models"
	"grandstay-backend/services"
	"grandstay-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Bookings     *services.BookingService
	Availability *services.AvailabilityService
	Guests       *services.GuestService
}

func NewBookingController(bookings *services.BookingService, avail *services.AvailabilityService, guests *services.GuestService) *BookingController {
	return &BookingController{Bookings: bookings, Availability: avail, Guests: guests}
}

type createBookingPayload struct {
	GuestID      uint                   `json:"guest_id"`
	GuestDetails *services.GuestDetails `json:"guest_details"`
	RoomTypeID   uint                   `json:"room_type_id"`
	RoomID       *uint                  `json:"room_id"`
	CheckInDate  string                 `json:"check_in_date"`
	CheckOutDate string                 `json:"check_out_date"`
	TotalAmount  float64                `json:"total_amount"`
	Notes        string                 `json:"notes"`
}

// CreateBooking handles POST /api/bookings. Validation order lives in the
// service; this layer only binds and parses dates.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	checkIn, err := parseDate(payload.CheckInDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_in_date format")
		return
	}
	checkOut, err := parseDate(payload.CheckOutDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_out_date format")
		return
	}

	booking, err := ctrl.Bookings.CreateBooking(services.CreateBookingInput{
		GuestID:      payload.GuestID,
		GuestDetails: payload.GuestDetails,
		RoomTypeID:   payload.RoomTypeID,
		RoomID:       payload.RoomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		TotalAmount:  payload.TotalAmount,
		Notes:        payload.Notes,
	}, actorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

func (ctrl *BookingController) GetBookings(c *gin.Context) {
	var filter services.BookingFilter

	if raw := c.Query("guest_id"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.GuestID = uint(v)
		}
	}
	if raw := c.Query("room_id"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.RoomID = uint(v)
		}
	}
	filter.Status = models.BookingStatus(c.Query("status"))
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.PerPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "50"))

	bookings, total, err := ctrl.Bookings.List(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    bookings,
		"total":   total,
		"page":    filter.Page,
	})
}

func (ctrl *BookingController) GetBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.Bookings.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

type updateBookingPayload struct {
	GuestID      *uint    `json:"guest_id"`
	RoomTypeID   *uint    `json:"room_type_id"`
	RoomID       *uint    `json:"room_id"`
	ClearRoom    bool     `json:"clear_room"`
	CheckInDate  *string  `json:"check_in_date"`
	CheckOutDate *string  `json:"check_out_date"`
	TotalAmount  *float64 `json:"total_amount"`
	Status       *string  `json:"status"`
	Notes        *string  `json:"notes"`
}

func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload updateBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	input := services.UpdateBookingInput{
		GuestID:     payload.GuestID,
		RoomTypeID:  payload.RoomTypeID,
		RoomID:      payload.RoomID,
		ClearRoom:   payload.ClearRoom,
		TotalAmount: payload.TotalAmount,
		Notes:       payload.Notes,
	}
	if payload.CheckInDate != nil {
		t, err := parseDate(*payload.CheckInDate)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid check_in_date format")
			return
		}
		input.CheckInDate = &t
	}
	if payload.CheckOutDate != nil {
		t, err := parseDate(*payload.CheckOutDate)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid check_out_date format")
			return
		}
		input.CheckOutDate = &t
	}
	if payload.Status != nil {
		s := models.BookingStatus(*payload.Status)
		input.Status = &s
	}

	booking, err := ctrl.Bookings.UpdateBooking(id, input, actorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

type checkInPayload struct {
	BookingID     uint   `json:"booking_id" binding:"required"`
	RoomID        uint   `json:"room_id" binding:"required"`
	GuestIDType   string `json:"guest_id_type"`
	GuestIDNumber string `json:"guest_id_number"`
	KeyCardID     string `json:"key_card_id"`
}

// CheckIn commits the check-in resolution flow: bind room, transition
// status, patch guest identity, record the key card — atomically.
func (ctrl *BookingController) CheckIn(c *gin.Context) {
	var payload checkInPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: booking_id and room_id are required")
		return
	}

	booking, err := ctrl.Bookings.CheckIn(
		payload.BookingID, payload.RoomID,
		payload.GuestIDType, payload.GuestIDNumber, payload.KeyCardID,
		actorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

type checkOutPayload struct {
	BookingID uint `json:"booking_id" binding:"required"`
}

func (ctrl *BookingController) CheckOut(c *gin.Context) {
	var payload checkOutPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: booking_id is required")
		return
	}

	booking, err := ctrl.Bookings.CheckOut(payload.BookingID, actorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (ctrl *BookingController) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.Bookings.Cancel(id, actorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// CheckInOptions serves the room stage of the check-in flow: candidate
// rooms of the booking's type, plus whether the guest's identity is already
// verified (the guest stage skips data entry when it is).
func (ctrl *BookingController) CheckInOptions(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := ctrl.Bookings.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	rooms, err := ctrl.Bookings.AvailableRoomsForBooking(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	guestVerified := booking.Guest.IDType != "" && booking.Guest.IDNumber != ""
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"data":           rooms,
		"guest_verified": guestVerified,
	})
}

// AvailableRooms answers booking-form queries: which rooms are free for a
// window, optionally restricted to a type. Blank dates return all rooms.
func (ctrl *BookingController) AvailableRooms(c *gin.Context) {
	checkIn, err := parseDate(c.Query("check_in_date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_in_date format")
		return
	}
	checkOut, err := parseDate(c.Query("check_out_date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_out_date format")
		return
	}

	var roomTypeID, excludeID uint
	if raw := c.Query("room_type_id"); raw != "" {
		if v, convErr := strconv.ParseUint(raw, 10, 64); convErr == nil {
			roomTypeID = uint(v)
		}
	}
	if raw := c.Query("exclude_booking_id"); raw != "" {
		if v, convErr := strconv.ParseUint(raw, 10, 64); convErr == nil {
			excludeID = uint(v)
		}
	}

	rooms, err := ctrl.Availability.ListAvailableRooms(checkIn, checkOut, roomTypeID, excludeID, false)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}
