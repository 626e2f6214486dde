package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"grandstay-backend/middleware"
	"grandstay-backend/services"
	"grandstay-backend/utils"

	"github.com/gin-gonic/gin"
	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// actorID returns the authenticated user's id, 0 when unauthenticated
// (only possible on routes outside RequireAuth).
func actorID(c *gin.Context) uint {
	if user := middleware.CurrentUser(c); user != nil {
		return user.ID
	}
	return 0
}

func parseIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// parseDate accepts the dashboard's YYYY-MM-DD strings; empty is the zero
// time (the availability layer treats that permissively).
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		// Some clients send full timestamps; keep the day part.
		if t2, err2 := time.Parse(time.RFC3339, raw); err2 == nil {
			return utils.DateOnly(t2), nil
		}
		return time.Time{}, err
	}
	return utils.DateOnly(t), nil
}

func isDuplicateKeyErr(err error) bool {
	var mysqlErr *mysqldrv.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// respondServiceError maps the service error taxonomy to HTTP statuses:
// validation 400, conflicts and illegal transitions 409, missing records
// 404, everything else 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingGuest),
		errors.Is(err, services.ErrMissingRoomType),
		errors.Is(err, services.ErrMissingDates),
		errors.Is(err, services.ErrPastCheckIn),
		errors.Is(err, services.ErrInvertedDateRange),
		errors.Is(err, services.ErrGuestIDRequired):
		utils.JSONError(c, http.StatusBadRequest, err.Error())

	case errors.Is(err, services.ErrRoomConflict),
		errors.Is(err, services.ErrRoomNotAvailable),
		errors.Is(err, services.ErrRoomTypeMismatch),
		errors.Is(err, services.ErrRoomTypeInUse),
		errors.Is(err, services.ErrRoomInUse),
		errors.Is(err, services.ErrGuestInUse),
		errors.Is(err, services.ErrDuplicateGuest),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrBookingNotEditable):
		utils.JSONError(c, http.StatusConflict, err.Error())

	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.JSONError(c, http.StatusNotFound, "record not found")

	case isDuplicateKeyErr(err):
		utils.JSONError(c, http.StatusConflict, "duplicate entry")

	default:
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
	}
}
