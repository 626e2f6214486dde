package controllers

import (
	"errors"
	"net/http"
	"strings"

	"grandstay-backend/middleware"
	"grandstay-backend/models"
	"grandstay-backend/services"
	"grandstay-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload

	// The dashboard login form posts x-www-form-urlencoded; JSON is also
	// accepted for API clients.
	if strings.Contains(c.ContentType(), "json") {
		if err := c.ShouldBindJSON(&payload); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid payload")
			return
		}
	} else {
		payload.Username = c.PostForm("username")
		payload.Password = c.PostForm("password")
	}

	token, user, err := ctrl.Auth.Login(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"user": gin.H{
			"id":        user.ID,
			"username":  user.Username,
			"full_name": user.FullName,
			"role":      user.Role,
		},
	})
}

func (ctrl *AuthController) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if err := ctrl.Auth.Logout(token); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "logged out")
}

func (ctrl *AuthController) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.JSONError(c, http.StatusUnauthorized, "session expired")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

type createUserPayload struct {
	Username string          `json:"username" binding:"required"`
	FullName string          `json:"full_name"`
	Password string          `json:"password" binding:"required"`
	Role     models.UserRole `json:"role"`
}

func (ctrl *AuthController) GetUsers(c *gin.Context) {
	users, err := ctrl.Auth.ListUsers()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, users)
}

func (ctrl *AuthController) CreateUser(c *gin.Context) {
	var payload createUserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "username and password are required")
		return
	}

	role := payload.Role
	if role == "" {
		role = models.RoleReceptionist
	}

	user, err := ctrl.Auth.CreateUser(payload.Username, payload.FullName, payload.Password, role)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusBadRequest, "username and password are required")
			return
		}
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, user)
}

func (ctrl *AuthController) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	user, err := ctrl.Auth.UpdateUser(id, updates)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}
