package v1

import (
	"net/http"

	"resume-builder-backend/internal/delivery/http/response"
	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(r *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	auth := r.Group("/auth")
	{
		auth.POST("/register", handler.Register)
		auth.POST("/login", handler.Login)
		auth.POST("/check-availability", handler.CheckAvailability)
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AvailabilityRequest struct {
	Field string `json:"field" binding:"required,oneof=username email phone"`
	Value string `json:"value" binding:"required"`
}

// Register godoc
// @Summary      Register a user
// @Description  Create a user account with a role (candidate/recruiter/admin)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user  body      domain.RegisterInput  true  "Registration JSON"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input domain.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid JSON payload: " + err.Error()))
		return
	}

	user, err := h.authUC.Register(c.Request.Context(), &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "User registered successfully", user)
}

// Login godoc
// @Summary      Login
// @Description  Authenticate by username and password; returns the stored profile including role
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Credentials JSON"
// @Success      200          {object}  response.Response
// @Failure      401          {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid JSON payload: " + err.Error()))
		return
	}

	user, err := h.authUC.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", user)
}

// CheckAvailability godoc
// @Summary      Check identifier availability
// @Description  Probe whether a username/email/phone is still free
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        probe  body      AvailabilityRequest  true  "Probe JSON"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Router       /auth/check-availability [post]
func (h *AuthHandler) CheckAvailability(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid JSON payload: " + err.Error()))
		return
	}

	available, err := h.authUC.CheckAvailability(c.Request.Context(), req.Field, req.Value)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Availability checked", gin.H{
		"field":     req.Field,
		"available": available,
	})
}
