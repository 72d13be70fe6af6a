package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/oksasatya/go-auth-api/internal/application"
	"github.com/oksasatya/go-auth-api/internal/interface/middleware"
	"github.com/oksasatya/go-auth-api/pkg/response"
	"github.com/oksasatya/go-auth-api/pkg/validation"
)

// BearerScheme prefixes issued tokens on the wire.
const BearerScheme = "Bearer"

type UserHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Test is a liveness probe for the users routes.
func (h *UserHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"msg": "Users works"})
}

// Register handles POST /api/users/register.
// Field validation happens before any store access; the duplicate check is
// backed by the store's unique constraint, so a conflicting concurrent insert
// surfaces as the same error body.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fields(c, http.StatusBadRequest, response.FieldErrors{"payload": "Invalid request body"})
		return
	}

	res := validation.ValidateRegisterInput(validation.RegisterInput{
		Name:                 req.Name,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if !res.IsValid {
		response.Fields(c, http.StatusBadRequest, res.Errors)
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, userapp.ErrEmailTaken) {
			response.Field(c, http.StatusBadRequest, "email", "Email already exists")
			return
		}
		h.Logger.WithError(err).WithField("email", req.Email).Error("register failed")
		response.ServerError(c)
		return
	}

	// The password hash never appears in a response body.
	c.JSON(http.StatusOK, gin.H{
		"id":     u.ID,
		"name":   u.Name,
		"email":  u.Email,
		"avatar": u.AvatarURL,
	})
}

// Login handles POST /api/users/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fields(c, http.StatusBadRequest, response.FieldErrors{"payload": "Invalid request body"})
		return
	}

	res := validation.ValidateLoginInput(validation.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if !res.IsValid {
		response.Fields(c, http.StatusBadRequest, res.Errors)
		return
	}

	token, _, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, userapp.ErrUserNotFound):
			response.Field(c, http.StatusNotFound, "email", "User not found")
		case errors.Is(err, userapp.ErrPasswordIncorrect):
			response.Field(c, http.StatusBadRequest, "password", "Password incorrect")
		default:
			h.Logger.WithError(err).WithField("email", req.Email).Error("login failed")
			response.ServerError(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   BearerScheme + " " + token,
	})
}

// Current handles GET /api/users/current. The auth middleware has already
// verified the token; only the subject id is trusted from its claims.
func (h *UserHandler) Current(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.CurrentUser(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, userapp.ErrUserNotFound) {
			response.Field(c, http.StatusNotFound, "email", "User not found")
			return
		}
		h.Logger.WithError(err).WithField("user_id", uid).Error("current user lookup failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
	})
}

// Search handles GET /api/users/search?q=&size=.
func (h *UserHandler) Search(c *gin.Context) {
	q := c.Query("q")
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	results, err := h.Svc.SearchUsers(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).WithField("q", q).Error("user search failed")
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}
