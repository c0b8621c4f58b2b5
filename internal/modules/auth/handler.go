package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mindhaven/core/internal/middleware"
	"github.com/mindhaven/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterRoutes mounts the credential endpoints at the root, without the
// /api prefix. limitMW throttles brute-force attempts on the
// unauthenticated routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, limitMW gin.HandlerFunc) {
	rg.POST("/register", limitMW, h.register)
	rg.POST("/login", limitMW, h.login)
	rg.GET("/protected", authMW, h.protected)
}

// POST /register
func (h *Handler) register(c *gin.Context) {
	var dto RegisterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if _, err := h.svc.Register(&dto); err != nil {
		if errors.Is(err, errEmailTaken) {
			// A taken email reports as a plain 400, not 409. The credential
			// endpoints use the legacy "msg" key, not the "error" envelope.
			c.JSON(http.StatusBadRequest, gin.H{"msg": "User already exists"})
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{"msg": "User registered successfully"})
}

// POST /login
func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, err := h.svc.Login(dto.Email, dto.Password)
	if err != nil {
		if errors.Is(err, errBadCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Invalid email or password"})
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, loginResponse{AccessToken: token})
}

// GET /protected, a liveness check for the token itself.
func (h *Handler) protected(c *gin.Context) {
	response.OK(c, gin.H{"logged_in_as": middleware.CurrentEmail(c)})
}
