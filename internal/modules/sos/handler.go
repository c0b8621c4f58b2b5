package sos

import (
	"github.com/gin-gonic/gin"
	"github.com/mindhaven/core/internal/middleware"
	"github.com/mindhaven/core/internal/modules/auth"
	"github.com/mindhaven/core/internal/pkg/response"
)

type Handler struct {
	svc   *Service
	users *auth.Service
}

func NewHandler(svc *Service, users *auth.Service) *Handler {
	return &Handler{svc: svc, users: users}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/sos", authMW, h.send)
}

// POST /api/sos always succeeds, even for an account with no contacts or
// a user row that has since vanished.
func (h *Handler) send(c *gin.Context) {
	email := middleware.CurrentEmail(c)

	var userID uint
	if u, err := h.users.UserByEmail(email); err != nil {
		response.InternalError(c, err)
		return
	} else if u != nil {
		userID = u.ID
	}

	out, err := h.svc.Send(email, userID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, out)
}
