package contact

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
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
	g := rg.Group("/emergency-contacts", authMW)
	g.GET("", h.list)
	g.POST("", h.create)
	g.DELETE("/:id", h.delete)
}

// GET /api/emergency-contacts
func (h *Handler) list(c *gin.Context) {
	u, ok := h.users.RequireUser(c)
	if !ok {
		return
	}
	contacts, err := h.svc.List(u.ID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	out := make([]contactResponse, len(contacts))
	for i, ec := range contacts {
		out[i] = contactResponse{ID: ec.ID, Name: ec.Name, Phone: ec.Phone, Email: ec.Email, Relationship: ec.Relationship}
	}
	response.OK(c, out)
}

// POST /api/emergency-contacts
func (h *Handler) create(c *gin.Context) {
	u, ok := h.users.RequireUser(c)
	if !ok {
		return
	}
	var dto CreateContactDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if dto.Name == "" || dto.Phone == "" {
		response.BadRequest(c, "Name and phone are required")
		return
	}
	ec, err := h.svc.Add(u.ID, &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{"msg": "Emergency contact added", "id": ec.ID})
}

// DELETE /api/emergency-contacts/:id
func (h *Handler) delete(c *gin.Context) {
	u, ok := h.users.RequireUser(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.NotFound(c, "Contact not found")
		return
	}
	if err := h.svc.Delete(uint(id), u.ID); err != nil {
		if errors.Is(err, errContactNotFound) {
			response.NotFound(c, "Contact not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"msg": "Emergency contact deleted"})
}
