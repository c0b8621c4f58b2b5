package booking

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
	g := rg.Group("/bookings", authMW)
	g.POST("", h.create)
	g.GET("", h.list)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

// POST /api/bookings
func (h *Handler) create(c *gin.Context) {
	var dto CreateBookingDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if dto.TherapistID == 0 || dto.Day == "" || dto.Slot == "" {
		response.BadRequest(c, "therapistId, day, and slot are required")
		return
	}
	u, ok := h.users.RequireUser(c)
	if !ok {
		return
	}
	b, therapistName, err := h.svc.Create(u.ID, dto.TherapistID, dto.Day, dto.Slot)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Created(c, gin.H{
		"message": "Booking successful",
		"booking": bookingSummary{ID: b.ID, Therapist: therapistName, Day: b.Day, Slot: b.Slot},
	})
}

// GET /api/bookings
func (h *Handler) list(c *gin.Context) {
	u, ok := h.users.RequireUser(c)
	if !ok {
		return
	}
	out, err := h.svc.ListFor(u.ID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, out)
}

// PUT /api/bookings/:id
func (h *Handler) update(c *gin.Context) {
	var dto UpdateBookingDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if dto.Day == "" || dto.Slot == "" {
		response.BadRequest(c, "day and slot are required")
		return
	}
	u, ok := h.users.RequireUser(c)
	if !ok {
		return
	}
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Booking not found or access denied")
		return
	}
	if err := h.svc.Update(id, u.ID, dto.Day, dto.Slot); err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Booking updated successfully"})
}

// DELETE /api/bookings/:id
func (h *Handler) delete(c *gin.Context) {
	u, ok := h.users.RequireUser(c)
	if !ok {
		return
	}
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Booking not found or access denied")
		return
	}
	if err := h.svc.Delete(id, u.ID); err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Booking cancelled successfully"})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errTherapistNotFound):
		response.NotFound(c, "Therapist not found")
	case errors.Is(err, errBookingNotFound):
		response.NotFound(c, "Booking not found or access denied")
	case errors.Is(err, errSlotUnavailable):
		response.BadRequest(c, "Selected slot not available")
	case errors.Is(err, errSlotTaken):
		response.Conflict(c, "Selected slot already booked")
	default:
		response.InternalError(c, err)
	}
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}
