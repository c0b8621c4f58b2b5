package mood

import (
	"errors"
	"strconv"
	"strings"

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
	rg.POST("/mood", authMW, h.create)
	rg.GET("/moods", authMW, h.list)
	rg.PUT("/mood/:id", authMW, h.update)
	rg.DELETE("/mood/:id", authMW, h.delete)
}

// POST /api/mood
func (h *Handler) create(c *gin.Context) {
	u, ok := h.users.RequireUser(c)
	if !ok {
		return
	}
	var dto CreateMoodDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if strings.TrimSpace(dto.Mood) == "" {
		response.BadRequest(c, "Mood is required")
		return
	}
	if _, err := h.svc.Add(u.ID, dto.Mood, dto.Note); err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{"message": "Mood entry saved"})
}

// GET /api/moods. A vanished account yields an empty list, not an error.
func (h *Handler) list(c *gin.Context) {
	u, err := h.users.UserByEmail(middleware.CurrentEmail(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if u == nil {
		response.OK(c, []moodResponse{})
		return
	}
	entries, err := h.svc.List(u.ID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	out := make([]moodResponse, len(entries))
	for i, e := range entries {
		out[i] = moodResponse{ID: e.ID, Timestamp: e.CreatedAt, Mood: e.Mood, Note: e.Note}
	}
	response.OK(c, out)
}

// PUT /api/mood/:id
func (h *Handler) update(c *gin.Context) {
	u, ok := h.users.RequireUser(c)
	if !ok {
		return
	}
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Mood entry not found or access denied")
		return
	}
	var dto UpdateMoodDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.svc.Update(id, u.ID, &dto); err != nil {
		if errors.Is(err, errMoodNotFound) {
			response.NotFound(c, "Mood entry not found or access denied")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Mood entry updated"})
}

// DELETE /api/mood/:id
func (h *Handler) delete(c *gin.Context) {
	u, ok := h.users.RequireUser(c)
	if !ok {
		return
	}
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Mood entry not found or access denied")
		return
	}
	if err := h.svc.Delete(id, u.ID); err != nil {
		if errors.Is(err, errMoodNotFound) {
			response.NotFound(c, "Mood entry not found or access denied")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Mood entry deleted"})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}
