package therapist

import (
	"github.com/gin-gonic/gin"
	"github.com/mindhaven/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/therapists", h.list)
}

// GET /api/therapists, public and read-only.
func (h *Handler) list(c *gin.Context) {
	out, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, out)
}
