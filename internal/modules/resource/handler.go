package resource

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/mindhaven/core/internal/pkg/response"
)

type Handler struct {
	svc      *Service
	importer *Importer
	feedURL  string
}

// NewHandler wires the library and its importer. feedURL is the configured
// default provider used when a fetch request names no URL.
func NewHandler(svc *Service, importer *Importer, feedURL string) *Handler {
	return &Handler{svc: svc, importer: importer, feedURL: feedURL}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/resources", h.list)
	rg.POST("/resources", authMW, h.create)
	rg.POST("/resources/fetch", authMW, h.fetch)
}

// GET /api/resources, public.
func (h *Handler) list(c *gin.Context) {
	out, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, out)
}

// POST /api/resources
func (h *Handler) create(c *gin.Context) {
	var dto CreateResourceDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if dto.Title == "" || dto.URL == "" {
		response.BadRequest(c, "title and url are required")
		return
	}
	r, err := h.svc.Add(&dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{"message": "Resource added successfully", "id": r.ID})
}

// POST /api/resources/fetch, best-effort bulk import from an external feed.
func (h *Handler) fetch(c *gin.Context) {
	var dto FetchDTO
	// An empty or absent body means "use the configured defaults".
	_ = c.ShouldBindJSON(&dto)

	feedURL := dto.URL
	if feedURL == "" {
		feedURL = h.feedURL
	}
	maxItems := defaultMaxItems
	if dto.MaxItems != nil {
		maxItems = *dto.MaxItems
	}

	result, err := h.importer.Import(c.Request.Context(), feedURL, maxItems)
	if err != nil {
		switch {
		case errors.Is(err, errUpstreamState), errors.Is(err, errUpstreamJSON), errors.Is(err, errUpstreamShape):
			response.BadGateway(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, result)
}
