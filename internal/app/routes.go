package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mindhaven/core/internal/middleware"
	"github.com/mindhaven/core/internal/modules/auth"
	"github.com/mindhaven/core/internal/modules/booking"
	"github.com/mindhaven/core/internal/modules/contact"
	"github.com/mindhaven/core/internal/modules/mood"
	"github.com/mindhaven/core/internal/modules/resource"
	"github.com/mindhaven/core/internal/modules/sos"
	"github.com/mindhaven/core/internal/modules/therapist"
	pkgredis "github.com/mindhaven/core/internal/pkg/redis"
	"github.com/mindhaven/core/internal/pkg/response"
	"github.com/redis/go-redis/v9"
)

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router
	db := a.db
	authMW := middleware.Auth()

	var rdb *redis.Client
	if rc != nil {
		rdb = rc.Raw()
	}
	limitMW := middleware.RateLimit(rdb)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	// Shared services
	users := auth.NewService(db)

	// Credential endpoints live at the root, outside the /api prefix.
	root := r.Group("")
	auth.NewHandler(users).RegisterRoutes(root, authMW, limitMW)

	api := r.Group("/api")
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })

	mood.NewHandler(mood.NewService(db), users).RegisterRoutes(api, authMW)
	therapist.NewHandler(therapist.NewService(db)).RegisterRoutes(api)
	booking.NewHandler(booking.NewService(db), users).RegisterRoutes(api, authMW)
	resource.NewHandler(
		resource.NewService(db),
		resource.NewImporter(db, a.logger),
		a.cfg.ResourcesFeedURL,
	).RegisterRoutes(api, authMW)
	contact.NewHandler(contact.NewService(db), users).RegisterRoutes(api, authMW)
	sos.NewHandler(sos.NewService(db), users).RegisterRoutes(api, authMW)
}
