package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/mindhaven/core/internal/middleware"
	"github.com/mindhaven/core/internal/models"
	"github.com/mindhaven/core/internal/pkg/response"
)

// RequireUser resolves the authenticated identity claim to its user row.
// When the account no longer exists a 404 is written and ok is false.
func (s *Service) RequireUser(c *gin.Context) (*models.UserModel, bool) {
	u, err := s.UserByEmail(middleware.CurrentEmail(c))
	if err != nil {
		response.InternalError(c, err)
		return nil, false
	}
	if u == nil {
		response.NotFound(c, "User not found")
		return nil, false
	}
	return u, true
}
