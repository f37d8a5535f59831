package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/social-feed/domain"
	"github.com/Guyuepp/social-feed/internal/mapper"
)

type userHandler struct {
	Repo domain.UserRepository
}

func NewUserHandler(repo domain.UserRepository) *userHandler {
	return &userHandler{
		Repo: repo,
	}
}

// Me returns the authenticated user
func (h *userHandler) Me(c *gin.Context) {
	if v, ok := c.Get("user"); ok {
		if user, ok := v.(*domain.User); ok {
			c.JSON(http.StatusOK, mapper.UserToDTO(user))
			return
		}
	}

	user, err := h.Repo.GetCurrent(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, mapper.UserToDTO(user))
}
