package gin

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/RenardMacorol/TheCICS-sub000/errors"
	"github.com/RenardMacorol/TheCICS-sub000/services"
)

type UserHandler struct {
	Service *services.UserService
	Auth    *Authenticator
}

func (h *UserHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/thecics/me", JSONFormatter(h.Auth.Authenticate(h.Me)))
	router.POST("/thecics/theses/:id/bookmark", JSONFormatter(h.Auth.Authenticate(h.Bookmark)))
	router.POST("/thecics/theses/:id/like", JSONFormatter(h.Auth.Authenticate(h.Like)))
}

func (h *UserHandler) Me(c *gin.Context) (interface{}, error) {
	return currentUser(c), nil
}

func (h *UserHandler) Bookmark(c *gin.Context) (interface{}, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return nil, errors.New("id should be an integer", errors.BadRequest(), errors.WithCause(err))
	}

	bookmarks, err := h.Service.ToggleBookmark(currentUser(c), id)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"bookmarks": bookmarks,
	}, nil
}

func (h *UserHandler) Like(c *gin.Context) (interface{}, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return nil, errors.New("id should be an integer", errors.BadRequest(), errors.WithCause(err))
	}

	likes, err := h.Service.ToggleLike(currentUser(c), id)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"likes": likes,
	}, nil
}
