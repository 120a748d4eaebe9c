package gin

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/RenardMacorol/TheCICS-sub000/errors"
	"github.com/RenardMacorol/TheCICS-sub000/services"
)

type CommentHandler struct {
	Service *services.CommentService
	Theses  *services.ThesisService
	Auth    *Authenticator
}

func (h *CommentHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/thecics/theses/:id/comments", JSONFormatter(h.Auth.MaybeAuthenticate(h.List)))
	router.POST("/thecics/theses/:id/comments", JSONFormatter(h.Auth.Authenticate(h.Add)))
}

func (h *CommentHandler) List(c *gin.Context) (interface{}, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return nil, errors.New("id should be an integer", errors.BadRequest(), errors.WithCause(err))
	}

	return h.Service.List(currentUser(c), id)
}

func (h *CommentHandler) Add(c *gin.Context) (interface{}, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return nil, errors.New("id should be an integer", errors.BadRequest(), errors.WithCause(err))
	}

	var body struct {
		Body string `json:"body"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, errors.New("invalid body", errors.BadRequest(), errors.WithCause(err))
	}

	user := currentUser(c)

	// Commenting is only possible on theses the user can see.
	if _, err := h.Theses.Get(user, id); err != nil {
		return nil, err
	}

	return h.Service.Add(user, id, body.Body)
}
