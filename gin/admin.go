package gin

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/RenardMacorol/TheCICS-sub000/errors"
	"github.com/RenardMacorol/TheCICS-sub000/services"
)

// AdminHandler groups the moderation routes. Every route goes through the
// Admin middleware; the services check the role again on their side.
type AdminHandler struct {
	Theses   *services.ThesisService
	Users    *services.UserService
	Comments *services.CommentService
	Auth     *Authenticator
}

func (h *AdminHandler) RegisterRoutes(router *gin.Engine) {
	router.PUT("/thecics/admin/theses/:id/approve", JSONFormatter(h.Auth.Admin(h.ApproveThesis)))
	router.PUT("/thecics/admin/theses/:id/restrict", JSONFormatter(h.Auth.Admin(h.RestrictThesis)))
	router.DELETE("/thecics/admin/theses/:id", JSONFormatter(h.Auth.Admin(h.DeleteThesis)))

	router.GET("/thecics/admin/users", JSONFormatter(h.Auth.Admin(h.ListUsers)))
	router.PUT("/thecics/admin/users/:id", JSONFormatter(h.Auth.Admin(h.UpdateUser)))
	router.PUT("/thecics/admin/users/:id/activate", JSONFormatter(h.Auth.Admin(h.ActivateUser)))
	router.PUT("/thecics/admin/users/:id/restrict", JSONFormatter(h.Auth.Admin(h.RestrictUser)))

	router.PUT("/thecics/admin/comments/:id/hide", JSONFormatter(h.Auth.Admin(h.HideComment)))
	router.DELETE("/thecics/admin/comments/:id", JSONFormatter(h.Auth.Admin(h.DeleteComment)))
}

func (h *AdminHandler) ApproveThesis(c *gin.Context) (interface{}, error) {
	id, err := paramID(c)
	if err != nil {
		return nil, err
	}
	return h.Theses.Approve(currentUser(c), id)
}

func (h *AdminHandler) RestrictThesis(c *gin.Context) (interface{}, error) {
	id, err := paramID(c)
	if err != nil {
		return nil, err
	}
	return h.Theses.Restrict(currentUser(c), id)
}

func (h *AdminHandler) DeleteThesis(c *gin.Context) (interface{}, error) {
	id, err := paramID(c)
	if err != nil {
		return nil, err
	}

	if err := h.Theses.Delete(currentUser(c), id); err != nil {
		return nil, err
	}
	return "ok", nil
}

func (h *AdminHandler) ListUsers(c *gin.Context) (interface{}, error) {
	return h.Users.List(currentUser(c))
}

func (h *AdminHandler) UpdateUser(c *gin.Context) (interface{}, error) {
	id, err := paramID(c)
	if err != nil {
		return nil, err
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, errors.New("invalid body", errors.BadRequest(), errors.WithCause(err))
	}

	return h.Users.Update(currentUser(c), id, body.Name)
}

func (h *AdminHandler) ActivateUser(c *gin.Context) (interface{}, error) {
	id, err := paramID(c)
	if err != nil {
		return nil, err
	}
	return h.Users.Activate(currentUser(c), id)
}

func (h *AdminHandler) RestrictUser(c *gin.Context) (interface{}, error) {
	id, err := paramID(c)
	if err != nil {
		return nil, err
	}
	return h.Users.Restrict(currentUser(c), id)
}

func (h *AdminHandler) HideComment(c *gin.Context) (interface{}, error) {
	id, err := paramID(c)
	if err != nil {
		return nil, err
	}
	return h.Comments.Hide(currentUser(c), id)
}

func (h *AdminHandler) DeleteComment(c *gin.Context) (interface{}, error) {
	id, err := paramID(c)
	if err != nil {
		return nil, err
	}

	if err := h.Comments.Delete(currentUser(c), id); err != nil {
		return nil, err
	}
	return "ok", nil
}

func paramID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, errors.New("id should be an integer", errors.BadRequest(), errors.WithCause(err))
	}
	return id, nil
}
