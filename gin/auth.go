package gin

import (
	"github.com/gin-gonic/gin"

	"github.com/RenardMacorol/TheCICS-sub000/auth"
	"github.com/RenardMacorol/TheCICS-sub000/errors"
)

type AuthHandler struct {
	Service *auth.Service
	Google  *auth.GoogleService
}

func (h *AuthHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/thecics/auth/signup", JSONFormatter(h.SignUp))
	router.POST("/thecics/auth/login", JSONFormatter(h.Login))

	if h.Google != nil {
		router.GET("/thecics/auth/google", JSONFormatter(h.GoogleURL))
		router.GET("/thecics/auth/google/callback", JSONFormatter(h.GoogleCallback))
	}
}

func (h *AuthHandler) SignUp(c *gin.Context) (interface{}, error) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, errors.New("invalid body", errors.BadRequest(), errors.WithCause(err))
	}

	token, err := h.Service.SignUp(body.Name, body.Email, body.Password)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"access_token": token,
	}, nil
}

func (h *AuthHandler) Login(c *gin.Context) (interface{}, error) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, errors.New("invalid body", errors.BadRequest(), errors.WithCause(err))
	}

	token, err := h.Service.Login(body.Email, body.Password)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"access_token": token,
	}, nil
}

func (h *AuthHandler) GoogleURL(c *gin.Context) (interface{}, error) {
	return map[string]interface{}{
		"url": h.Google.LoginURL(),
	}, nil
}

func (h *AuthHandler) GoogleCallback(c *gin.Context) (interface{}, error) {
	token, err := h.Google.Login(c.Query("state"), c.Query("code"))
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"access_token": token,
	}, nil
}
