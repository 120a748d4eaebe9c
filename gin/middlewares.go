package gin

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	thecics "github.com/RenardMacorol/TheCICS-sub000"
	"github.com/RenardMacorol/TheCICS-sub000/auth"
	"github.com/RenardMacorol/TheCICS-sub000/errors"
)

type HandlerFunc func(*gin.Context) (interface{}, error)

// JSONFormatter renders the handler result as {"data": ...}, or the error
// as {"message": ...} with the code carried by the error.
func JSONFormatter(next HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := next(c)
		if err != nil {
			code := http.StatusInternalServerError
			if err, ok := err.(errors.Error); ok {
				code = err.Code()
			}

			c.JSON(code, map[string]interface{}{
				"message": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, map[string]interface{}{
			"data": res,
		})
	}
}

type Authenticator struct {
	Encoder *auth.EncodeDecoder
	Users   thecics.UserStore
}

// Authenticate requires a valid bearer token and stores the matching user
// in the gin context.
func (a *Authenticator) Authenticate(next HandlerFunc) HandlerFunc {
	return func(c *gin.Context) (interface{}, error) {
		user, err := a.authenticate(c)
		if err != nil {
			return nil, err
		}

		c.Set("user", user)
		return next(c)
	}
}

// MaybeAuthenticate resolves the user when a token is present but lets the
// request through anonymously otherwise, so public reads and anonymous
// citation copies keep working.
func (a *Authenticator) MaybeAuthenticate(next HandlerFunc) HandlerFunc {
	return func(c *gin.Context) (interface{}, error) {
		if c.Request.Header.Get("Authorization") == "" {
			return next(c)
		}

		user, err := a.authenticate(c)
		if err != nil {
			return nil, err
		}

		c.Set("user", user)
		return next(c)
	}
}

// Admin requires a valid token belonging to an admin.
func (a *Authenticator) Admin(next HandlerFunc) HandlerFunc {
	return a.Authenticate(func(c *gin.Context) (interface{}, error) {
		if !currentUser(c).IsAdmin() {
			return nil, errors.New("admin only", errors.Forbidden())
		}
		return next(c)
	})
}

func (a *Authenticator) authenticate(c *gin.Context) (thecics.User, error) {
	token := c.Request.Header.Get("Authorization")
	if len(token) <= 6 || strings.ToLower(token[:7]) != "bearer " {
		return thecics.User{}, errors.New("no token found", errors.Unauthorized())
	}

	userID, err := a.Encoder.Decode(token[7:])
	if err != nil {
		return thecics.User{}, errors.New("invalid token", errors.Unauthorized(), errors.WithCause(err))
	}

	user, err := a.Users.Get(userID)
	if err != nil {
		return thecics.User{}, errors.New("could not get user", errors.WithCause(err))
	} else if user == nil {
		return thecics.User{}, errors.New("unknown user", errors.Unauthorized())
	}

	return *user, nil
}

// currentUser returns the authenticated user, or the zero (anonymous) user
// when the request carried no token.
func currentUser(c *gin.Context) thecics.User {
	v, ok := c.Get("user")
	if !ok {
		return thecics.User{}
	}

	user, ok := v.(thecics.User)
	if !ok {
		return thecics.User{}
	}
	return user
}
