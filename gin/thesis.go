package gin

import (
	"strconv"

	"github.com/gin-gonic/gin"

	thecics "github.com/RenardMacorol/TheCICS-sub000"
	"github.com/RenardMacorol/TheCICS-sub000/errors"
	"github.com/RenardMacorol/TheCICS-sub000/services"
)

type ThesisHandler struct {
	Service *services.ThesisService
	Auth    *Authenticator
}

func (h *ThesisHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/thecics/theses", JSONFormatter(h.Auth.MaybeAuthenticate(h.Search)))
	router.GET("/thecics/theses/:id", JSONFormatter(h.Auth.MaybeAuthenticate(h.Get)))
	router.POST("/thecics/theses", JSONFormatter(h.Auth.Authenticate(h.Submit)))
}

func (h *ThesisHandler) Get(c *gin.Context) (interface{}, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return nil, errors.New("id should be an integer", errors.BadRequest(), errors.WithCause(err))
	}

	return h.Service.Get(currentUser(c), id)
}

func (h *ThesisHandler) Search(c *gin.Context) (interface{}, error) {
	bookmarked, _, err := queryBool("bookmarked", c)
	if err != nil {
		return nil, errors.New("bookmarked should be a boolean", errors.BadRequest(), errors.WithCause(err))
	}

	year, _, err := queryInt("year", c)
	if err != nil {
		return nil, errors.New("year should be an integer", errors.BadRequest(), errors.WithCause(err))
	}

	limit, _, err := queryInt("limit", c)
	if err != nil {
		return nil, errors.New("limit should be an integer", errors.BadRequest(), errors.WithCause(err))
	}

	offset, _, err := queryInt("offset", c)
	if err != nil {
		return nil, errors.New("offset should be an integer", errors.BadRequest(), errors.WithCause(err))
	}

	return h.Service.Search(
		currentUser(c),
		c.Query("q"),
		splitKeywords(c.Query("keywords")),
		year,
		bookmarked,
		offset,
		limit,
	)
}

func (h *ThesisHandler) Submit(c *gin.Context) (interface{}, error) {
	// Keywords arrive comma-joined from clients, matching the stored form.
	var body struct {
		Title      string `json:"title"`
		Abstract   string `json:"abstract"`
		AuthorName string `json:"authorName"`
		Year       int    `json:"year"`
		Keywords   string `json:"keywords"`
		PDFURL     string `json:"pdfUrl"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, errors.New("invalid body", errors.BadRequest(), errors.WithCause(err))
	}

	thesis := thecics.Thesis{
		Title:      body.Title,
		Abstract:   body.Abstract,
		AuthorName: body.AuthorName,
		Year:       body.Year,
		Keywords:   splitKeywords(body.Keywords),
		PDFURL:     body.PDFURL,
	}

	return h.Service.Submit(currentUser(c), thesis)
}
