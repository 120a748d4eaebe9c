package gin

import (
	"strconv"

	"github.com/gin-gonic/gin"

	thecics "github.com/RenardMacorol/TheCICS-sub000"
	"github.com/RenardMacorol/TheCICS-sub000/citation"
	"github.com/RenardMacorol/TheCICS-sub000/errors"
	"github.com/RenardMacorol/TheCICS-sub000/services"
)

type CitationHandler struct {
	Formatter *citation.Formatter
	Service   *citation.Service
	Theses    *services.ThesisService
	Auth      *Authenticator
}

func (h *CitationHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/thecics/theses/:id/citation", JSONFormatter(h.Auth.MaybeAuthenticate(h.Format)))
	router.POST("/thecics/theses/:id/citations", JSONFormatter(h.Auth.MaybeAuthenticate(h.Record)))
	router.GET("/thecics/theses/:id/citations/stats", JSONFormatter(h.Auth.MaybeAuthenticate(h.Stats)))
}

// Format renders the citation text for a thesis. The style defaults to APA;
// an unknown style falls back to the generic form rather than failing.
func (h *CitationHandler) Format(c *gin.Context) (interface{}, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return nil, errors.New("id should be an integer", errors.BadRequest(), errors.WithCause(err))
	}

	style := thecics.CitationFormat(c.DefaultQuery("style", string(thecics.FormatAPA)))

	thesis, err := h.Theses.Get(currentUser(c), id)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"style":     style,
		"text":      h.Formatter.Format(thesis, style),
		"permalink": h.Formatter.Permalink(thesis.ID),
	}, nil
}

// Record appends one citation event. The write is best-effort: the response
// carries whether it was recorded, never an error that would block the
// user's copy action.
func (h *CitationHandler) Record(c *gin.Context) (interface{}, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return nil, errors.New("id should be an integer", errors.BadRequest(), errors.WithCause(err))
	}

	var body struct {
		Type   string `json:"citationType"`
		Format string `json:"citationFormat"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, errors.New("invalid body", errors.BadRequest(), errors.WithCause(err))
	}

	user := currentUser(c)

	var recorded bool
	switch thecics.CitationType(body.Type) {
	case thecics.CitationTypeCitation:
		if !thecics.ValidCitationFormat(body.Format) {
			return nil, errors.New("citation events need a valid citationFormat", errors.BadRequest())
		}
		recorded = h.Service.RecordCitation(id, user.ID, thecics.CitationFormat(body.Format))
	case thecics.CitationTypeLink:
		if body.Format != "" {
			return nil, errors.New("link events cannot carry a citationFormat", errors.BadRequest())
		}
		recorded = h.Service.RecordLink(id, user.ID)
	default:
		return nil, errors.New("citationType should be citation or link", errors.BadRequest())
	}

	return map[string]interface{}{
		"recorded": recorded,
		"stats":    h.Service.Stats(id, user.ID),
	}, nil
}

func (h *CitationHandler) Stats(c *gin.Context) (interface{}, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return nil, errors.New("id should be an integer", errors.BadRequest(), errors.WithCause(err))
	}

	return h.Service.Stats(id, currentUser(c).ID), nil
}
