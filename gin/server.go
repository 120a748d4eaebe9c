package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RenardMacorol/TheCICS-sub000/auth"
	"github.com/RenardMacorol/TheCICS-sub000/citation"
	"github.com/RenardMacorol/TheCICS-sub000/services"
)

func New(
	thesisService *services.ThesisService,
	userService *services.UserService,
	commentService *services.CommentService,
	citationService *citation.Service,
	formatter *citation.Formatter,
	authService *auth.Service,
	googleService *auth.GoogleService,
	authenticator *Authenticator,
) (http.Handler, error) {
	router := gin.Default()

	// CORS
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, PUT, POST, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Accept-Language, Authorization, Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
		}
		c.Next()
	})

	// Unknown route
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Page not found"})
	})

	// Ping
	router.GET("/thecics/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, map[string]string{"data": "ok"})
	})

	// Auth
	authHandler := AuthHandler{Service: authService, Google: googleService}
	authHandler.RegisterRoutes(router)

	// Theses
	thesisHandler := ThesisHandler{Service: thesisService, Auth: authenticator}
	thesisHandler.RegisterRoutes(router)

	// Citations
	citationHandler := CitationHandler{
		Formatter: formatter,
		Service:   citationService,
		Theses:    thesisService,
		Auth:      authenticator,
	}
	citationHandler.RegisterRoutes(router)

	// Comments
	commentHandler := CommentHandler{Service: commentService, Theses: thesisService, Auth: authenticator}
	commentHandler.RegisterRoutes(router)

	// Users
	userHandler := UserHandler{Service: userService, Auth: authenticator}
	userHandler.RegisterRoutes(router)

	// Admin
	adminHandler := AdminHandler{
		Theses:   thesisService,
		Users:    userService,
		Comments: commentService,
		Auth:     authenticator,
	}
	adminHandler.RegisterRoutes(router)

	return router, nil
}
