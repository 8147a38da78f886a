package handlers

import (
	"net/http"

	"github.com/Monishapmj/book-review-backend/internal/logger"
	"github.com/Monishapmj/book-review-backend/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(h.requestLog, gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	h.registerBookRoutes(router)
	h.registerUserRoutes(router)

	// Anything unmatched answers the uniform 404 envelope.
	router.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "Route not found")
	})

	return router
}

func (h *Handler) registerBookRoutes(r *gin.Engine) {
	books := r.Group("/books")
	{
		books.GET("", h.getAllBooks)
		books.GET("/isbn/:isbn", h.getBookByISBN)
		books.GET("/author/:author", h.getBooksByAuthor)
		books.GET("/title/:title", h.getBooksByTitle)
		books.POST("", h.addBook)

		books.GET("/:isbn/reviews", h.listReviews)
		books.PUT("/:isbn/review", h.authenticateToken, h.upsertReview)
		books.DELETE("/:isbn/review", h.authenticateToken, h.deleteReview)
	}
}

func (h *Handler) registerUserRoutes(r *gin.Engine) {
	users := r.Group("/users")
	{
		users.POST("/register", h.register)
		users.POST("/login", h.login)
	}
}
