package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/schoollibrary/lendingengine/library/engine"
)

// Handler serves the routes of the lending engine.
type Handler struct {
	engine *engine.Engine
}

func NewHandler(e *engine.Engine) *Handler {
	return &Handler{engine: e}
}

// NewRouter builds the gin engine with request id, request logging and panic recovery.
func NewRouter(e *engine.Engine, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), RequestLogger(logger), gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	NewHandler(e).RegisterRoutes(router.Group("/api/v1"))

	return router
}

// RegisterRoutes mounts all routes on rg.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	books := rg.Group("/books")
	books.POST("", h.AddBook)
	books.GET("", h.Catalog)
	books.GET("/:id", h.Book)
	books.DELETE("/:id", h.RemoveBook)
	books.POST("/:id/availability", h.AdjustAvailability)
	books.GET("/:id/reservations", h.PendingReservations)

	reservations := rg.Group("/reservations")
	reservations.POST("", h.RequestReservation)
	reservations.GET("/:id", h.Reservation)
	reservations.POST("/:id/cancel", h.CancelReservation)
	reservations.POST("/:id/fulfill", h.FulfillReservation)

	loans := rg.Group("/loans")
	loans.POST("", h.IssueBook)
	loans.GET("/:id", h.Transaction)
	loans.POST("/:id/return", h.ReturnBook)

	rg.GET("/members/:id/loans", h.LoansByMember)

	fines := rg.Group("/fines")
	fines.GET("", h.AssessedFines)
	fines.POST("/resync", h.ResyncFees)

	lists := rg.Group("/reading-lists")
	lists.POST("", h.CreateReadingList)
	lists.GET("/:id", h.ViewReadingList)
	lists.DELETE("/:id", h.DeleteReadingList)
	lists.POST("/:id/books", h.AddBookToReadingList)

	acquisitions := rg.Group("/acquisitions")
	acquisitions.POST("", h.SubmitAcquisition)
	acquisitions.GET("", h.Acquisitions)
	acquisitions.GET("/:id", h.Acquisition)
	acquisitions.POST("/:id/decision", h.DecideAcquisition)
}
