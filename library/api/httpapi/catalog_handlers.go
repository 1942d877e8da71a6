package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/schoollibrary/lendingengine/library/engine"
)

func (h *Handler) AddBook(c *gin.Context) {
	var req AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBadRequest(c, err)
		return
	}

	book, err := h.engine.AddBook(c.Request.Context(), engine.NewBook{
		BookID:      req.BookID,
		Title:       req.Title,
		Author:      req.Author,
		ISBN:        req.ISBN,
		Genre:       req.Genre,
		TotalCopies: req.TotalCopies,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bookResponse(book))
}

func (h *Handler) Catalog(c *gin.Context) {
	catalog, err := h.engine.Catalog(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	response := CatalogResponse{Books: make([]BookResponse, 0, catalog.Count), Count: catalog.Count}
	for _, b := range catalog.Books {
		response.Books = append(response.Books, bookResponse(b))
	}

	c.JSON(http.StatusOK, response)
}

func (h *Handler) Book(c *gin.Context) {
	book, err := h.engine.Book(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookResponse(book))
}

func (h *Handler) RemoveBook(c *gin.Context) {
	if err := h.engine.RemoveBook(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) AdjustAvailability(c *gin.Context) {
	var req AdjustAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBadRequest(c, err)
		return
	}

	book, err := h.engine.AdjustAvailability(c.Request.Context(), c.Param("id"), req.Delta)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookResponse(book))
}
