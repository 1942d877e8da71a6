package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/schoollibrary/lendingengine/library/engine"
)

func (h *Handler) CreateReadingList(c *gin.Context) {
	var req CreateReadingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBadRequest(c, err)
		return
	}

	list, err := h.engine.CreateReadingList(c.Request.Context(), engine.NewReadingList{
		ListID:    req.ListID,
		Name:      req.Name,
		TeacherID: req.TeacherID,
		SectionID: req.SectionID,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, readingListResponse(list))
}

// ViewReadingList answers on behalf of the member_id query parameter.
func (h *Handler) ViewReadingList(c *gin.Context) {
	list, err := h.engine.ViewReadingList(c.Request.Context(), c.Param("id"), c.Query("member_id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, readingListResponse(list))
}

func (h *Handler) AddBookToReadingList(c *gin.Context) {
	var req AddBookToReadingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBadRequest(c, err)
		return
	}

	list, err := h.engine.AddBookToReadingList(c.Request.Context(), c.Param("id"), req.BookID, req.TeacherID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, readingListResponse(list))
}

// DeleteReadingList deletes on behalf of the teacher_id query parameter.
func (h *Handler) DeleteReadingList(c *gin.Context) {
	if err := h.engine.DeleteReadingList(c.Request.Context(), c.Param("id"), c.Query("teacher_id")); err != nil {
		abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
