package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/schoollibrary/lendingengine/library/engine"
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

func (h *Handler) SubmitAcquisition(c *gin.Context) {
	var req SubmitAcquisitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBadRequest(c, err)
		return
	}

	acquisition, err := h.engine.SubmitAcquisition(c.Request.Context(), engine.NewAcquisition{
		AcquisitionID: req.AcquisitionID,
		Title:         req.Title,
		Author:        req.Author,
		Reason:        req.Reason,
		RequesterID:   req.RequesterID,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, acquisitionResponse(acquisition))
}

func (h *Handler) Acquisition(c *gin.Context) {
	acquisition, err := h.engine.Acquisition(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, acquisitionResponse(acquisition))
}

// Acquisitions lists the requests with the status query parameter, or all without it.
func (h *Handler) Acquisitions(c *gin.Context) {
	list, err := h.engine.Acquisitions(c.Request.Context(), core.AcquisitionStatus(c.Query("status")))
	if err != nil {
		abortWithError(c, err)
		return
	}

	response := AcquisitionsResponse{
		Acquisitions: make([]AcquisitionResponse, 0, list.Count),
		Count:        list.Count,
	}

	for _, a := range list.Acquisitions {
		response.Acquisitions = append(response.Acquisitions, acquisitionResponse(a))
	}

	c.JSON(http.StatusOK, response)
}

func (h *Handler) DecideAcquisition(c *gin.Context) {
	var req DecideAcquisitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBadRequest(c, err)
		return
	}

	acquisition, err := h.engine.DecideAcquisition(c.Request.Context(), c.Param("id"), *req.Approve)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, acquisitionResponse(acquisition))
}
