package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/schoollibrary/lendingengine/library/engine"
)

func (h *Handler) IssueBook(c *gin.Context) {
	var req IssueBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBadRequest(c, err)
		return
	}

	transaction, err := h.engine.IssueBook(c.Request.Context(), engine.Loan{
		TransactionID:   req.TransactionID,
		BookID:          req.BookID,
		MemberID:        req.MemberID,
		DueDateOverride: req.DueDate,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, transactionResponse(transaction, nil))
}

func (h *Handler) Transaction(c *gin.Context) {
	details, err := h.engine.Transaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactionResponse(details.Transaction, details.Fee))
}

// ReturnBook accepts an empty body, the copy is returned as of now then.
func (h *Handler) ReturnBook(c *gin.Context) {
	var req ReturnBookRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithBadRequest(c, err)
			return
		}
	}

	asOf := time.Time{}
	if req.AsOf != nil {
		asOf = *req.AsOf
	}

	returned, err := h.engine.ReturnBook(c.Request.Context(), c.Param("id"), asOf)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactionResponse(returned.Transaction, returned.Fee))
}

func (h *Handler) LoansByMember(c *gin.Context) {
	loans, err := h.engine.LoansByMember(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	response := LoansResponse{
		MemberID: loans.MemberID,
		Loans:    make([]TransactionResponse, 0, loans.Count),
		Count:    loans.Count,
		Overdue:  loans.Overdue,
	}

	for _, loan := range loans.Loans {
		t := transactionResponse(loan.Transaction, nil)
		daysOverdue := loan.DaysOverdue
		t.DaysOverdue = &daysOverdue
		response.Loans = append(response.Loans, t)
	}

	c.JSON(http.StatusOK, response)
}

// AssessedFines lists the fines of the member_id query parameter, or of everyone without it.
func (h *Handler) AssessedFines(c *gin.Context) {
	fines, err := h.engine.AssessedFines(c.Request.Context(), c.Query("member_id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	response := FinesResponse{
		Fees:        make([]FeeResponse, 0, fines.Count),
		Count:       fines.Count,
		TotalAmount: fines.TotalAmount,
	}

	for _, fee := range fines.Fees {
		response.Fees = append(response.Fees, feeResponse(fee))
	}

	c.JSON(http.StatusOK, response)
}

func (h *Handler) ResyncFees(c *gin.Context) {
	delivered, err := h.engine.ResyncFees(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ResyncResponse{Delivered: delivered})
}
