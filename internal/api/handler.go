package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/contractpulse/internal/domain/dto"
	"github.com/guttosm/contractpulse/internal/pipeline"
	"github.com/guttosm/contractpulse/internal/service"
)

// Handler provides HTTP handlers over the last parsed result set.
//
// Responsibilities:
//   - Query the service layer for the current transactions
//   - Translate domain records into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
//
// The handler never mutates pipeline state; parse and emit stay CLI-driven.
type Handler struct {
	svc service.TransactionService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.TransactionService) *Handler {
	return &Handler{svc: svc}
}

// ListTransactions handles GET /api/v1/transactions requests.
//
// Responses:
//   - 200 OK: JSON array of retained transactions (may be empty).
//   - 404 Not Found: no result set has been parsed yet.
//   - 500 Internal Server Error: unexpected failure reading the result set.
//
// ListTransactions godoc
// @Summary      List retained transactions
// @Description  Returns the transactions retained by the last parse run, with decoded contract sizes
// @Tags         transactions
// @Produce      json
// @Success      200  {array}   dto.TransactionResponse  "Success"
// @Failure      404  {object}  dto.ErrorResponse        "No result set loaded"
// @Failure      500  {object}  dto.ErrorResponse        "Internal Error"
// @Router       /api/v1/transactions [get]
func (h *Handler) ListTransactions(c *gin.Context) {
	txs, err := h.svc.ListTransactions(c.Request.Context())
	if err != nil {
		if errors.Is(err, pipeline.ErrNoResultSet) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("no result set loaded", err))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to list transactions", err))
		return
	}

	resp := make([]dto.TransactionResponse, 0, len(txs))
	for _, t := range txs {
		resp = append(resp, dto.NewTransactionResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}
