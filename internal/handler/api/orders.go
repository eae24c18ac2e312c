package api

import (
	"errors"
	"net/http"

	resdto "treesync/internal/handler/dto/response"
	"treesync/internal/handler/httperr"
	"treesync/internal/pkg/errs"
	"treesync/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	q queries.OrderQueries
}

func NewOrderHandler(q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{q: q}
}

func (h *OrderHandler) ListByAccount(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid account id", nil)
		return
	}

	view, err := h.q.ListByAccount(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, errs.ErrAccountNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Account not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load orders", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccountOrders(view))
}
