package api

import (
	"errors"
	"net/http"

	resdto "treesync/internal/handler/dto/response"
	"treesync/internal/handler/httperr"
	"treesync/internal/pkg/errs"
	"treesync/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SyncHandler struct {
	cmds commands.SyncCommands
}

func NewSyncHandler(cmds commands.SyncCommands) *SyncHandler {
	return &SyncHandler{cmds: cmds}
}

func (h *SyncHandler) Run(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid account id", nil)
		return
	}

	result, err := h.cmds.Run(c.Request.Context(), accountID)
	if err != nil {
		abortSyncError(c, err, resdto.FromSyncResult(result))
		return
	}
	c.JSON(http.StatusOK, resdto.FromSyncResult(result))
}

func (h *SyncHandler) Discover(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid account id", nil)
		return
	}

	result, err := h.cmds.DiscoverCatalogTarget(c.Request.Context(), accountID)
	if err != nil {
		abortSyncError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDiscoveryResult(result))
}

// abortSyncError keeps the partial counters in the error payload so a
// caller can see how far the run got before it stopped.
func abortSyncError(c *gin.Context, err error, detail any) {
	switch {
	case errors.Is(err, errs.ErrAccountNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Account not found", nil)
	case errors.Is(err, errs.ErrCatalogTargetNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "No tree product found in catalog", detail)
	case errors.Is(err, errs.ErrCredentialsMissing), errors.Is(err, errs.ErrCredentialsInvalidFormat):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Account credentials unavailable", nil)
	case errors.Is(err, errs.ErrCircuitOpen), errors.Is(err, errs.ErrUpstreamRateLimited):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Upstream temporarily unavailable", detail)
	case errors.Is(err, errs.ErrReconciliationPartial):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Sync aborted before completion", detail)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Sync failed", detail)
	}
}
