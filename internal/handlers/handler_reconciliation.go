package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/statement_ingestion/internal/core/ports/services"
	"github.com/SscSPs/statement_ingestion/internal/dto"
	"github.com/SscSPs/statement_ingestion/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reconciliationHandler exposes duplicate review and on-demand reversal detection.
type reconciliationHandler struct {
	duplicateService portssvc.DuplicateSvc
	reversalService  portssvc.ReversalSvc
}

func registerReconciliationRoutes(rg *gin.RouterGroup, duplicates portssvc.DuplicateSvc, reversals portssvc.ReversalSvc) {
	h := &reconciliationHandler{duplicateService: duplicates, reversalService: reversals}

	rg.GET("/duplicates", h.listDuplicates)
	rg.POST("/transactions/:transactionID/reversal", h.detectReversal)
}

// listDuplicates godoc
// @Summary List probable duplicates
// @Description Groups same-amount, near-date transactions mixing manual and imported entries
// @Tags reconciliation
// @Produce json
// @Param accountID path string true "Account ID"
// @Param X-User-ID header string true "Caller identity"
// @Success 200 {object} dto.ListDuplicatesResponse
// @Router /accounts/{accountID}/duplicates [get]
func (h *reconciliationHandler) listDuplicates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	groups, err := h.duplicateService.FindDuplicateGroups(c.Request.Context(), c.Param("accountID"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to find duplicates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDuplicatesResponse(groups))
}

// detectReversal godoc
// @Summary Detect the reversal of a transaction
// @Tags reconciliation
// @Produce json
// @Param accountID path string true "Account ID"
// @Param X-User-ID header string true "Caller identity"
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} dto.ReversalResponse
// @Failure 409 {object} map[string]string "Linking failed, retry"
// @Router /accounts/{accountID}/transactions/{transactionID}/reversal [post]
func (h *reconciliationHandler) detectReversal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	partner, err := h.reversalService.DetectForAccount(c.Request.Context(), c.Param("accountID"), c.Param("transactionID"), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to detect reversal")
		return
	}

	resp := dto.ReversalResponse{Linked: partner != nil}
	if partner != nil {
		p := dto.ToTransactionResponse(partner)
		resp.Partner = &p
	}
	c.JSON(http.StatusOK, resp)
}
