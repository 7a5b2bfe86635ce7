package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/statement_ingestion/internal/core/ports/services"
	"github.com/SscSPs/statement_ingestion/internal/dto"
	"github.com/SscSPs/statement_ingestion/internal/middleware"
	"github.com/gin-gonic/gin"
)

// mappingHandler handles HTTP requests related to description mappings.
type mappingHandler struct {
	mappingService portssvc.MappingSvcFacade
}

func newMappingHandler(svc portssvc.MappingSvcFacade) *mappingHandler {
	return &mappingHandler{mappingService: svc}
}

// registerMappingRoutes registers routes related to description mappings.
func registerMappingRoutes(rg *gin.RouterGroup, svc portssvc.MappingSvcFacade) {
	h := newMappingHandler(svc)

	mappings := rg.Group("/mappings")
	{
		mappings.GET("", h.listMappings)
		mappings.PUT("/:mappingID", h.updateMapping)
	}
}

// listMappings godoc
// @Summary List description mappings
// @Tags mappings
// @Produce json
// @Param accountID path string true "Account ID"
// @Param X-User-ID header string true "Caller identity"
// @Success 200 {array} dto.MappingResponse
// @Router /accounts/{accountID}/mappings [get]
func (h *mappingHandler) listMappings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	mappings, err := h.mappingService.ListMappings(c.Request.Context(), accountID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list mappings")
		return
	}
	c.JSON(http.StatusOK, dto.ToMappingResponses(mappings))
}

// updateMapping godoc
// @Summary Update a description mapping
// @Description Sets the simplified description and category, applying them to every matching transaction of the account
// @Tags mappings
// @Accept json
// @Produce json
// @Param accountID path string true "Account ID"
// @Param X-User-ID header string true "Caller identity"
// @Param mappingID path string true "Mapping ID"
// @Param mapping body dto.UpdateMappingRequest true "Mapping fields"
// @Success 200 {object} dto.UpdateMappingResponse
// @Failure 404 {object} map[string]string "Mapping not found"
// @Router /accounts/{accountID}/mappings/{mappingID} [put]
func (h *mappingHandler) updateMapping(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, mappingID := c.Param("accountID"), c.Param("mappingID")
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.UpdateMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateMapping", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	mapping, updated, err := h.mappingService.UpdateMapping(c.Request.Context(), accountID, mappingID, req, userID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("mapping_id", mappingID)), err, "Failed to update mapping")
		return
	}

	c.JSON(http.StatusOK, dto.UpdateMappingResponse{
		Mapping:             dto.ToMappingResponse(mapping),
		TransactionsUpdated: updated,
	})
}
