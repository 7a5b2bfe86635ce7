package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/statement_ingestion/internal/core/domain"
	portssvc "github.com/SscSPs/statement_ingestion/internal/core/ports/services"
	"github.com/SscSPs/statement_ingestion/internal/dto"
	"github.com/SscSPs/statement_ingestion/internal/middleware"
	"github.com/SscSPs/statement_ingestion/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// multipartOverhead is the room left for form boundaries and headers on top of the file itself.
const multipartOverhead = 1 << 20

// importHandler handles statement uploads and the import history.
type importHandler struct {
	importService  portssvc.ImportSvc
	maxUploadBytes int64
}

func newImportHandler(svc portssvc.ImportSvc, maxUploadBytes int64) *importHandler {
	return &importHandler{importService: svc, maxUploadBytes: maxUploadBytes}
}

// registerImportRoutes registers routes related to statement imports.
func registerImportRoutes(rg *gin.RouterGroup, svc portssvc.ImportSvc, maxUploadBytes int64, uploadLimit gin.HandlerFunc) {
	h := newImportHandler(svc, maxUploadBytes)

	imports := rg.Group("/imports")
	{
		imports.POST("", uploadLimit, h.importStatement)
		imports.GET("", h.listImports)
		imports.DELETE("/:importID", h.rollbackImport)
	}
}

// importStatement godoc
// @Summary Import a statement file
// @Description Parses a delimited export (.csv) or card statement text (.txt, .pdf) into the account ledger
// @Tags imports
// @Accept multipart/form-data
// @Produce json
// @Param accountID path string true "Account ID"
// @Param X-User-ID header string true "Caller identity"
// @Param file formData file true "Statement file"
// @Param statementYear formData int false "Year for dates printed without one"
// @Success 201 {object} dto.ImportResultResponse
// @Failure 400 {object} map[string]string "File rejected"
// @Failure 422 {object} map[string]string "Text extraction failed"
// @Router /accounts/{accountID}/imports [post]
func (h *importHandler) importStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("account_id", accountID), slog.String("user_id", userID))

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+multipartOverhead)

	var params dto.ImportStatementParams
	if err := c.ShouldBind(&params); err != nil {
		logger.Warn("Failed to bind import form", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.Warn("Upload without statement file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "A statement file is required in the 'file' field"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Uploaded file could not be read"})
		return
	}
	defer file.Close()

	logger.Info("Received statement upload",
		slog.String("file_name", fileHeader.Filename),
		slog.Int64("size", fileHeader.Size))

	result, err := h.importService.ImportStatement(c.Request.Context(), domain.ImportRequest{
		AccountID:     accountID,
		UserID:        userID,
		FileName:      fileHeader.Filename,
		ContentType:   fileHeader.Header.Get("Content-Type"),
		Content:       file,
		StatementYear: params.StatementYear,
	})
	if err != nil {
		respondWithError(c, logger, err, "Failed to import statement")
		return
	}

	c.JSON(http.StatusCreated, dto.ToImportResultResponse(result))
}

// listImports godoc
// @Summary List imports
// @Description Lists the import history of an account, newest first
// @Tags imports
// @Produce json
// @Param accountID path string true "Account ID"
// @Param X-User-ID header string true "Caller identity"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListImportsResponse
// @Router /accounts/{accountID}/imports [get]
func (h *importHandler) listImports(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	var params dto.ListImportsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListImports", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	var after *domain.ImportCursor
	if params.NextToken != "" {
		cursor, err := pagination.DecodeCursor(params.NextToken)
		if err != nil {
			logger.Warn("Invalid pagination token", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid nextToken"})
			return
		}
		after = &domain.ImportCursor{CreatedAt: cursor.CreatedAt, ImportID: cursor.ID}
	}

	records, err := h.importService.ListImports(c.Request.Context(), accountID, params.Limit, after)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list imports")
		return
	}

	nextToken := pagination.NextCursor(records, params.Limit, func(r domain.ImportRecord) pagination.Cursor {
		return pagination.Cursor{CreatedAt: r.CreatedAt, ID: r.ImportID}
	})
	c.JSON(http.StatusOK, dto.ListImportsResponse{
		Imports:   dto.ToImportRecordResponses(records),
		NextToken: nextToken,
	})
}

// rollbackImport godoc
// @Summary Roll back an import
// @Description Deletes every transaction created by the import and unlinks their reversal partners
// @Tags imports
// @Param accountID path string true "Account ID"
// @Param X-User-ID header string true "Caller identity"
// @Param importID path string true "Import ID"
// @Success 204
// @Failure 404 {object} map[string]string "Import not found"
// @Router /accounts/{accountID}/imports/{importID} [delete]
func (h *importHandler) rollbackImport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, importID := c.Param("accountID"), c.Param("importID")
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.importService.RollbackImport(c.Request.Context(), accountID, importID, userID); err != nil {
		respondWithError(c, logger.With(slog.String("import_id", importID)), err, "Failed to roll back import")
		return
	}
	c.Status(http.StatusNoContent)
}
