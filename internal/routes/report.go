package routes

import (
	"net/http"

	"github.com/EduardoCSampaio/financas-app/internal/domain/report"

	"github.com/gin-gonic/gin"
)

// ExportTransactions godoc
// @Summary Exporta as transações de uma conta em CSV ou XLSX
// @Tags transactions
// @Produce octet-stream
// @Security BearerAuth
// @Param account_id query string true "ID da conta"
// @Param format query string false "csv ou xlsx" default(csv)
// @Success 200 {file} file
// @Router /transactions/export [get]
func (h *Handler) ExportTransactions(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	filter, err := h.parseTransactionFilter(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	format := report.Format(c.DefaultQuery("format", string(report.FormatCSV)))

	ctx := c.Request.Context()
	data, err := h.ReportService.Export(ctx, userID, *filter, format)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+format.Filename()+`"`)
	c.Data(http.StatusOK, format.ContentType(), data)
}
