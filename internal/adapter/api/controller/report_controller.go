package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-negocios/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-negocios/internal/domain/report"
)

// topProductsLimit é a quantidade de produtos exibida no painel
const topProductsLimit = 5

// ReportController gerencia as requisições de relatórios
type ReportController struct {
	reportRepository report.Repository
}

// NewReportController cria uma nova instância de ReportController
func NewReportController(reportRepository report.Repository) *ReportController {
	return &ReportController{
		reportRepository: reportRepository,
	}
}

// Summary retorna o painel consolidado do negócio
// @Summary Painel consolidado do negócio
// @Description Totais de vendas, produtos mais vendidos, vendas por dia e por método de pagamento
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param start query string false "Início do período (RFC 3339 ou AAAA-MM-DD)"
// @Param end query string false "Fim do período (RFC 3339 ou AAAA-MM-DD)"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/summary [get]
func (c *ReportController) Summary(ctx *gin.Context) {
	tenantID := ctx.GetString("tenant_id")

	period, err := parsePeriod(ctx.Query("start"), ctx.Query("end"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Período inválido", err.Error()))
		return
	}

	summary := &report.Summary{Period: period}

	summary.Sales, err = c.reportRepository.SalesTotals(ctx, tenantID, period)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	summary.TopProducts, err = c.reportRepository.TopProducts(ctx, tenantID, period, topProductsLimit)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	summary.SalesPerDay, err = c.reportRepository.SalesPerDay(ctx, tenantID, period)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	summary.PaymentMethods, err = c.reportRepository.PaymentMethods(ctx, tenantID, period)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	summary.TotalProducts, err = c.reportRepository.CountProducts(ctx, tenantID)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	summary.LowStockCount, err = c.reportRepository.CountLowStock(ctx, tenantID)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

func (c *ReportController) writeError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao montar relatório", err.Error()))
}

// parsePeriod interpreta o intervalo informado. Sem parâmetros, o período
// padrão são os últimos 30 dias.
func parsePeriod(startStr, endStr string) (report.Period, error) {
	now := time.Now()
	period := report.Period{Start: now.AddDate(0, 0, -30), End: now}

	if startStr != "" {
		start, err := parseDate(startStr)
		if err != nil {
			return report.Period{}, err
		}
		period.Start = start
	}

	if endStr != "" {
		end, err := parseDate(endStr)
		if err != nil {
			return report.Period{}, err
		}
		period.End = end
	}

	return period, nil
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
