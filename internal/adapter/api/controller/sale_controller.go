package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-negocios/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-negocios/internal/domain/sale"
	"github.com/hugohenrick/pdv-negocios/internal/domain/sequence"
	"github.com/hugohenrick/pdv-negocios/pkg/tenant"
)

// SaleController gerencia as requisições de vendas e devoluções
type SaleController struct {
	saleService sale.Service
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(saleService sale.Service) *SaleController {
	return &SaleController{
		saleService: saleService,
	}
}

// Create registra uma venda
// @Summary Registra uma venda
// @Description Valida o estoque, aloca o número de fatura, calcula os totais e baixa o estoque em uma única transação
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sale body dto.SaleRequest true "Dados da venda"
// @Success 201 {object} dto.ReceiptResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var request dto.SaleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	receipt, err := c.saleService.CreateSale(ctx.Request.Context(),
		ctx.GetString("tenant_id"), ctx.GetString("user_id"),
		sale.CreateSaleInput{
			Customer:      dto.ToCustomerInfo(request.Customer),
			PaymentMethod: request.PaymentMethod,
			Items:         dto.ToSaleItemInputs(request.Items),
		})
	if err != nil {
		c.writeSaleError(ctx, err, "Erro ao registrar venda")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToReceiptResponse(receipt))
}

// CreateReturn registra uma devolução
// @Summary Registra uma devolução
// @Description Devolve os itens ao estoque e grava a devolução com totais negativos
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param return body dto.ReturnRequest true "Dados da devolução"
// @Success 201 {object} dto.ReceiptResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /sales/returns [post]
func (c *SaleController) CreateReturn(ctx *gin.Context) {
	var request dto.ReturnRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	receipt, err := c.saleService.CreateReturn(ctx.Request.Context(),
		ctx.GetString("tenant_id"), ctx.GetString("user_id"),
		sale.CreateReturnInput{
			Customer: dto.ToCustomerInfo(request.Customer),
			Reason:   request.Reason,
			Items:    dto.ToSaleItemInputs(request.Items),
		})
	if err != nil {
		c.writeSaleError(ctx, err, "Erro ao registrar devolução")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToReceiptResponse(receipt))
}

// List lista as vendas mais recentes do negócio
// @Summary Lista as vendas recentes
// @Description Lista as vendas e devoluções mais recentes do negócio do contexto
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Quantidade máxima"
// @Success 200 {object} dto.SaleListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))

	sales, err := c.saleService.ListRecent(ctx.Request.Context(), ctx.GetString("tenant_id"), limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales, limit))
}

// Receipt retorna o comprovante de uma venda
// @Summary Busca o comprovante de uma venda
// @Description Retorna a venda com os dados do negócio e do operador para impressão
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /sales/{id}/receipt [get]
func (c *SaleController) Receipt(ctx *gin.Context) {
	receipt, err := c.saleService.GetReceipt(ctx.Request.Context(), ctx.GetString("tenant_id"), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, sale.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Venda não encontrada", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar comprovante", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReceiptResponse(receipt))
}

// writeSaleError mapeia os erros de domínio das vendas para respostas HTTP
func (c *SaleController) writeSaleError(ctx *gin.Context, err error, fallback string) {
	var notFound *sale.ProductNotFoundError
	var insufficient *sale.InsufficientStockError

	switch {
	case errors.Is(err, sale.ErrEmptyItems) || errors.Is(err, sale.ErrEmptyReturn) ||
		errors.Is(err, sale.ErrInvalidQuantity) || errors.Is(err, sale.ErrInvalidUnitPrice):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
	case errors.As(err, &notFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", err.Error()))
	case errors.As(err, &insufficient):
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Estoque insuficiente", err.Error()))
	case errors.Is(err, sequence.ErrNotConfigured):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Sequência de faturas não configurada", err.Error()))
	case errors.Is(err, tenant.ErrTenantNotSpecified):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Negócio não especificado", err.Error()))
	default:
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, fallback, err.Error()))
	}
}
